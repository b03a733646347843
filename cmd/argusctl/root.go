// Command argusctl lints argus schema files and checks argument lines against them.
//
//	argusctl lint schema.yaml            compile the schema and run its embedded cases
//	argusctl check schema.yaml -- -z a   parse an argument line and print the result
//
// Settings are read from flags, ARGUSCTL_* environment variables and an optional
// config file, in that order of precedence.
package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyFormat   = "format"
	keyLogLevel = "log-level"
	keyNoColor  = "no-color"
	keySources  = "sources"
	keyUnset    = "unset"
)

// exitError carries a process exit code out of a RunE handler
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// app holds the state shared by every command of one invocation
type app struct {
	v      *viper.Viper
	logger *log.Logger
	stdout io.Writer
	stderr io.Writer

	cfgFile string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:           "argusctl",
		Short:         "Lint argus schema files and check argument lines against them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String(keyFormat, "text", "output format: text, json or yaml")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.Bool(keyNoColor, false, "disable colored output")

	a.v.SetDefault(keyFormat, "text")
	a.v.SetDefault(keyLogLevel, "warn")
	a.v.SetEnvPrefix("ARGUSCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newLintCmd(a))
	root.AddCommand(newCheckCmd(a))

	return root
}

// init binds the flags of the command being run, reads the config file and sets up
// logging and color
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	level, err := log.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.logger = log.NewWithOptions(a.stderr, log.Options{
		Prefix: "argusctl",
		Level:  level,
	})
	if a.v.GetBool(keyNoColor) {
		color.NoColor = true
	}

	switch f := a.v.GetString(keyFormat); f {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", f)
	}
	a.logger.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "format", a.v.GetString(keyFormat))

	return nil
}

// execute runs the command line and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintln(stderr, color.RedString("Error:"), exit.err)
		}
		return exit.code
	}
	fmt.Fprintln(stderr, color.RedString("Error:"), err)
	return 2
}
