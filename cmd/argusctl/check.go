package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/argus"
	"github.com/napalu/argus/env"
	"github.com/napalu/argus/schemafile"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var vars map[string]string

	cmd := &cobra.Command{
		Use:   "check SCHEMA [--] ARGS...",
		Short: "Parse an argument line against a schema and print the resulting values",
		Long: `Parse an argument line against a schema and print the resulting values.

Place the arguments after "--" so that argusctl does not interpret them:

  argusctl check archiver.yaml -- -z --level 9 data.tar`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(args[0], args[1:], vars)
		},
	}
	cmd.Flags().StringToStringVar(&vars, "env", nil, "resolve environment variables from KEY=VALUE pairs instead of the process environment")
	cmd.Flags().Bool(keySources, false, "show where each value came from")
	cmd.Flags().Bool(keyUnset, false, "include options which hold no value")

	return cmd
}

func (a *app) check(path string, argv []string, vars map[string]string) error {
	doc, err := schemafile.Load(path)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	configs := []argus.ConfigureParserFunc{argus.WithLogger(a.logger)}
	if vars != nil {
		configs = append(configs, argus.WithEnvResolver(env.NewMapResolver(vars)))
	}
	p, err := doc.NewParser(configs...)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	a.logger.Debug("checking", "schema", path, "args", strings.Join(argv, " "))
	ctx, err := p.Parse(argv)
	if exit, ok := argus.AsExit(err); ok {
		color.New(color.FgYellow).Fprintf(a.stdout, "exit requested by '%s'\n", exit.Option)
		return nil
	}
	if err != nil {
		_ = argus.PrintDiagnostics(a.stderr, err)
		return &exitError{code: 1}
	}
	defer func() { _ = ctx.Release() }()

	var opts []argus.DumpOption
	switch a.v.GetString(keyFormat) {
	case "json":
		opts = append(opts, argus.AsJSON())
	case "yaml":
		opts = append(opts, argus.AsYAML())
	}
	if a.v.GetBool(keySources) {
		opts = append(opts, argus.WithSources())
	}
	if a.v.GetBool(keyUnset) {
		opts = append(opts, argus.WithUnset())
	}
	if path := ctx.Path(); len(path) > 0 {
		a.logger.Info("subcommand", "path", strings.Join(path, " "))
	}

	return ctx.Dump(a.stdout, opts...)
}
