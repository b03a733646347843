package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/napalu/argus"
	"github.com/napalu/argus/schemafile"
	"github.com/spf13/cobra"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint SCHEMA...",
		Short: "Compile schema files and run their embedded cases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if !a.lint(path) {
					failed++
				}
			}
			if failed > 0 {
				return &exitError{code: 1, err: fmt.Errorf("%d of %d schema files failed", failed, len(args))}
			}
			return nil
		},
	}
}

// lint reports on a single schema file and returns whether it passed
func (a *app) lint(path string) bool {
	fail := color.New(color.FgRed)
	ok := color.New(color.FgGreen)

	doc, err := schemafile.Load(path)
	if err != nil {
		fail.Fprintf(a.stdout, "FAIL %s\n", path)
		fmt.Fprintf(a.stdout, "     %v\n", err)
		return false
	}
	p, err := doc.NewParser(argus.WithLogger(a.logger))
	if err != nil {
		fail.Fprintf(a.stdout, "FAIL %s\n", path)
		fmt.Fprintf(a.stdout, "     %v\n", err)
		return false
	}

	failures := doc.CheckAll(p)
	a.logger.Info("schema compiled", "path", path, "cases", len(doc.Cases), "failures", len(failures))
	if len(failures) > 0 {
		fail.Fprintf(a.stdout, "FAIL %s (%d of %d cases)\n", path, len(failures), len(doc.Cases))
		for _, f := range failures {
			fmt.Fprintf(a.stdout, "     %v\n", f)
		}
		return false
	}
	ok.Fprintf(a.stdout, "ok   %s (%d cases)\n", path, len(doc.Cases))
	return true
}
