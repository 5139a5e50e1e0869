// Command pagegen synthesizes a page module for every stub node of the page
// graph, reusing the reference page layout when one exists.
//
// Usage:
//
//	go run ./cmd/pagegen [--force]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matthewbaird/pagegen/internal/config"
	"github.com/matthewbaird/pagegen/internal/generate"
	"github.com/matthewbaird/pagegen/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pagegen: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:           "pagegen",
		Short:         "Generate page modules from the page graph",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite pages that already exist")
	return cmd
}

func run(stdout io.Writer, force bool) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gen, err := generate.New(cfg, logger)
	if err != nil {
		return err
	}
	res, err := gen.Run(force)
	if err != nil {
		return err
	}
	return res.WriteSummary(stdout)
}
