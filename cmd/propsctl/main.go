// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command propsctl builds typed render tree node properties from raw
// property documents, and compares the two construction paths.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"cogentcore.org/props/base/errors"
	"cogentcore.org/props/base/reflectx"
	"cogentcore.org/props/cmd/propsctl/cmd"
	"cogentcore.org/props/cmd/propsctl/config"
	"cogentcore.org/props/featureflags"
	"cogentcore.org/props/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	c := &config.Config{}
	errors.Must(reflectx.SetFromDefaultTags(c))

	root := &cobra.Command{
		Use:          "propsctl",
		Short:        "Build typed render tree node properties from raw property documents",
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, args []string) {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				c.NoColor = true
			}
			logx.UserLevel.Set(logx.LevelFromFlags(c.Verbose, c.Quiet))
			logx.SetDefault(os.Stderr, c.NoColor || !isatty.IsTerminal(os.Stderr.Fd()))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.Component, "component", "c", c.Component, "component to build properties for")
	pf.VarP(&c.Mode, "mode", "m", "construction path: file, eager or deferred")
	pf.StringVar(&c.FlagsFile, "flags", c.FlagsFile, "flag file read in file mode (default ~/"+featureflags.DefaultFile+")")
	pf.StringVarP(&c.Format, "format", "f", c.Format, "input format: json, yaml or css (default from the file extension)")
	pf.StringVar(&c.Prev, "prev", c.Prev, "input file of the previous properties")
	pf.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colored output")
	pf.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "log debug messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "only log errors")

	root.AddCommand(&cobra.Command{
		Use:   "build <file>",
		Short: "Build properties from a raw property document and print them as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return cmd.Build(c, args[0], command.OutOrStdout())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "compare <file>",
		Short: "Build properties on both construction paths and diff the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return cmd.Compare(c, args[0], command.OutOrStdout())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "keys",
		Short: "List the raw keys a component consumes and their hashes",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			return cmd.Keys(c, command.OutOrStdout())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "components",
		Short: "List the registered components",
		Args:  cobra.NoArgs,
		Run: func(command *cobra.Command, args []string) {
			cmd.Components(command.OutOrStdout())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "watch <file>",
		Short: "Rebuild properties whenever the flag file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return cmd.Watch(command.Context(), c, args[0], command.OutOrStdout())
		},
	})
	return root
}
