// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of propsctl.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cogentcore.org/props/cmd/propsctl/config"
	"cogentcore.org/props/featureflags"
	"cogentcore.org/props/parser"
	"cogentcore.org/props/props"
	"cogentcore.org/props/rawprops"

	// register the components
	_ "cogentcore.org/props/image"
	_ "cogentcore.org/props/view"
)

// ReadRaw reads raw properties from the given file, or standard input
// for "-". The format is json, yaml or css; if it is empty, it is
// inferred from the file extension.
func ReadRaw(path, format string) (*rawprops.RawProps, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "json":
		return rawprops.ParseJSON(b)
	case "yaml", "yml":
		return rawprops.ParseYAML(b)
	case "css":
		return rawprops.ParseCSS(string(b))
	}
	return nil, fmt.Errorf("unknown input format %q for %s (use json, yaml or css)", format, path)
}

// construct builds the properties of the configured component from the
// input file with the given flag provider, starting from the properties
// of c.Prev if it is set.
func construct(c *config.Config, flags featureflags.Provider, input string) (props.Props, error) {
	comp, err := props.DefaultRegistry.Get(c.Component)
	if err != nil {
		return nil, err
	}
	ctx := parser.NewContext(0, parser.WithFlags(flags))
	var prev props.Props
	if c.Prev != "" {
		praw, err := ReadRaw(c.Prev, c.Format)
		if err != nil {
			return nil, fmt.Errorf("reading previous props: %w", err)
		}
		prev, err = comp.Build(ctx, nil, praw)
		if err != nil {
			return nil, err
		}
	}
	raw, err := ReadRaw(input, c.Format)
	if err != nil {
		return nil, err
	}
	return comp.Build(ctx, prev, raw)
}

// Build builds the properties of the configured component from the
// given input file in the configured mode, and writes them to w as YAML.
func Build(c *config.Config, input string, w io.Writer) error {
	flags, err := c.Provider()
	if err != nil {
		return err
	}
	p, err := construct(c, flags, input)
	if err != nil {
		return err
	}
	return writeYAML(w, p)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
