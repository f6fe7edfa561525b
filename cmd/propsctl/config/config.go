// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of propsctl.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"cogentcore.org/props/featureflags"
)

// Config is the configuration of propsctl, shared by all commands.
type Config struct {

	// Component is the name of the component to build properties for.
	Component string `default:"Image"`

	// Mode selects the construction path.
	Mode Modes `default:"file"`

	// FlagsFile is the TOML flag file read in [ModeFile].
	// It defaults to [featureflags.DefaultPath].
	FlagsFile string

	// Format is the format of the input files: json, yaml or css.
	// It is inferred from the file extension if empty.
	Format string

	// Prev is an optional input file whose properties are built
	// first and used as the previous properties.
	Prev string

	// NoColor disables colored output.
	NoColor bool

	// Verbose enables debug logging.
	Verbose bool

	// Quiet only logs errors.
	Quiet bool
}

// FlagsPath returns [Config.FlagsFile], or the default flag file path.
func (c *Config) FlagsPath() (string, error) {
	if c.FlagsFile != "" {
		return c.FlagsFile, nil
	}
	return featureflags.DefaultPath()
}

// Provider returns the flag provider selected by [Config.Mode].
// In [ModeFile] a missing flag file gives the default flags.
func (c *Config) Provider() (featureflags.Provider, error) {
	switch c.Mode {
	case ModeEager:
		return featureflags.Eager, nil
	case ModeDeferred:
		return featureflags.Deferred, nil
	}
	path, err := c.FlagsPath()
	if err != nil {
		return nil, err
	}
	f, err := featureflags.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no flag file, using default flags", "path", path)
		return featureflags.Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading flags: %w", err)
	}
	return f, nil
}
