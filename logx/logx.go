// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the structured logging used throughout
// the property system. Everything logs through [log/slog]; this
// package only decides where the records go and at what level.
package logx

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// UserLevel is the verbosity level of the default logger. It starts at a
// level determined by the debug and release build tags (debug, warn and
// info otherwise), and can be changed at any point.
var UserLevel = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(defaultUserLevel)
	return lv
}()

// NewHandler returns a colorized handler writing to w at [UserLevel].
// Colors are disabled when noColor is set, for example when w is not a
// terminal.
func NewHandler(w io.Writer, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      UserLevel,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})
}

// SetDefault installs [NewHandler] as the process default logger.
func SetDefault(w io.Writer, noColor bool) {
	slog.SetDefault(slog.New(NewHandler(w, noColor)))
}

// LevelFromFlags returns the level implied by the common verbose and quiet
// command line flags, with quiet taking precedence.
func LevelFromFlags(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	}
	return defaultUserLevel
}
