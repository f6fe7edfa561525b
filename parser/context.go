// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser provides the [Context] threaded through every property
// construction and conversion call.
package parser

import (
	"log/slog"

	"cogentcore.org/props/featureflags"
)

// Context contains the ambient configuration of property parsing.
// It is immutable once made, and safe to share between goroutines.
type Context struct {
	surfaceID int32
	flags     featureflags.Provider
	logger    *slog.Logger
}

// Option configures a [Context] made by [NewContext].
type Option func(c *Context)

// WithFlags makes the context read flags from the given provider
// instead of the process-wide default.
func WithFlags(p featureflags.Provider) Option {
	return func(c *Context) { c.flags = p }
}

// WithLogger makes conversions log through the given logger
// instead of the default one.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// NewContext returns a new context for the given surface.
func NewContext(surfaceID int32, opts ...Option) *Context {
	c := &Context{surfaceID: surfaceID}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SurfaceID returns the identifier of the surface whose nodes are
// being parsed.
func (c *Context) SurfaceID() int32 {
	if c == nil {
		return 0
	}
	return c.surfaceID
}

// Flags returns the flag provider of the context, falling back on
// [featureflags.Default].
func (c *Context) Flags() featureflags.Provider {
	if c == nil || c.flags == nil {
		return featureflags.Default()
	}
	return c.flags
}

// IteratorSetter returns whether the per-key setter construction path
// is selected. It reads the flag provider on every call; callers must
// keep the provider stable for the duration of one construction.
func (c *Context) IteratorSetter() bool {
	return c.Flags().EnableCppPropsIteratorSetter()
}

// Logger returns the logger of the context, falling back on
// [slog.Default].
func (c *Context) Logger() *slog.Logger {
	if c == nil || c.logger == nil {
		return slog.Default()
	}
	return c.logger
}
