// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/props/cmd/propsctl/config"
	"cogentcore.org/props/featureflags"
)

// Watch builds the properties of the configured component from the given
// input file in the configured mode, and builds them again with the flags
// in the flag file each time it changes, until ctx is done. Each build is
// written to w as a separate YAML document.
func Watch(ctx context.Context, c *config.Config, input string, w io.Writer) error {
	path, err := c.FlagsPath()
	if err != nil {
		return err
	}
	flags, err := c.Provider()
	if err != nil {
		return err
	}
	build := func(flags featureflags.Provider) {
		p, err := construct(c, flags, input)
		if err != nil {
			slog.Error("propsctl: building props", "input", input, "err", err)
			return
		}
		fmt.Fprintf(w, "---\n# iterator setter: %v\n", flags.EnableCppPropsIteratorSetter())
		if err := writeYAML(w, p); err != nil {
			slog.Error("propsctl: writing props", "err", err)
		}
	}
	build(flags)
	slog.Info("propsctl: watching flag file", "path", path)
	return featureflags.Watch(ctx, path, func(f featureflags.Flags) {
		build(f)
	})
}
