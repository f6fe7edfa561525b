// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cogentcore.org/props/cmd/propsctl/config"
	"cogentcore.org/props/props"
	"cogentcore.org/props/rawprops"
)

// Keys writes the raw keys the configured component consumes and
// their name hashes to w, base layer keys first.
func Keys(c *config.Config, w io.Writer) error {
	comp, err := props.DefaultRegistry.Get(c.Component)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, k := range comp.Keys() {
		fmt.Fprintf(tw, "%s\t%v\n", k, rawprops.Hash(k))
	}
	return tw.Flush()
}

// Components writes the names of all registered components to w.
func Components(w io.Writer) {
	for _, name := range props.DefaultRegistry.Names() {
		fmt.Fprintln(w, name)
	}
}
