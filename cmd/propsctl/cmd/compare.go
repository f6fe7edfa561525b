// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/sergi/go-diff/diffmatchpatch"

	"cogentcore.org/props/cmd/propsctl/config"
	"cogentcore.org/props/featureflags"
)

// ErrPathsDiffer is returned by [Compare] when the two
// construction paths give different properties.
var ErrPathsDiffer = errors.New("eager and deferred construction differ")

// Compare builds the properties of the configured component from the
// given input file on both construction paths, and writes a line diff
// of their YAML forms to w. It returns [ErrPathsDiffer] if they differ.
func Compare(c *config.Config, input string, w io.Writer) error {
	var out [2]bytes.Buffer
	for i, flags := range []featureflags.Provider{featureflags.Eager, featureflags.Deferred} {
		p, err := construct(c, flags, input)
		if err != nil {
			return err
		}
		if err := writeYAML(&out[i], p); err != nil {
			return err
		}
	}
	eager, deferred := out[0].String(), out[1].String()
	if eager == deferred {
		fmt.Fprintln(w, "eager and deferred construction are identical")
		return nil
	}
	WriteDiff(w, eager, deferred, c.NoColor)
	return ErrPathsDiffer
}

// WriteDiff writes a line diff from a to b to w, with removed lines
// prefixed by "-" and added lines by "+", colored unless noColor is set.
func WriteDiff(w io.Writer, a, b string, noColor bool) {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(w, opts...)

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(w, out.String("- "+line).Foreground(termenv.ANSIRed))
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(w, out.String("+ "+line).Foreground(termenv.ANSIGreen))
			default:
				fmt.Fprintln(w, "  "+line)
			}
		}
	}
}
