// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"fmt"

	"cogentcore.org/props/parser"
	"cogentcore.org/props/sides"
)

// Insets converts four-sided inset values. It accepts a map with any of
// the top, left, bottom and right keys (missing sides are zero), a single
// number for all sides, a list of 1 to 4 numbers or a string of 1 to 4
// numbers in CSS shorthand order.
var Insets = Defensive(ParseInsets)

// ParseInsets is the [Parser] of [Insets].
func ParseInsets(ctx *parser.Context, v any) (sides.Insets, error) {
	var in sides.Insets
	switch vt := v.(type) {
	case sides.Insets:
		in = vt
	case string:
		var err error
		in, err = sides.InsetsFromString(vt)
		if err != nil {
			return in, err
		}
	case map[string]any:
		var top, left, bottom, right float32
		for key, sv := range vt {
			f, err := ParseFloat32(ctx, sv)
			if err != nil {
				return sides.Insets{}, fmt.Errorf("inset %q: %w", key, err)
			}
			switch key {
			case "top":
				top = f
			case "left":
				left = f
			case "bottom":
				bottom = f
			case "right":
				right = f
			default:
				return sides.Insets{}, fmt.Errorf("unknown inset side %q", key)
			}
		}
		in = sides.NewInsets(top, left, bottom, right)
	case []any:
		if len(vt) == 0 || len(vt) > 4 {
			return in, fmt.Errorf("expected 1 to 4 inset values, but got %d", len(vt))
		}
		vals := make([]float32, len(vt))
		for i, sv := range vt {
			f, err := ParseFloat32(ctx, sv)
			if err != nil {
				return sides.Insets{}, fmt.Errorf("inset %d: %w", i, err)
			}
			vals[i] = f
		}
		in.Set(vals...)
	default:
		f, err := ParseFloat32(ctx, v)
		if err != nil {
			return in, fmt.Errorf("expected insets, but got %T", v)
		}
		in.SetAll(f)
	}
	if !sides.IsFinite(in) {
		return sides.Insets{}, fmt.Errorf("insets must be finite, but got %v", in)
	}
	return in, nil
}
