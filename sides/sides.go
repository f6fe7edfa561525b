// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides a representation of the four sides
// of a box, such as the cap insets of an image or the hit slop
// of a view, with CSS-style shorthand setting.
package sides

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Sides contains values for each side of a box.
type Sides[T any] struct {

	// top value
	Top T `json:"top" yaml:"top"`

	// right value
	Right T `json:"right" yaml:"right"`

	// bottom value
	Bottom T `json:"bottom" yaml:"bottom"`

	// left value
	Left T `json:"left" yaml:"left"`
}

// New is a helper that creates new sides of the given type
// and calls Set on them with the given values.
func New[T any](vals ...T) Sides[T] {
	var s Sides[T]
	s.Set(vals...)
	return s
}

// Set sets the values of the sides from the given list of 0 to 4 values.
// If 0 values are provided, all sides are set to the zero value of the type.
// If 1 value is provided, all sides are set to that value.
// If 2 values are provided, top and bottom are set to the first value
// and right and left are set to the second value.
// If 3 values are provided, top is set to the first value,
// right and left are set to the second value,
// and bottom is set to the third value.
// If 4 values are provided, they are top, right, bottom and left,
// in that order. If more than 4 values are provided, the behavior is
// the same as with 4 values, but Set also logs a programmer error.
// This follows the CSS shorthand syntax of padding and margin.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.Top, s.Bottom = vals[0], vals[0]
		s.Right, s.Left = vals[1], vals[1]
	case 3:
		s.Top = vals[0]
		s.Right, s.Left = vals[1], vals[1]
		s.Bottom = vals[2]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		if len(vals) > 4 {
			slog.Error("programmer error: sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
		}
	}
	return s
}

// SetAll sets the values for all of the sides to the given value.
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// Insets contains float32 inset values for each side of a box.
type Insets = Sides[float32]

// NewInsets returns insets with the given top, left, bottom and right
// values, which is the argument order used by image cap insets.
func NewInsets(top, left, bottom, right float32) Insets {
	return Insets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// InsetsFromString parses insets from a CSS-style shorthand string
// of 1 to 4 space separated numbers.
func InsetsFromString(str string) (Insets, error) {
	fields := strings.Fields(str)
	if len(fields) == 0 || len(fields) > 4 {
		return Insets{}, fmt.Errorf("sides.InsetsFromString: expected 1 to 4 values, but got %q", str)
	}
	vals := make([]float32, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return Insets{}, fmt.Errorf("sides.InsetsFromString: error parsing %q: %w", str, err)
		}
		vals[i] = float32(f)
	}
	var in Insets
	in.Set(vals...)
	return in, nil
}

// IsFinite returns whether none of the insets is NaN or infinite.
func IsFinite(in Insets) bool {
	for _, v := range [4]float32{in.Top, in.Right, in.Bottom, in.Left} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}
