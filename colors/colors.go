// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses the color encodings that appear in raw property
// data: packed ARGB numbers, hex strings, rgb()/rgba() functions and
// standard color names.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"

	"cogentcore.org/props/base/reflectx"
)

// Transparent is the fully transparent color.
var Transparent = color.NRGBA{}

// FromARGB returns the color packed into the given 0xAARRGGBB value,
// which is how the declarative layer encodes processed colors.
func FromARGB(argb uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// AsARGB packs the given color into a 0xAARRGGBB value.
func AsARGB(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.NRGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.NRGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return color.NRGBA{c.R, c.G, c.B, c.A}, nil
}

// FromHex parses the given hex color string, with or without
// a leading #, in any of the #rgb, #rgba, #rrggbb and #rrggbbaa forms.
func FromHex(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	n := uint32(v)
	nib := func(shift uint) uint8 {
		x := uint8(n>>shift) & 0xf
		return x<<4 | x
	}
	switch len(hex) {
	case 3:
		return color.NRGBA{nib(8), nib(4), nib(0), 255}, nil
	case 4:
		return color.NRGBA{nib(12), nib(8), nib(4), nib(0)}, nil
	case 6:
		return color.NRGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 255}, nil
	case 8:
		return color.NRGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
	}
	return color.NRGBA{}, errors.New("colors.FromHex: could not process: " + hex)
}

// FromString returns a color value from the given string.
// It accepts hex values, rgb(r, g, b) and rgba(r, g, b, a) functions
// (with a in [0, 1]), standard color names, and "transparent".
func FromString(str string) (color.NRGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	if lstr == "" {
		return color.NRGBA{}, errors.New("colors.FromString: empty string")
	}
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba(") && strings.HasSuffix(lstr, ")"):
		return fromFunc(lstr[5:len(lstr)-1], 4)
	case strings.HasPrefix(lstr, "rgb(") && strings.HasSuffix(lstr, ")"):
		return fromFunc(lstr[4:len(lstr)-1], 3)
	case lstr == "transparent":
		return Transparent, nil
	}
	return FromName(lstr)
}

func fromFunc(args string, n int) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("colors.FromString: expected %d components, got %q", n, args)
	}
	var comps [4]float32
	comps[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colors.FromString: bad component %q: %w", p, err)
		}
		comps[i] = float32(f)
	}
	ch := func(v float32) uint8 {
		return uint8(math32.Round(math32.Max(0, math32.Min(255, v))))
	}
	return color.NRGBA{ch(comps[0]), ch(comps[1]), ch(comps[2]), ch(comps[3] * 255)}, nil
}

// FromAny returns a color from the given value of any type.
// Strings are parsed with [FromString], [color.Color] values are converted,
// and numbers are treated as packed 0xAARRGGBB values, either unsigned
// or as a signed 32 bit integer.
func FromAny(val any) (color.NRGBA, error) {
	switch vt := val.(type) {
	case nil:
		return color.NRGBA{}, errors.New("colors.FromAny: nil value")
	case string:
		return FromString(vt)
	case color.NRGBA:
		return vt, nil
	case color.Color:
		return color.NRGBAModel.Convert(vt).(color.NRGBA), nil
	case bool:
		return color.NRGBA{}, fmt.Errorf("colors.FromAny: could not set color from value %v of type %T", val, val)
	}
	i, err := reflectx.ToInt(val)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromAny: could not set color from value %v of type %T", val, val)
	}
	if i < math.MinInt32 || i > math.MaxUint32 {
		return color.NRGBA{}, fmt.Errorf("colors.FromAny: value %d is out of range for an ARGB color", i)
	}
	// negative values are ARGB packed into a signed int32
	return FromARGB(uint32(i)), nil
}
