// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"fmt"

	"github.com/chewxy/math32"

	"cogentcore.org/props/base/reflectx"
	"cogentcore.org/props/colors"
	"cogentcore.org/props/enums"
	"cogentcore.org/props/parser"
)

// Float32 converts numbers and numeric strings. NaN and infinite values
// are rejected.
var Float32 = Defensive(ParseFloat32)

// ParseFloat32 is the [Parser] of [Float32].
func ParseFloat32(ctx *parser.Context, v any) (float32, error) {
	if _, ok := v.(bool); ok {
		return 0, fmt.Errorf("expected a number, but got bool %v", v)
	}
	f, err := reflectx.ToFloat32(v)
	if err != nil {
		return 0, err
	}
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0, fmt.Errorf("expected a finite number, but got %v", f)
	}
	return f, nil
}

// NonNegative converts like [Float32], additionally rejecting
// negative values.
var NonNegative = Defensive(ParseNonNegative)

// ParseNonNegative is the [Parser] of [NonNegative].
func ParseNonNegative(ctx *parser.Context, v any) (float32, error) {
	f, err := ParseFloat32(ctx, v)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("expected a non-negative number, but got %v", f)
	}
	return f, nil
}

// Int converts numbers and numeric strings, truncating fractions.
var Int = Defensive(func(ctx *parser.Context, v any) (int, error) {
	if _, ok := v.(bool); ok {
		return 0, fmt.Errorf("expected a number, but got bool %v", v)
	}
	i, err := reflectx.ToInt(v)
	return int(i), err
})

// Bool converts booleans and "true"/"false" strings.
var Bool = Defensive(func(ctx *parser.Context, v any) (bool, error) {
	switch v.(type) {
	case bool, string:
		return reflectx.ToBool(v)
	}
	return false, fmt.Errorf("expected a bool, but got %T", v)
})

// String passes strings through unchanged; other types are rejected.
var String = Defensive(func(ctx *parser.Context, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected a string, but got %T", v)
})

// Color converts packed ARGB numbers and color strings
// into a present [colors.Optional].
var Color = Defensive(func(ctx *parser.Context, v any) (colors.Optional, error) {
	c, err := colors.FromAny(v)
	if err != nil {
		return colors.Optional{}, err
	}
	return colors.Some(c), nil
})

// Enum returns a [Func] converting enum names (case-insensitively) and
// valid integer values into the enum type T.
func Enum[T any, PT enums.Enumer[T]]() Func[T] {
	return Defensive(func(ctx *parser.Context, v any) (T, error) {
		var res T
		pt := PT(&res)
		if s, ok := v.(string); ok {
			err := pt.SetString(s)
			return res, err
		}
		i, err := reflectx.ToInt(v)
		if err != nil {
			return res, err
		}
		for _, e := range pt.Values() {
			if e.Int64() == i {
				pt.SetInt64(i)
				return res, nil
			}
		}
		return res, fmt.Errorf("%d is not a valid value for type %T", i, res)
	})
}
