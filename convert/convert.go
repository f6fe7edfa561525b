// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert is the library of defensive conversions from raw property
// values to typed ones. Every conversion has the shape of [Func]: it never
// fails, and resolves anything it cannot convert to the fallback it is given.
package convert

import (
	"fmt"

	"cogentcore.org/props/parser"
	"cogentcore.org/props/rawprops"
)

// Func converts a raw value into a typed one. An absent or null value, or
// one that cannot be converted, gives the fallback.
type Func[T any] func(ctx *parser.Context, v rawprops.Value, fallback T) T

// Parser parses a present, non-null raw value, returning an error if it
// cannot be converted.
type Parser[T any] func(ctx *parser.Context, v any) (T, error)

// Defensive returns a [Func] that converts with the given parser, logging
// parse errors through the context logger and resolving them to the fallback.
func Defensive[T any](parse Parser[T]) Func[T] {
	return func(ctx *parser.Context, v rawprops.Value, fallback T) T {
		if v.Absent() || v.Null() {
			return fallback
		}
		res, err := parse(ctx, v.Any())
		if err != nil {
			SetError(ctx, v, err)
			return fallback
		}
		return res
	}
}

// SetError reports that the given raw value could not be converted,
// due to the given error.
func SetError(ctx *parser.Context, v rawprops.Value, err error) {
	ctx.Logger().Error("convert: error converting raw value", "value", v.String(), "type", fmt.Sprintf("%T", v.Any()), "err", err)
}
