// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"cogentcore.org/props/convert"
	"cogentcore.org/props/parser"
	"cogentcore.org/props/rawprops"
)

// Field describes one typed field of a property layer of type T:
// the raw key it is read from, and how a raw value of that key
// resolves into the field.
type Field[T any] struct {

	// Name is the raw property key of the field.
	Name string

	// Hash is the precomputed [rawprops.Hash] of Name.
	Hash rawprops.NameHash

	// resolve resolves the field in the bulk construction path,
	// where dst already holds a copy of the previous value.
	resolve func(ctx *parser.Context, dst *T, v rawprops.Value)

	// set resolves the field in the per-key setter path.
	set func(ctx *parser.Context, dst *T, v rawprops.Value)
}

// NewField returns a new [Field] for the raw key of the given name, stored at
// the field returned by get and converted by conv. The defaults function
// returns the canonical default instance of T.
//
// In the bulk path, an absent value keeps the previous value, a null value
// resets to the default, and any other value is converted with the previous
// value as the fallback. In the setter path the default is the fallback.
func NewField[T, V any](name string, get func(p *T) *V, conv convert.Func[V], defaults func() *T) *Field[T] {
	return &Field[T]{
		Name: name,
		Hash: rawprops.Hash(name),
		resolve: func(ctx *parser.Context, dst *T, v rawprops.Value) {
			switch {
			case v.Absent():
			case v.Null():
				*get(dst) = *get(defaults())
			default:
				*get(dst) = conv(ctx, v, *get(dst))
			}
		},
		set: func(ctx *parser.Context, dst *T, v rawprops.Value) {
			*get(dst) = conv(ctx, v, *get(defaults()))
		},
	}
}
