// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"

	"cogentcore.org/props/parser"
	"cogentcore.org/props/rawprops"
)

// Layer is the set of fields that one property type adds on top of the
// layer it embeds, with a hash keyed lookup table for the setter path.
// A Layer is built once, typically in a package level variable, and is
// read only afterwards.
type Layer[T any] struct {

	// Name is the name of the layer, for debugging.
	Name string

	fields []*Field[T]
	table  map[rawprops.NameHash]*Field[T]
}

// NewLayer returns a new [Layer] with the given fields. It panics if two
// fields have the same name hash, which is a programmer error.
func NewLayer[T any](name string, fields ...*Field[T]) *Layer[T] {
	l := &Layer[T]{Name: name, fields: fields, table: make(map[rawprops.NameHash]*Field[T], len(fields))}
	for _, f := range fields {
		if o, has := l.table[f.Hash]; has {
			panic(fmt.Sprintf("props.NewLayer: %s: fields %q and %q have the same hash %v", name, o.Name, f.Name, f.Hash))
		}
		l.table[f.Hash] = f
	}
	return l
}

// Fields returns the fields of the layer in declaration order.
func (l *Layer[T]) Fields() []*Field[T] {
	return l.fields
}

// Keys returns the raw property keys of the layer in declaration order.
func (l *Layer[T]) Keys() []string {
	keys := make([]string, len(l.fields))
	for i, f := range l.fields {
		keys[i] = f.Name
	}
	return keys
}

// Lookup returns the field with the given name hash, if any.
func (l *Layer[T]) Lookup(hash rawprops.NameHash) (*Field[T], bool) {
	f, ok := l.table[hash]
	return f, ok
}

// Construct resolves the fields of the layer in dst from raw, where dst
// holds a deep copy of the previous value. The strategy gate is read for
// each field: when the iterator setter path is selected, the field keeps
// its copied value and is left for [Layer.Set].
func (l *Layer[T]) Construct(ctx *parser.Context, dst *T, raw *rawprops.RawProps) {
	for _, f := range l.fields {
		if ctx.IteratorSetter() {
			continue
		}
		f.resolve(ctx, dst, raw.Lookup(f.Hash))
	}
}

// Set sets the field with the given name hash in dst from value,
// using the canonical default as the fallback. It returns whether
// the hash matched a field of the layer; unmatched hashes are a no-op.
func (l *Layer[T]) Set(ctx *parser.Context, dst *T, hash rawprops.NameHash, value rawprops.Value) bool {
	f, ok := l.table[hash]
	if !ok {
		return false
	}
	f.set(ctx, dst, value)
	return true
}
