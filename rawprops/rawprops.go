// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rawprops provides the untyped, name-indexed property set that
// carries one update's property data from the declarative layer into the
// typed property objects. A [RawProps] is ephemeral: it is built for one
// update, read by one construction, and then dropped.
package rawprops

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"

	"cogentcore.org/props/base/ordmap"
)

// NameHash is the precomputed hash of a property name. All property layers
// share one hash space, so the same name always has the same hash no matter
// which layer looks it up.
type NameHash uint64

// Hash returns the [NameHash] of the given property name.
func Hash(name string) NameHash {
	return NameHash(xxhash.Sum64String(name))
}

// String returns the hash in hex.
func (h NameHash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// Value is one untyped raw property value. The zero Value is absent,
// which is distinct from a present null value.
type Value struct {
	v       any
	present bool
}

// ValueOf returns a present [Value] wrapping the given value.
// A nil v gives a null value.
func ValueOf(v any) Value {
	return Value{v: v, present: true}
}

// Absent returns whether the value is absent.
func (v Value) Absent() bool {
	return !v.present
}

// Null returns whether the value is present and null.
func (v Value) Null() bool {
	return v.present && v.v == nil
}

// Any returns the underlying untyped value, which is nil
// for both absent and null values.
func (v Value) Any() any {
	return v.v
}

// String returns a debug representation of the value.
func (v Value) String() string {
	switch {
	case !v.present:
		return "<absent>"
	case v.v == nil:
		return "null"
	}
	return fmt.Sprintf("%v", v.v)
}

// Prop is one named property in a [RawProps].
type Prop struct {
	Hash  NameHash
	Name  string
	Value Value
}

// RawProps is an ordered set of raw property values keyed by [NameHash].
// The zero value is an empty set ready to use.
type RawProps struct {
	props ordmap.Map[NameHash, Prop]
}

// New returns a new empty set with room for n properties.
func New(n int) *RawProps {
	return &RawProps{props: *ordmap.New[NameHash, Prop](n)}
}

// FromMap returns a new set holding the given values. Nested maps and
// slices are kept as they are. Keys are added in sorted order, so that
// iteration over the result is deterministic.
func FromMap(m map[string]any) *RawProps {
	rp := New(len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		rp.Set(name, m[name])
	}
	return rp
}

// Set sets the value of the named property, replacing any existing value
// while keeping its position. A nil value is stored as null.
func (rp *RawProps) Set(name string, v any) *RawProps {
	h := Hash(name)
	rp.props.Add(h, Prop{Hash: h, Name: name, Value: ValueOf(v)})
	return rp
}

// At returns the value of the named property, which is absent
// if the property is not in the set.
func (rp *RawProps) At(name string) Value {
	return rp.Lookup(Hash(name))
}

// Lookup returns the value of the property with the given hash,
// which is absent if the property is not in the set.
func (rp *RawProps) Lookup(h NameHash) Value {
	if rp == nil {
		return Value{}
	}
	p, _ := rp.props.At(h)
	return p.Value
}

// Len returns the number of properties in the set.
func (rp *RawProps) Len() int {
	if rp == nil {
		return 0
	}
	return rp.props.Len()
}

// Empty returns whether the set has no properties.
func (rp *RawProps) Empty() bool {
	return rp.Len() == 0
}

// Names returns the property names in order.
func (rp *RawProps) Names() []string {
	names := make([]string, 0, rp.Len())
	for p := range rp.All() {
		names = append(names, p.Name)
	}
	return names
}

// All returns an iterator over the properties in the order they were set.
// This is the iteration that drives the per-key setter path.
func (rp *RawProps) All() iter.Seq[Prop] {
	return func(yield func(Prop) bool) {
		if rp == nil {
			return
		}
		for _, p := range rp.props.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// String returns a debug representation of the set.
func (rp *RawProps) String() string {
	s := "{"
	i := 0
	for p := range rp.All() {
		if i > 0 {
			s += ", "
		}
		s += p.Name + ": " + p.Value.String()
		i++
	}
	return s + "}"
}
