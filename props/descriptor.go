// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"

	"cogentcore.org/props/parser"
	"cogentcore.org/props/rawprops"
)

// Keyer is satisfied by anything that consumes a list of raw keys,
// such as a [Layer].
type Keyer interface {
	Keys() []string
}

// Component is the type-erased interface of a [Descriptor], used by the
// [Registry] to build property objects of components it only knows by name.
type Component interface {

	// ComponentName returns the name of the component, such as "Image".
	ComponentName() string

	// Keys returns all raw keys the component consumes, base layers first.
	Keys() []string

	// Build is [Descriptor.CloneProps] on untyped property objects. A nil
	// previous object is allowed; one of another component is an error.
	Build(ctx *parser.Context, prev Props, raw *rawprops.RawProps) (Props, error)
}

// Descriptor describes how property objects of type T are built.
type Descriptor[T any, PT interface {
	*T
	Props
}] struct {

	// Name is the name of the component.
	Name string

	// New is the bulk constructor of T. It must accept a nil previous object.
	New func(ctx *parser.Context, prev *T, raw *rawprops.RawProps) *T

	// Defaults returns the canonical default instance of T,
	// which must not be modified.
	Defaults func() *T

	// Layers are the layers of T, base layers first.
	Layers []Keyer
}

// CloneProps returns the property object for the next version of a node,
// given its previous one (nil for a new node) and the raw properties of the
// update. An empty update returns prev, or the defaults if prev is nil.
// Otherwise the bulk constructor runs, and then, when the iterator setter
// path is selected, SetProp is called for every raw value in order.
//
// The flag provider of ctx must not change while CloneProps runs:
// a change part way through gives a mix of the two paths.
func (d *Descriptor[T, PT]) CloneProps(ctx *parser.Context, prev *T, raw *rawprops.RawProps) *T {
	if raw.Empty() {
		if prev == nil {
			return d.Defaults()
		}
		return prev
	}
	res := d.New(ctx, prev, raw)
	if ctx.IteratorSetter() {
		pt := PT(res)
		for p := range raw.All() {
			pt.SetProp(ctx, p.Hash, p.Name, p.Value)
		}
	}
	return res
}

// ComponentName returns the name of the component.
func (d *Descriptor[T, PT]) ComponentName() string {
	return d.Name
}

// Keys returns the raw keys of all layers, base layers first.
func (d *Descriptor[T, PT]) Keys() []string {
	var keys []string
	for _, l := range d.Layers {
		keys = append(keys, l.Keys()...)
	}
	return keys
}

// Build implements [Component].
func (d *Descriptor[T, PT]) Build(ctx *parser.Context, prev Props, raw *rawprops.RawProps) (Props, error) {
	var tp *T
	if prev != nil {
		p, ok := prev.(PT)
		if !ok {
			return nil, fmt.Errorf("props: %s cannot be built from previous props of type %T", d.Name, prev)
		}
		tp = p
	}
	return PT(d.CloneProps(ctx, tp, raw)), nil
}
