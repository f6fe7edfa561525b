// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view provides the base property layer that the properties
// of every kind of render tree node embed.
package view

import (
	"sync"

	"cogentcore.org/props/base/errors"
	"cogentcore.org/props/base/reflectx"
	"cogentcore.org/props/colors"
	"cogentcore.org/props/convert"
	"cogentcore.org/props/parser"
	"cogentcore.org/props/props"
	"cogentcore.org/props/rawprops"
	"cogentcore.org/props/sides"
)

// ViewProps are the properties shared by all render tree nodes.
// A ViewProps is frozen once it has been returned by [New] or
// [Descriptor], and may then be shared between goroutines.
type ViewProps struct {

	// Opacity is the opacity of the view, from 0 to 1.
	Opacity float32 `json:"opacity" yaml:"opacity" default:"1"`

	// BackgroundColor is the background color of the view, if any.
	BackgroundColor colors.Optional `json:"backgroundColor" yaml:"backgroundColor"`

	// PointerEvents controls whether the view can be
	// the target of pointer events.
	PointerEvents PointerEvents `json:"pointerEvents" yaml:"pointerEvents" default:"auto"`

	// ZIndex is the stacking order of the view among its siblings.
	ZIndex int `json:"zIndex" yaml:"zIndex" default:"0"`

	// HitSlop extends the area in which the view
	// is hit by pointer events.
	HitSlop sides.Insets `json:"hitSlop" yaml:"hitSlop"`

	// TestID locates the view in end-to-end tests.
	TestID string `json:"testID" yaml:"testID"`

	// NativeID locates the view from native code.
	NativeID string `json:"nativeID" yaml:"nativeID"`

	// AccessibilityLabel is read by screen readers.
	AccessibilityLabel string `json:"accessibilityLabel" yaml:"accessibilityLabel"`
}

// Defaults returns the canonical default [ViewProps].
// The result is shared and must not be modified.
var Defaults = sync.OnceValue(func() *ViewProps {
	p := &ViewProps{}
	errors.Log(reflectx.SetFromDefaultTags(p))
	return p
})

// Layer is the table of raw keys read by [ViewProps].
var Layer = props.NewLayer("View",
	props.NewField("opacity", func(p *ViewProps) *float32 { return &p.Opacity }, convert.Float32, Defaults),
	props.NewField("backgroundColor", func(p *ViewProps) *colors.Optional { return &p.BackgroundColor }, convert.Color, Defaults),
	props.NewField("pointerEvents", func(p *ViewProps) *PointerEvents { return &p.PointerEvents }, convert.Enum[PointerEvents](), Defaults),
	props.NewField("zIndex", func(p *ViewProps) *int { return &p.ZIndex }, convert.Int, Defaults),
	props.NewField("hitSlop", func(p *ViewProps) *sides.Insets { return &p.HitSlop }, convert.Insets, Defaults),
	props.NewField("testID", func(p *ViewProps) *string { return &p.TestID }, convert.String, Defaults),
	props.NewField("nativeID", func(p *ViewProps) *string { return &p.NativeID }, convert.String, Defaults),
	props.NewField("accessibilityLabel", func(p *ViewProps) *string { return &p.AccessibilityLabel }, convert.String, Defaults),
)

// New returns new view properties built from the given previous
// properties (nil for the defaults) and raw properties.
// It never fails, and the result shares no memory with prev or raw.
func New(ctx *parser.Context, prev *ViewProps, raw *rawprops.RawProps) *ViewProps {
	if prev == nil {
		prev = Defaults()
	}
	p := props.Clone(prev)
	Layer.Construct(ctx, p, raw)
	return p
}

// SetProp implements [props.Props].
func (p *ViewProps) SetProp(ctx *parser.Context, hash rawprops.NameHash, name string, value rawprops.Value) {
	Layer.Set(ctx, p, hash, value)
}

// Descriptor is the component descriptor of plain views.
var Descriptor = &props.Descriptor[ViewProps, *ViewProps]{
	Name:     "View",
	New:      New,
	Defaults: Defaults,
	Layers:   []props.Keyer{Layer},
}

func init() {
	props.Register(Descriptor)
}
