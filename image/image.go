// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package image provides the property layer of image nodes,
// which adds image sources and how they are drawn to [view.ViewProps].
package image

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
	"cogentcore.org/props/view"
)

// ImageProps are the properties of an image node.
type ImageProps struct {
	view.ViewProps `yaml:",inline"`

	// Sources are the sources of the image, read from the "source" key.
	Sources ImageSources `json:"source" yaml:"source"`

	// DefaultSources are shown while Sources load,
	// read from the "defaultSource" key.
	DefaultSources ImageSources `json:"defaultSource" yaml:"defaultSource"`

	// ResizeMode is how the image is fit into the frame of the view.
	ResizeMode ResizeModes `json:"resizeMode" yaml:"resizeMode" default:"stretch"`

	// BlurRadius is the radius of the blur applied to the image.
	// It is never negative.
	BlurRadius float32 `json:"blurRadius" yaml:"blurRadius" default:"0"`

	// CapInsets are the parts of the image that are not stretched
	// when it is resized.
	CapInsets sides.Insets `json:"capInsets" yaml:"capInsets"`

	// TintColor, if set, replaces the color of all
	// non-transparent pixels of the image.
	TintColor colors.Optional `json:"tintColor" yaml:"tintColor"`

	// AnalyticTag is an opaque tag passed through to image
	// loading analytics, read from the "internal_analyticTag" key.
	AnalyticTag string `json:"internal_analyticTag" yaml:"internal_analyticTag"`
}

// Defaults returns the canonical default [ImageProps], which is
// also the fallback of the per-key setter path. The result is
// shared and must not be modified.
var Defaults = sync.OnceValue(func() *ImageProps {
	p := &ImageProps{Sources: ImageSources{}, DefaultSources: ImageSources{}}
	errors.Log(reflectx.SetFromDefaultTags(p))
	return p
})

// Layer is the table of raw keys read by [ImageProps]
// in addition to those of [view.Layer].
var Layer = props.NewLayer("Image",
	props.NewField("source", func(p *ImageProps) *ImageSources { return &p.Sources }, Sources, Defaults),
	props.NewField("defaultSource", func(p *ImageProps) *ImageSources { return &p.DefaultSources }, Sources, Defaults),
	props.NewField("resizeMode", func(p *ImageProps) *ResizeModes { return &p.ResizeMode }, convert.Enum[ResizeModes](), Defaults),
	props.NewField("blurRadius", func(p *ImageProps) *float32 { return &p.BlurRadius }, convert.NonNegative, Defaults),
	props.NewField("capInsets", func(p *ImageProps) *sides.Insets { return &p.CapInsets }, convert.Insets, Defaults),
	props.NewField("tintColor", func(p *ImageProps) *colors.Optional { return &p.TintColor }, convert.Color, Defaults),
	props.NewField("internal_analyticTag", func(p *ImageProps) *string { return &p.AnalyticTag }, convert.String, Defaults),
)

// New returns new image properties built from the given previous
// properties (nil for the defaults) and raw properties. The view
// properties are built first by [view.New]. It never fails, and
// the result shares no memory with prev or raw.
func New(ctx *parser.Context, prev *ImageProps, raw *rawprops.RawProps) *ImageProps {
	if prev == nil {
		prev = Defaults()
	}
	base := view.New(ctx, &prev.ViewProps, raw)
	p := props.Clone(prev)
	p.ViewProps = *base
	Layer.Construct(ctx, p, raw)
	return p
}

// SetProp implements [props.Props]. It always sets the view
// properties first, since keys may be read by both layers.
func (p *ImageProps) SetProp(ctx *parser.Context, hash rawprops.NameHash, name string, value rawprops.Value) {
	p.ViewProps.SetProp(ctx, hash, name, value)
	Layer.Set(ctx, p, hash, value)
}

// Descriptor is the component descriptor of image nodes.
var Descriptor = &props.Descriptor[ImageProps, *ImageProps]{
	Name:     "Image",
	New:      New,
	Defaults: Defaults,
	Layers:   []props.Keyer{view.Layer, Layer},
}

func init() {
	props.Register(Descriptor)
}
