// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"bytes"
	"image/color"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/props/colors"
	"cogentcore.org/props/featureflags"
	"cogentcore.org/props/parser"
	"cogentcore.org/props/props"
	"cogentcore.org/props/rawprops"
	"cogentcore.org/props/sides"
	"cogentcore.org/props/view"
)

func testContext(p featureflags.Provider) (*parser.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return parser.NewContext(1, parser.WithFlags(p), parser.WithLogger(slog.New(slog.NewTextHandler(&buf, nil)))), &buf
}

// diff returns a readable diff of two image props, treating
// nil and empty slices and maps as equal.
func diff(a, b *ImageProps) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Same(t, d, Defaults())
	assert.Equal(t, float32(0), d.BlurRadius)
	_, has := d.TintColor.Get()
	assert.False(t, has)
	assert.Equal(t, "", d.AnalyticTag)
	assert.Equal(t, ResizeStretch, d.ResizeMode)
	assert.NotNil(t, d.Sources)
	assert.Empty(t, d.Sources)
	assert.NotNil(t, d.DefaultSources)
	assert.Equal(t, *view.Defaults(), d.ViewProps)
}

func TestNewKeepsPrevious(t *testing.T) {
	ctx, _ := testContext(featureflags.Eager)
	prev := props.Clone(Defaults())
	prev.ResizeMode = ResizeCover
	prev.BlurRadius = 4
	prev.Sources = ImageSources{{Type: SourceRemote, URI: "https://a/b.png", Scale: 2}}

	p := New(ctx, prev, rawprops.New(1).Set("testID", "x"))
	assert.Equal(t, ResizeCover, p.ResizeMode)
	assert.Equal(t, float32(4), p.BlurRadius)
	want := props.Clone(prev)
	want.TestID = "x"
	assert.Empty(t, diff(want, p))

	p.Sources[0].URI = "changed"
	assert.Equal(t, "https://a/b.png", prev.Sources[0].URI, "the result shares no memory with prev")
}

func TestNewResizeModeFallback(t *testing.T) {
	ctx, buf := testContext(featureflags.Eager)
	p := New(ctx, nil, rawprops.New(1).Set("resizeMode", "bogus"))
	assert.Equal(t, ResizeStretch, p.ResizeMode)
	assert.Contains(t, buf.String(), "bogus")

	prev := props.Clone(Defaults())
	prev.ResizeMode = ResizeContain
	p = New(ctx, prev, rawprops.New(1).Set("resizeMode", "bogus"))
	assert.Equal(t, ResizeContain, p.ResizeMode)

	p = New(ctx, prev, rawprops.New(1).Set("resizeMode", "repeat"))
	assert.Equal(t, ResizeRepeat, p.ResizeMode)

	p = New(ctx, prev, rawprops.New(1).Set("resizeMode", nil))
	assert.Equal(t, ResizeStretch, p.ResizeMode, "null resets to the default")
}

func TestSetPropResizeModeFallback(t *testing.T) {
	ctx, _ := testContext(featureflags.Deferred)
	p := props.Clone(Defaults())
	p.ResizeMode = ResizeContain
	p.SetProp(ctx, rawprops.Hash("resizeMode"), "resizeMode", rawprops.ValueOf("bogus"))
	assert.Equal(t, ResizeStretch, p.ResizeMode, "the setter falls back to the default")
}

func TestCapInsets(t *testing.T) {
	ctx, _ := testContext(featureflags.Eager)
	raw := rawprops.New(1).Set("capInsets", map[string]any{"top": 1, "left": 2, "bottom": 3, "right": 4})
	p := New(ctx, nil, raw)
	assert.Equal(t, sides.NewInsets(1, 2, 3, 4), p.CapInsets)

	dctx, _ := testContext(featureflags.Deferred)
	d := Descriptor.CloneProps(dctx, nil, raw)
	assert.Equal(t, sides.NewInsets(1, 2, 3, 4), d.CapInsets)
}

func TestEmptySources(t *testing.T) {
	for _, flags := range []featureflags.Provider{featureflags.Eager, featureflags.Deferred} {
		ctx, _ := testContext(flags)
		prev := props.Clone(Defaults())
		prev.Sources = ImageSources{{URI: "old", Scale: 1}}
		p := Descriptor.CloneProps(ctx, prev, rawprops.New(1).Set("source", []any{}))
		assert.NotNil(t, p.Sources)
		assert.Empty(t, p.Sources)
	}
}

func TestSources(t *testing.T) {
	ctx, _ := testContext(featureflags.Eager)
	raw := rawprops.New(2).
		Set("source", "https://cdn/x.png").
		Set("defaultSource", []any{
			map[string]any{"uri": "placeholder.png", "type": "local", "bundle": "main", "scale": 2, "width": 10, "height": 20},
			map[string]any{"url": "https://cdn/y.png", "method": "POST", "body": "{}", "cache": "only-if-cached",
				"headers": map[string]any{"Authorization": "token"}},
		})
	p := New(ctx, nil, raw)
	assert.Equal(t, ImageSources{{Type: SourceRemote, URI: "https://cdn/x.png", Scale: 1}}, p.Sources)
	assert.Equal(t, ImageSources{
		{Type: SourceLocal, URI: "placeholder.png", Bundle: "main", Scale: 2, Size: SourceSize{Width: 10, Height: 20}},
		{Type: SourceRemote, URI: "https://cdn/y.png", Scale: 1, Method: "POST", Body: "{}", Cache: CacheOnlyIfCached,
			Headers: map[string]string{"Authorization": "token"}},
	}, p.DefaultSources)

	prev := p
	bad := []any{"ok.png", map[string]any{"scale": -1}}
	p = New(ctx, prev, rawprops.New(1).Set("source", bad))
	assert.Empty(t, cmp.Diff(prev.Sources, p.Sources, cmpopts.EquateEmpty()), "one bad source keeps the previous list")

	p = New(ctx, prev, rawprops.New(1).Set("source", map[string]any{"uri": "z", "headers": []any{map[string]any{"name": "A", "value": 1}}}))
	assert.Equal(t, ImageSources{{Type: SourceRemote, URI: "z", Scale: 1, Headers: map[string]string{"A": "1"}}}, p.Sources)
}

func TestTypedSourcesAreCopied(t *testing.T) {
	for _, flags := range []featureflags.Provider{featureflags.Eager, featureflags.Deferred} {
		ctx, _ := testContext(flags)
		list := map[string]string{"a": "1"}
		one := map[string]string{"b": "2"}
		raw := rawprops.New(2).
			Set("source", ImageSources{{URI: "x", Scale: 1, Headers: list}}).
			Set("defaultSource", ImageSource{URI: "y", Scale: 1, Headers: one})
		p := Descriptor.CloneProps(ctx, nil, raw)
		list["a"] = "changed"
		one["b"] = "changed"
		assert.Equal(t, "1", p.Sources[0].Headers["a"], flags)
		assert.Equal(t, "2", p.DefaultSources[0].Headers["b"], flags)
	}
}

func TestTintColor(t *testing.T) {
	ctx, _ := testContext(featureflags.Eager)
	p := New(ctx, nil, rawprops.New(1).Set("tintColor", 0x80ff0000))
	assert.Equal(t, colors.Some(color.NRGBA{255, 0, 0, 128}), p.TintColor)
	p = New(ctx, p, rawprops.New(1).Set("tintColor", "rgb(0, 0, 255)"))
	assert.Equal(t, colors.Some(color.NRGBA{0, 0, 255, 255}), p.TintColor)
	p = New(ctx, p, rawprops.New(1).Set("tintColor", nil))
	assert.Equal(t, colors.Optional{}, p.TintColor)

	// signed 32 bit ARGB
	p = New(ctx, p, rawprops.New(1).Set("tintColor", -65536))
	assert.Equal(t, "#ff0000ff", p.TintColor.String())
	p.SetProp(ctx, rawprops.Hash("tintColor"), "tintColor", rawprops.ValueOf(int32(-16776961)))
	assert.Equal(t, "#0000ffff", p.TintColor.String())
}

func TestBlurRadius(t *testing.T) {
	ctx, _ := testContext(featureflags.Eager)
	p := New(ctx, nil, rawprops.New(1).Set("blurRadius", 3.5))
	assert.Equal(t, float32(3.5), p.BlurRadius)
	p = New(ctx, p, rawprops.New(1).Set("blurRadius", -1))
	assert.Equal(t, float32(3.5), p.BlurRadius)
}

func TestSetPropUnknown(t *testing.T) {
	ctx, buf := testContext(featureflags.Deferred)
	p := props.Clone(Defaults())
	p.AnalyticTag = "tag"
	before := props.Clone(p)
	p.SetProp(ctx, rawprops.Hash("notAProp"), "notAProp", rawprops.ValueOf("x"))
	assert.Empty(t, diff(before, p))
	assert.Empty(t, buf.String())
}

func TestSetPropDelegatesToView(t *testing.T) {
	ctx, _ := testContext(featureflags.Deferred)
	p := props.Clone(Defaults())
	for _, k := range view.Layer.Keys() {
		_, ok := Layer.Lookup(rawprops.Hash(k))
		assert.False(t, ok, "view key %q is not handled by the image layer", k)
	}
	p.SetProp(ctx, rawprops.Hash("opacity"), "opacity", rawprops.ValueOf(0.3))
	p.SetProp(ctx, rawprops.Hash("pointerEvents"), "pointerEvents", rawprops.ValueOf("none"))
	p.SetProp(ctx, rawprops.Hash("nativeID"), "nativeID", rawprops.ValueOf("native"))
	assert.Equal(t, float32(0.3), p.Opacity)
	assert.Equal(t, view.PointerNone, p.PointerEvents)
	assert.Equal(t, "native", p.NativeID)
}

func TestNewDelegatesToView(t *testing.T) {
	ctx, _ := testContext(featureflags.Eager)
	p := New(ctx, nil, rawprops.New(2).Set("zIndex", 5).Set("blurRadius", 1))
	assert.Equal(t, 5, p.ZIndex)
	assert.Equal(t, float32(1), p.BlurRadius)
}

func TestCloneProps(t *testing.T) {
	ctx, _ := testContext(featureflags.Deferred)
	assert.Same(t, Defaults(), Descriptor.CloneProps(ctx, nil, rawprops.New(0)))

	prev := Descriptor.CloneProps(ctx, nil, rawprops.New(1).Set("internal_analyticTag", "a"))
	assert.Equal(t, "a", prev.AnalyticTag)
	assert.Same(t, prev, Descriptor.CloneProps(ctx, prev, nil))

	c, err := props.DefaultRegistry.Get("Image")
	require.NoError(t, err)
	keys := c.Keys()
	assert.Equal(t, append(view.Layer.Keys(), Layer.Keys()...), keys)
	assert.Contains(t, keys, "internal_analyticTag")
}
