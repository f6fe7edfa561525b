// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"testing"

	"pgregory.net/rapid"

	"cogentcore.org/props/featureflags"
	"cogentcore.org/props/props"
	"cogentcore.org/props/rawprops"
)

// The generators below only produce well-formed or null values: for
// malformed values the two construction paths fall back differently.

func sourceGen() *rapid.Generator[any] {
	return rapid.Custom(func(t *rapid.T) any {
		uri := rapid.StringMatching(`https://[a-z]{1,8}/[a-z]{1,8}\.png`).Draw(t, "uri")
		if rapid.Bool().Draw(t, "bare") {
			return uri
		}
		m := map[string]any{"uri": uri}
		if rapid.Bool().Draw(t, "hasScale") {
			m["scale"] = rapid.Float64Range(0.5, 4).Draw(t, "scale")
		}
		if rapid.Bool().Draw(t, "hasSize") {
			m["width"] = rapid.IntRange(0, 4096).Draw(t, "width")
			m["height"] = rapid.IntRange(0, 4096).Draw(t, "height")
		}
		if rapid.Bool().Draw(t, "hasHeaders") {
			m["headers"] = map[string]any{"Accept": rapid.SampledFrom([]string{"image/png", "image/*"}).Draw(t, "accept")}
		}
		if rapid.Bool().Draw(t, "hasCache") {
			m["cache"] = rapid.SampledFrom([]string{"default", "reload", "force-cache", "only-if-cached"}).Draw(t, "cache")
		}
		return m
	})
}

func sourcesGen() *rapid.Generator[any] {
	return rapid.Custom(func(t *rapid.T) any {
		if rapid.Bool().Draw(t, "single") {
			return sourceGen().Draw(t, "source")
		}
		return rapid.SliceOfN(sourceGen(), 0, 3).Draw(t, "sources")
	})
}

var valueGens = map[string]*rapid.Generator[any]{
	"source":        sourcesGen(),
	"defaultSource": sourcesGen(),
	"resizeMode": rapid.Custom(func(t *rapid.T) any {
		if rapid.Bool().Draw(t, "byName") {
			return rapid.SampledFrom([]string{"stretch", "cover", "contain", "repeat", "center", "none", "COVER"}).Draw(t, "name")
		}
		return rapid.IntRange(0, 5).Draw(t, "index")
	}),
	"blurRadius": rapid.Custom(func(t *rapid.T) any { return rapid.Float64Range(0, 50).Draw(t, "blur") }),
	"capInsets": rapid.Custom(func(t *rapid.T) any {
		switch rapid.IntRange(0, 2).Draw(t, "form") {
		case 0:
			return map[string]any{"top": rapid.IntRange(0, 9).Draw(t, "top"), "right": rapid.IntRange(0, 9).Draw(t, "right")}
		case 1:
			return rapid.Float64Range(0, 9).Draw(t, "all")
		}
		return "1 2 3 4"
	}),
	"tintColor": rapid.Custom(func(t *rapid.T) any {
		if rapid.Bool().Draw(t, "byName") {
			return rapid.SampledFrom([]string{"red", "#00ff0080", "rgb(1, 2, 3)", "transparent", "rgba(0, 0, 0, 0.5)"}).Draw(t, "name")
		}
		return int(rapid.Uint32().Draw(t, "argb"))
	}),
	"internal_analyticTag": rapid.Custom(func(t *rapid.T) any { return rapid.String().Draw(t, "tag") }),
	"opacity":              rapid.Custom(func(t *rapid.T) any { return rapid.Float64Range(0, 1).Draw(t, "opacity") }),
	"pointerEvents": rapid.Custom(func(t *rapid.T) any {
		return rapid.SampledFrom([]string{"auto", "none", "box-none", "box-only"}).Draw(t, "pointerEvents")
	}),
	"zIndex":       rapid.Custom(func(t *rapid.T) any { return rapid.IntRange(-10, 10).Draw(t, "zIndex") }),
	"testID":       rapid.Custom(func(t *rapid.T) any { return rapid.String().Draw(t, "testID") }),
	"hitSlop":      rapid.Custom(func(t *rapid.T) any { return rapid.IntRange(0, 20).Draw(t, "hitSlop") }),
	"someOtherKey": rapid.Custom(func(t *rapid.T) any { return rapid.String().Draw(t, "other") }),
}

var valueKeys = []string{"source", "defaultSource", "resizeMode", "blurRadius", "capInsets", "tintColor",
	"internal_analyticTag", "opacity", "pointerEvents", "zIndex", "testID", "hitSlop", "someOtherKey"}

// rawGen generates raw props with a random subset of keys in a random
// order, each with a well-formed or null value.
func rawGen() *rapid.Generator[*rawprops.RawProps] {
	return rapid.Custom(func(t *rapid.T) *rawprops.RawProps {
		keys := rapid.Permutation(valueKeys).Draw(t, "keys")
		raw := rawprops.New(len(keys))
		for _, k := range keys {
			if !rapid.Bool().Draw(t, "has "+k) {
				continue
			}
			if rapid.IntRange(0, 5).Draw(t, "null") == 0 {
				raw.Set(k, nil)
				continue
			}
			raw.Set(k, valueGens[k].Draw(t, k))
		}
		return raw
	})
}

func TestPathEquivalence(t *testing.T) {
	eager, _ := testContext(featureflags.Eager)
	deferred, _ := testContext(featureflags.Deferred)
	rapid.Check(t, func(rt *rapid.T) {
		var prev *ImageProps
		if rapid.Bool().Draw(rt, "hasPrev") {
			prev = New(eager, nil, rawGen().Draw(rt, "prevRaw"))
		}
		raw := rawGen().Draw(rt, "raw")
		e := Descriptor.CloneProps(eager, prev, raw)
		d := Descriptor.CloneProps(deferred, prev, raw)
		if df := diff(e, d); df != "" {
			rt.Fatalf("eager and deferred construction differ for %v (-eager +deferred):\n%s", raw, df)
		}
	})
}

func TestSetPropIdempotent(t *testing.T) {
	ctx, _ := testContext(featureflags.Deferred)
	rapid.Check(t, func(rt *rapid.T) {
		p := New(ctx, nil, rawGen().Draw(rt, "initial"))
		raw := rawGen().Draw(rt, "raw")
		for prop := range raw.All() {
			p.SetProp(ctx, prop.Hash, prop.Name, prop.Value)
			once := props.Clone(p)
			p.SetProp(ctx, prop.Hash, prop.Name, prop.Value)
			if df := diff(once, p); df != "" {
				rt.Fatalf("setting %s twice differs from setting it once:\n%s", prop.Name, df)
			}
		}
	})
}
