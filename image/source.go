// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/props/base/reflectx"
	"cogentcore.org/props/convert"
	"cogentcore.org/props/parser"
)

// SourceSize is the intrinsic size of an image source, if known.
type SourceSize struct {
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// ImageSource describes one place an image can be loaded from.
type ImageSource struct {

	// Type is where the image is loaded from.
	Type SourceTypes `json:"type" yaml:"type"`

	// URI is the location of the image.
	URI string `json:"uri" yaml:"uri"`

	// Bundle is the name of the bundle a local image is in.
	Bundle string `json:"bundle,omitempty" yaml:"bundle,omitempty"`

	// Scale is the number of image pixels per layout unit.
	Scale float32 `json:"scale" yaml:"scale"`

	// Size is the intrinsic size of the image, if known.
	Size SourceSize `json:"size" yaml:"size"`

	// Body is the body of the request for a remote image.
	Body string `json:"body,omitempty" yaml:"body,omitempty"`

	// Method is the HTTP method of the request for a remote image.
	Method string `json:"method,omitempty" yaml:"method,omitempty"`

	// Headers are the HTTP headers of the request for a remote image.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Cache is the cache policy of the request for a remote image.
	Cache CachePolicies `json:"cache" yaml:"cache"`
}

// ImageSources is an ordered list of image sources, such as the same
// image at different resolutions.
type ImageSources []ImageSource

// Sources converts a single image source or a list of them into
// [ImageSources]. See [ParseSource] for the forms of one source.
var Sources = convert.Defensive(ParseSources)

// ParseSources is the [convert.Parser] of [Sources]. The result is never nil.
func ParseSources(ctx *parser.Context, v any) (ImageSources, error) {
	if srcs, ok := v.(ImageSources); ok {
		res := make(ImageSources, len(srcs))
		for i, src := range srcs {
			res[i] = src.clone()
		}
		return res, nil
	}
	list, ok := v.([]any)
	if !ok {
		src, err := ParseSource(ctx, v)
		if err != nil {
			return ImageSources{}, err
		}
		return ImageSources{src}, nil
	}
	res := make(ImageSources, len(list))
	for i, item := range list {
		src, err := ParseSource(ctx, item)
		if err != nil {
			return ImageSources{}, fmt.Errorf("image source %d: %w", i, err)
		}
		res[i] = src
	}
	return res, nil
}

// ParseSource parses one image source. A string is the URI of a remote
// image. A map may have the keys type, uri (or url), bundle, scale, width,
// height, body, method, headers and cache. A missing scale is 1.
func ParseSource(ctx *parser.Context, v any) (ImageSource, error) {
	src := ImageSource{Type: SourceRemote, Scale: 1}
	switch vt := v.(type) {
	case string:
		src.URI = vt
		return src, nil
	case ImageSource:
		return vt.clone(), nil
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(vt)) {
			if err := src.setField(ctx, key, vt[key]); err != nil {
				return ImageSource{}, fmt.Errorf("field %q: %w", key, err)
			}
		}
		return src, nil
	}
	return ImageSource{}, fmt.Errorf("expected an image source string or map, but got %T", v)
}

// clone returns a copy of the source that shares no headers with it.
func (src ImageSource) clone() ImageSource {
	src.Headers = maps.Clone(src.Headers)
	return src
}

func (src *ImageSource) setField(ctx *parser.Context, key string, v any) error {
	if v == nil {
		return nil
	}
	var err error
	switch key {
	case "type":
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected a string, but got %T", v)
		}
		return src.Type.SetString(s)
	case "uri", "url":
		src.URI, err = str(v)
	case "bundle":
		src.Bundle, err = str(v)
	case "body":
		src.Body, err = str(v)
	case "method":
		src.Method, err = str(v)
	case "scale":
		src.Scale, err = convert.ParseFloat32(ctx, v)
		if err == nil && src.Scale <= 0 {
			err = fmt.Errorf("expected a positive scale, but got %v", src.Scale)
		}
	case "width":
		src.Size.Width, err = convert.ParseNonNegative(ctx, v)
	case "height":
		src.Size.Height, err = convert.ParseNonNegative(ctx, v)
	case "headers":
		src.Headers, err = headers(v)
	case "cache":
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected a string, but got %T", v)
		}
		return src.Cache.SetString(s)
	}
	// other keys are ignored, like unknown props
	return err
}

func str(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected a string, but got %T", v)
}

// headers accepts a map of names to values, or a list of
// {name, value} maps.
func headers(v any) (map[string]string, error) {
	res := map[string]string{}
	switch vt := v.(type) {
	case map[string]any:
		for name, hv := range vt {
			s, err := str(hv)
			if err != nil {
				return nil, fmt.Errorf("header %q: %w", name, err)
			}
			res[name] = s
		}
	case []any:
		for i, item := range vt {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("header %d: expected a map, but got %T", i, item)
			}
			name, err := str(m["name"])
			if err != nil {
				return nil, fmt.Errorf("header %d name: %w", i, err)
			}
			res[name] = reflectx.ToString(m["value"])
		}
	default:
		return nil, fmt.Errorf("expected headers map or list, but got %T", v)
	}
	return res, nil
}
