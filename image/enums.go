// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"cogentcore.org/props/enums"
)

// ResizeModes are the ways in which an image is fit
// into the frame of its view when their sizes differ.
type ResizeModes int32 //enums:enum -trim-prefix Resize -transform lower

const (
	// ResizeStretch scales the width and height independently,
	// changing the aspect ratio of the image.
	ResizeStretch ResizeModes = iota

	// ResizeCover scales the image uniformly so that it covers
	// the whole frame, clipping if necessary.
	ResizeCover

	// ResizeContain scales the image uniformly so that it fits
	// entirely within the frame.
	ResizeContain

	// ResizeRepeat tiles the image to fill the frame.
	ResizeRepeat

	// ResizeCenter centers the image without scaling it up.
	ResizeCenter

	// ResizeNone draws the image at its own size in the top left corner.
	ResizeNone
)

// SourceTypes are the kinds of places an image can be loaded from.
type SourceTypes int32 //enums:enum -trim-prefix Source -transform lower

const (
	// SourceRemote is an image loaded over the network.
	SourceRemote SourceTypes = iota

	// SourceLocal is an image bundled with the app or on disk.
	SourceLocal
)

// CachePolicies control how a remote image uses the HTTP cache.
type CachePolicies int32 //enums:enum -trim-prefix Cache -transform kebab

const (
	// CacheDefault follows the standard HTTP caching rules.
	CacheDefault CachePolicies = iota

	// CacheReload always loads from the network.
	CacheReload

	// CacheForceCache uses any cached copy regardless of its age.
	CacheForceCache

	// CacheOnlyIfCached never uses the network.
	CacheOnlyIfCached
)

var _ResizeModesValues = []ResizeModes{ResizeStretch, ResizeCover, ResizeContain, ResizeRepeat, ResizeCenter, ResizeNone}

var _ResizeModesValueMap = map[string]ResizeModes{`stretch`: 0, `cover`: 1, `contain`: 2, `repeat`: 3, `center`: 4, `none`: 5}

var _ResizeModesDescMap = map[ResizeModes]string{0: `ResizeStretch scales the width and height independently, changing the aspect ratio of the image.`, 1: `ResizeCover scales the image uniformly so that it covers the whole frame, clipping if necessary.`, 2: `ResizeContain scales the image uniformly so that it fits entirely within the frame.`, 3: `ResizeRepeat tiles the image to fill the frame.`, 4: `ResizeCenter centers the image without scaling it up.`, 5: `ResizeNone draws the image at its own size in the top left corner.`}

var _ResizeModesMap = map[ResizeModes]string{0: `stretch`, 1: `cover`, 2: `contain`, 3: `repeat`, 4: `center`, 5: `none`}

// String returns the string representation of this ResizeModes value.
func (i ResizeModes) String() string { return enums.String(i, _ResizeModesMap) }

// SetString sets the ResizeModes value from its string representation,
// and returns an error if the string is invalid.
func (i *ResizeModes) SetString(s string) error {
	return enums.SetStringLower(i, s, _ResizeModesValueMap, "ResizeModes")
}

// Int64 returns the ResizeModes value as an int64.
func (i ResizeModes) Int64() int64 { return int64(i) }

// SetInt64 sets the ResizeModes value from an int64.
func (i *ResizeModes) SetInt64(in int64) { *i = ResizeModes(in) }

// Desc returns the description of the ResizeModes value.
func (i ResizeModes) Desc() string { return enums.Desc(i, _ResizeModesDescMap, i.String()) }

// ResizeModesValues returns all possible values for the type ResizeModes.
func ResizeModesValues() []ResizeModes { return _ResizeModesValues }

// Values returns all possible values for the type ResizeModes.
func (i ResizeModes) Values() []enums.Enum { return enums.Values(_ResizeModesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ResizeModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ResizeModes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "ResizeModes")
}

var _SourceTypesValues = []SourceTypes{SourceRemote, SourceLocal}

var _SourceTypesValueMap = map[string]SourceTypes{`remote`: 0, `local`: 1}

var _SourceTypesDescMap = map[SourceTypes]string{0: `SourceRemote is an image loaded over the network.`, 1: `SourceLocal is an image bundled with the app or on disk.`}

var _SourceTypesMap = map[SourceTypes]string{0: `remote`, 1: `local`}

// String returns the string representation of this SourceTypes value.
func (i SourceTypes) String() string { return enums.String(i, _SourceTypesMap) }

// SetString sets the SourceTypes value from its string representation,
// and returns an error if the string is invalid.
func (i *SourceTypes) SetString(s string) error {
	return enums.SetStringLower(i, s, _SourceTypesValueMap, "SourceTypes")
}

// Int64 returns the SourceTypes value as an int64.
func (i SourceTypes) Int64() int64 { return int64(i) }

// SetInt64 sets the SourceTypes value from an int64.
func (i *SourceTypes) SetInt64(in int64) { *i = SourceTypes(in) }

// Desc returns the description of the SourceTypes value.
func (i SourceTypes) Desc() string { return enums.Desc(i, _SourceTypesDescMap, i.String()) }

// SourceTypesValues returns all possible values for the type SourceTypes.
func SourceTypesValues() []SourceTypes { return _SourceTypesValues }

// Values returns all possible values for the type SourceTypes.
func (i SourceTypes) Values() []enums.Enum { return enums.Values(_SourceTypesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i SourceTypes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *SourceTypes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "SourceTypes")
}

var _CachePoliciesValues = []CachePolicies{CacheDefault, CacheReload, CacheForceCache, CacheOnlyIfCached}

var _CachePoliciesValueMap = map[string]CachePolicies{`default`: 0, `reload`: 1, `force-cache`: 2, `only-if-cached`: 3}

var _CachePoliciesDescMap = map[CachePolicies]string{0: `CacheDefault follows the standard HTTP caching rules.`, 1: `CacheReload always loads from the network.`, 2: `CacheForceCache uses any cached copy regardless of its age.`, 3: `CacheOnlyIfCached never uses the network.`}

var _CachePoliciesMap = map[CachePolicies]string{0: `default`, 1: `reload`, 2: `force-cache`, 3: `only-if-cached`}

// String returns the string representation of this CachePolicies value.
func (i CachePolicies) String() string { return enums.String(i, _CachePoliciesMap) }

// SetString sets the CachePolicies value from its string representation,
// and returns an error if the string is invalid.
func (i *CachePolicies) SetString(s string) error {
	return enums.SetStringLower(i, s, _CachePoliciesValueMap, "CachePolicies")
}

// Int64 returns the CachePolicies value as an int64.
func (i CachePolicies) Int64() int64 { return int64(i) }

// SetInt64 sets the CachePolicies value from an int64.
func (i *CachePolicies) SetInt64(in int64) { *i = CachePolicies(in) }

// Desc returns the description of the CachePolicies value.
func (i CachePolicies) Desc() string { return enums.Desc(i, _CachePoliciesDescMap, i.String()) }

// CachePoliciesValues returns all possible values for the type CachePolicies.
func CachePoliciesValues() []CachePolicies { return _CachePoliciesValues }

// Values returns all possible values for the type CachePolicies.
func (i CachePolicies) Values() []enums.Enum { return enums.Values(_CachePoliciesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i CachePolicies) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *CachePolicies) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "CachePolicies")
}
