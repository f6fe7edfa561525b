// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props provides the machinery shared by all typed property
// layers: field descriptors, per-layer setter tables, deep copies of
// previous values and component descriptors that pick between the
// bulk construction path and the per-key setter path.
package props

import (
	"github.com/jinzhu/copier"

	"cogentcore.org/props/base/errors"
	"cogentcore.org/props/parser"
	"cogentcore.org/props/rawprops"
)

// Props is the interface that all property objects satisfy.
type Props interface {

	// SetProp sets the field with the given raw key from the given value,
	// using the canonical default as the fallback. Unknown keys are ignored.
	// It must call the SetProp of any embedded layer first. It is only valid
	// while the object is being built.
	SetProp(ctx *parser.Context, hash rawprops.NameHash, name string, value rawprops.Value)
}

// Clone returns a deep copy of src, sharing no slices or maps with it.
// A nil src gives a new zero value.
func Clone[T any](src *T) *T {
	dst := new(T)
	if src == nil {
		return dst
	}
	errors.Log(copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}))
	return dst
}
