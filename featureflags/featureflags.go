// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package featureflags provides the runtime flags that select how property
// objects are built. The flags are read through a [Provider], which callers
// inject through the parser context; a process-wide default exists for
// callers that do not inject their own.
package featureflags

import (
	"sync/atomic"

	"cogentcore.org/props/base/errors"
	"cogentcore.org/props/base/reflectx"
)

// Provider answers flag queries. Implementations must be safe
// for concurrent use.
type Provider interface {

	// EnableCppPropsIteratorSetter returns whether property objects are
	// built by copying the previous object and then applying each changed
	// raw value through the per-key setter, instead of converting every
	// field in one bulk pass.
	EnableCppPropsIteratorSetter() bool
}

// Flags is a plain set of flag values. It is the format of the flag file,
// and is itself a [Provider].
type Flags struct {

	// IteratorSetter selects the per-key setter construction path.
	IteratorSetter bool `toml:"enable_cpp_props_iterator_setter" default:"false"`
}

// EnableCppPropsIteratorSetter implements [Provider].
func (f Flags) EnableCppPropsIteratorSetter() bool {
	return f.IteratorSetter
}

// Defaults returns the flags set from their default tags.
func Defaults() Flags {
	var f Flags
	errors.Log(reflectx.SetFromDefaultTags(&f))
	return f
}

// Eager is a [Provider] selecting the bulk construction path.
var Eager Provider = Flags{IteratorSetter: false}

// Deferred is a [Provider] selecting the per-key setter path.
var Deferred Provider = Flags{IteratorSetter: true}

// global holds the process-wide default provider.
var global atomic.Pointer[holder]

type holder struct {
	p Provider
}

func init() {
	SetDefault(Defaults())
}

// Default returns the process-wide default provider.
func Default() Provider {
	return global.Load().p
}

// SetDefault replaces the process-wide default provider, returning the
// previous one. It must not be called while a construction that reads the
// default is in progress; see [Provider].
func SetDefault(p Provider) Provider {
	old := global.Swap(&holder{p: p})
	if old == nil {
		return nil
	}
	return old.p
}

// Override sets the process-wide default provider and returns a function
// that restores the previous one, for use in tests:
//
//	defer featureflags.Override(featureflags.Deferred)()
func Override(p Provider) func() {
	old := SetDefault(p)
	return func() { SetDefault(old) }
}
