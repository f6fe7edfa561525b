// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/props/enums"
)

// PointerEvents controls whether a view and its children
// can be the target of pointer events.
type PointerEvents int32 //enums:enum -trim-prefix Pointer -transform kebab

const (
	// PointerAuto lets the view and its children be targets.
	PointerAuto PointerEvents = iota

	// PointerNone makes neither the view nor its children targets.
	PointerNone

	// PointerBoxNone makes only the children targets.
	PointerBoxNone

	// PointerBoxOnly makes only the view itself a target.
	PointerBoxOnly
)

var _PointerEventsValues = []PointerEvents{PointerAuto, PointerNone, PointerBoxNone, PointerBoxOnly}

var _PointerEventsValueMap = map[string]PointerEvents{`auto`: 0, `none`: 1, `box-none`: 2, `box-only`: 3}

var _PointerEventsDescMap = map[PointerEvents]string{0: `PointerAuto lets the view and its children be targets.`, 1: `PointerNone makes neither the view nor its children targets.`, 2: `PointerBoxNone makes only the children targets.`, 3: `PointerBoxOnly makes only the view itself a target.`}

var _PointerEventsMap = map[PointerEvents]string{0: `auto`, 1: `none`, 2: `box-none`, 3: `box-only`}

// String returns the string representation of this PointerEvents value.
func (i PointerEvents) String() string { return enums.String(i, _PointerEventsMap) }

// SetString sets the PointerEvents value from its string representation,
// and returns an error if the string is invalid.
func (i *PointerEvents) SetString(s string) error {
	return enums.SetStringLower(i, s, _PointerEventsValueMap, "PointerEvents")
}

// Int64 returns the PointerEvents value as an int64.
func (i PointerEvents) Int64() int64 { return int64(i) }

// SetInt64 sets the PointerEvents value from an int64.
func (i *PointerEvents) SetInt64(in int64) { *i = PointerEvents(in) }

// Desc returns the description of the PointerEvents value.
func (i PointerEvents) Desc() string { return enums.Desc(i, _PointerEventsDescMap, i.String()) }

// PointerEventsValues returns all possible values for the type PointerEvents.
func PointerEventsValues() []PointerEvents { return _PointerEventsValues }

// Values returns all possible values for the type PointerEvents.
func (i PointerEvents) Values() []enums.Enum { return enums.Values(_PointerEventsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i PointerEvents) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *PointerEvents) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "PointerEvents")
}
