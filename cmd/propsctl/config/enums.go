// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"cogentcore.org/props/enums"
)

// Modes are the ways of selecting the construction path.
type Modes int32 //enums:enum -trim-prefix Mode -transform lower

const (
	// ModeFile reads the path from the flag file.
	ModeFile Modes = iota

	// ModeEager converts every field in the bulk constructor.
	ModeEager

	// ModeDeferred copies fields in the bulk constructor
	// and converts them in the per-key setter.
	ModeDeferred
)

var _ModesValues = []Modes{ModeFile, ModeEager, ModeDeferred}

var _ModesValueMap = map[string]Modes{`file`: 0, `eager`: 1, `deferred`: 2}

var _ModesDescMap = map[Modes]string{0: `ModeFile reads the path from the flag file.`, 1: `ModeEager converts every field in the bulk constructor.`, 2: `ModeDeferred copies fields in the bulk constructor and converts them in the per-key setter.`}

var _ModesMap = map[Modes]string{0: `file`, 1: `eager`, 2: `deferred`}

// String returns the string representation of this Modes value.
func (i Modes) String() string { return enums.String(i, _ModesMap) }

// SetString sets the Modes value from its string representation,
// and returns an error if the string is invalid.
func (i *Modes) SetString(s string) error {
	return enums.SetStringLower(i, s, _ModesValueMap, "Modes")
}

// Int64 returns the Modes value as an int64.
func (i Modes) Int64() int64 { return int64(i) }

// SetInt64 sets the Modes value from an int64.
func (i *Modes) SetInt64(in int64) { *i = Modes(in) }

// Desc returns the description of the Modes value.
func (i Modes) Desc() string { return enums.Desc(i, _ModesDescMap, i.String()) }

// ModesValues returns all possible values for the type Modes.
func ModesValues() []Modes { return _ModesValues }

// Values returns all possible values for the type Modes.
func (i Modes) Values() []enums.Enum { return enums.Values(_ModesValues) }

// Set implements the pflag.Value interface.
func (i *Modes) Set(s string) error { return i.SetString(s) }

// Type implements the pflag.Value interface.
func (i *Modes) Type() string { return "mode" }
