// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
)

// Optional is a color that may be absent. The zero value is absent,
// which is distinct from a present transparent color.
type Optional struct {

	// Color is the color value, meaningful only when Valid is true.
	Color color.NRGBA

	// Valid is whether the color is present.
	Valid bool
}

// Some returns a present [Optional] holding the given color.
func Some(c color.NRGBA) Optional {
	return Optional{Color: c, Valid: true}
}

// Get returns the color and whether it is present.
func (o Optional) Get() (color.NRGBA, bool) {
	return o.Color, o.Valid
}

// String returns the color as #rrggbbaa, or "none" when absent.
func (o Optional) String() string {
	if !o.Valid {
		return "none"
	}
	return AsHex(o.Color)
}

// AsHex returns the given color in the #rrggbbaa form.
func AsHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText encodes the color as returned by [Optional.String].
func (o Optional) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes a color written by [Optional.MarshalText],
// or any other string accepted by [FromString].
func (o *Optional) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "none" || s == "" {
		*o = Optional{}
		return nil
	}
	c, err := FromString(s)
	if err != nil {
		return err
	}
	*o = Some(c)
	return nil
}
