// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"errors"
	"strconv"
	"strings"
)

// String returns the string representation of the given
// enum value with the given map. Values that are not in
// the map are formatted as numbers.
func String[T ~int64 | ~int32 | ~uint32 | ~uint8](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its string representation
// and the given map from enum names to values. It returns an error
// and leaves the value unchanged if the string is not in the map.
func SetString[T any](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// SetStringLower is like [SetString], except it also accepts the
// lowercase version of s when the exact version is not in the map.
// The value map keys for lowercase matching must themselves be lowercase.
func SetStringLower[T any](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// Desc returns the description of the given enum value.
// It falls back on the string representation when there is none.
func Desc[T comparable](i T, descMap map[T]string, str string) string {
	if desc, ok := descMap[i]; ok {
		return desc
	}
	return str
}

// Values returns the given values as a slice of [Enum].
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// UnmarshalText loads the enum from the given text, logging any error
// through the returned error with the type name for context.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return errors.New(typeName + ".UnmarshalText: " + err.Error())
	}
	return nil
}
