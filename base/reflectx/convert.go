// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// These functions convert loosely typed values into typed ones. They
// accept more than the Go type system would (string <-> number
// and so on), which is what end-user property data needs. A nil value is
// always an error.

// ToBool robustly converts to a bool any basic elemental type
// (including pointers to such) using a big type switch organized
// for greatest efficiency, only falling back on reflection when all
// else fails.
func ToBool(v any) (bool, error) {
	switch vt := v.(type) {
	case bool:
		return vt, nil
	case *bool:
		if vt == nil {
			return false, errNil(v, "bool")
		}
		return *vt, nil
	case int:
		return vt != 0, nil
	case int64:
		return vt != 0, nil
	case float32:
		return vt != 0, nil
	case float64:
		return vt != 0, nil
	case string:
		r, err := strconv.ParseBool(vt)
		if err != nil {
			return false, err
		}
		return r, nil
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return false, errNil(v, "bool")
	}
	switch {
	case rv.CanInt():
		return rv.Int() != 0, nil
	case rv.CanUint():
		return rv.Uint() != 0, nil
	case rv.CanFloat():
		return rv.Float() != 0, nil
	case rv.Kind() == reflect.Bool:
		return rv.Bool(), nil
	case rv.Kind() == reflect.String:
		return strconv.ParseBool(rv.String())
	}
	return false, errType(v, "bool")
}

// ToInt robustly converts to an int64 any basic elemental type
// (including pointers to such). Floating point values are truncated;
// NaN, infinite and out of range values are an error.
func ToInt(v any) (int64, error) {
	switch vt := v.(type) {
	case int:
		return int64(vt), nil
	case int32:
		return int64(vt), nil
	case int64:
		return vt, nil
	case uint64:
		return uintToInt(vt)
	case float32:
		return floatToInt(float64(vt))
	case float64:
		return floatToInt(vt)
	case bool:
		if vt {
			return 1, nil
		}
		return 0, nil
	case string:
		r, err := strconv.ParseInt(vt, 0, 64)
		if err != nil {
			return 0, err
		}
		return r, nil
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return 0, errNil(v, "int")
	}
	switch {
	case rv.CanInt():
		return rv.Int(), nil
	case rv.CanUint():
		return uintToInt(rv.Uint())
	case rv.CanFloat():
		return floatToInt(rv.Float())
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case rv.Kind() == reflect.String:
		return strconv.ParseInt(rv.String(), 0, 64)
	}
	return 0, errType(v, "int")
}

func floatToInt(f float64) (int64, error) {
	// -2^63 is exact in float64, 2^63 is the first value past the range
	if math.IsNaN(f) || f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, fmt.Errorf("reflectx: %v is out of range for an int", f)
	}
	return int64(f), nil
}

func uintToInt(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("reflectx: %d is out of range for an int", u)
	}
	return int64(u), nil
}

// ToFloat robustly converts to a float64 any basic elemental type
// (including pointers to such).
func ToFloat(v any) (float64, error) {
	switch vt := v.(type) {
	case float64:
		return vt, nil
	case float32:
		return float64(vt), nil
	case int:
		return float64(vt), nil
	case int64:
		return float64(vt), nil
	case uint64:
		return float64(vt), nil
	case bool:
		if vt {
			return 1, nil
		}
		return 0, nil
	case string:
		r, err := strconv.ParseFloat(vt, 64)
		if err != nil {
			return 0, err
		}
		return r, nil
	case fmt.Stringer:
		// json.Number and friends
		if r, err := strconv.ParseFloat(vt.String(), 64); err == nil {
			return r, nil
		}
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return 0, errNil(v, "float")
	}
	switch {
	case rv.CanFloat():
		return rv.Float(), nil
	case rv.CanInt():
		return float64(rv.Int()), nil
	case rv.CanUint():
		return float64(rv.Uint()), nil
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case rv.Kind() == reflect.String:
		return strconv.ParseFloat(rv.String(), 64)
	}
	return 0, errType(v, "float")
}

// ToFloat32 is [ToFloat] narrowed to a float32.
func ToFloat32(v any) (float32, error) {
	f, err := ToFloat(v)
	return float32(f), err
}

// ToString robustly converts anything to a string. Because [fmt.Stringer]
// is so ubiquitous, and it falls back to fmt.Sprint in the worst case,
// this works in all cases and has no error return value. A nil value
// converts to the empty string.
func ToString(v any) string {
	switch vt := v.(type) {
	case nil:
		return ""
	case string:
		return vt
	case *string:
		if vt == nil {
			return ""
		}
		return *vt
	case []byte:
		return string(vt)
	case fmt.Stringer:
		return vt.String()
	case bool:
		return strconv.FormatBool(vt)
	case int:
		return strconv.Itoa(vt)
	case int64:
		return strconv.FormatInt(vt, 10)
	case float32:
		return strconv.FormatFloat(float64(vt), 'G', -1, 32)
	case float64:
		return strconv.FormatFloat(vt, 'G', -1, 64)
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	if !rv.IsValid() {
		return ""
	}
	return fmt.Sprint(rv.Interface())
}

func errNil(v any, to string) error {
	return fmt.Errorf("got nil value of type %T, cannot convert to %s", v, to)
}

func errType(v any, to string) error {
	return fmt.Errorf("got value %v of type %T, cannot convert to %s", v, v, to)
}
