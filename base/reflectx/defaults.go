// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// SetStringer is implemented by types that can be set from a string,
// such as enums.
type SetStringer interface {
	SetString(s string) error
}

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` struct field tags. It recurses into embedded and nested structs.
// Fields without a tag are left untouched. All errors are joined together.
func SetFromDefaultTags(obj any) error {
	if AnyIsNil(obj) {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer {
		return fmt.Errorf("SetFromDefaultTags: expected a pointer to a struct, but got %T", obj)
	}
	val := NonPointerValue(ov)
	typ := val.Type()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: expected a pointer to a struct, but got %T", obj)
	}
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		if f.Type.Kind() == reflect.Struct {
			if err := SetFromDefaultTags(PointerValue(fv).Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %q of type %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given settable value from the given string,
// using [SetStringer] when the value implements it.
func SetFromString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if ss, ok := v.Addr().Interface().(SetStringer); ok {
			return ss.SetString(s)
		}
	}
	switch {
	case v.Kind() == reflect.String:
		v.SetString(s)
	case v.Kind() == reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case v.CanInt():
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return err
		}
		v.SetInt(i)
	case v.CanUint():
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return err
		}
		v.SetUint(u)
	case v.CanFloat():
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("cannot set value of type %s from a string", v.Type())
	}
	return nil
}
