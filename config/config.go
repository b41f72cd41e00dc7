// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides default-tag initialization and TOML
// file loading for configuration structs.
package config

import (
	"encoding"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"cogentcore.org/xyznav/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	val := reflect.ValueOf(cfg)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return errors.Log(fmt.Errorf("config.SetFromDefaults: need a non-nil pointer to a struct, not %T", cfg))
	}
	return errors.Log(setFromDefaultTags(val.Elem()))
}

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

func setFromDefaultTags(val reflect.Value) error {
	typ := val.Type()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaults: type %v is not a struct", typ)
	}
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaultTags(fv))
			}
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("config.SetFromDefaults: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the given settable value from its string representation.
func setString(fv reflect.Value, s string) error {
	if fv.Addr().Type().Implements(textUnmarshalerType) {
		return fv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	if fv.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		fv.SetInt(int64(d))
		return nil
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %v", fv.Kind())
	}
	return nil
}

// Open reads the given config object from the given TOML file.
// A leading ~ in the filename is expanded to the user home directory.
func Open(cfg any, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	fp, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer fp.Close()
	dec := toml.NewDecoder(fp)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config.Open %q: %w", fn, err)
	}
	return nil
}

// Save writes the given config object to the given TOML file.
// A leading ~ in the filename is expanded to the user home directory.
func Save(cfg any, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(fp).Encode(cfg); err != nil {
		fp.Close()
		return fmt.Errorf("config.Save %q: %w", fn, err)
	}
	return fp.Close()
}
