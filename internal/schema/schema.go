// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package schema derives the token layout of Go struct types: which fields
// a line's tokens fill, in what order, and how each token is parsed.
package schema

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// tokenUnmarshaler matches tokenread.TokenUnmarshaler.
type tokenUnmarshaler interface {
	UnmarshalToken(tok string) error
}

var (
	tokenUnmarshalerType = reflect.TypeFor[tokenUnmarshaler]()
	textUnmarshalerType  = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Layout lists the fields of a struct type that are filled from tokens, in
// the order their tokens appear on a line.
//
// Exported fields are used in declaration order. Fields of nested struct
// types without a token form of their own are flattened in place, and
// fields tagged `token:"-"` are skipped.
type Layout struct {
	typ    reflect.Type
	fields []field
}

type field struct {
	name  string // Dotted path through nested structs.
	index []int
	parse ParseFunc
}

// ParseFunc parses tok into v, and leaves v untouched on failure. v must
// be addressable.
type ParseFunc func(v reflect.Value, tok string) error

var (
	layouts sync.Map // reflect.Type -> *Layout
	parsers sync.Map // reflect.Type -> ParseFunc
)

// Parser returns the parser of single tokens into values of type t, or
// false if t has no token form.
//
// Types whose pointer implements UnmarshalToken(string) error or
// encoding.TextUnmarshaler use that method. Otherwise any type of string,
// bool, integer or float kind is parsed by kind, so named types such as
// time.Duration parse as their underlying number.
func Parser(t reflect.Type) (ParseFunc, bool) {
	if p, ok := parsers.Load(t); ok {
		return p.(ParseFunc), true
	}
	p, ok := buildParser(t)
	if !ok {
		return nil, false
	}
	actual, _ := parsers.LoadOrStore(t, p)
	return actual.(ParseFunc), true
}

// Of returns the layout of the struct type t. Layouts are built once per
// type and shared.
func Of(t reflect.Type) (*Layout, error) {
	if l, ok := layouts.Load(t); ok {
		return l.(*Layout), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%v is not a struct type", t)
	}
	l := &Layout{typ: t}
	if err := l.build(t, nil, ""); err != nil {
		return nil, err
	}
	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*Layout), nil
}

func (l *Layout) build(t reflect.Type, index []int, prefix string) error {
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Tag.Get("token") == "-" {
			continue
		}
		idx := append(append(make([]int, 0, len(index)+1), index...), i)
		name := prefix + sf.Name
		if parse, ok := Parser(sf.Type); ok {
			l.fields = append(l.fields, field{name: name, index: idx, parse: parse})
			continue
		}
		if sf.Type.Kind() == reflect.Struct {
			if err := l.build(sf.Type, idx, name+"."); err != nil {
				return err
			}
			continue
		}
		return fmt.Errorf("field %v of %v has type %v, which has no token form", name, l.typ, sf.Type)
	}
	return nil
}

// Len returns the number of tokens a line of this layout holds.
func (l *Layout) Len() int {
	return len(l.fields)
}

// Name returns the name of field i, with nested fields named by their
// dotted path.
func (l *Layout) Name(i int) string {
	return l.fields[i].name
}

// Set parses tok into field i of v, which must be an addressable struct of
// the layout's type.
func (l *Layout) Set(v reflect.Value, i int, tok string) error {
	f := l.fields[i]
	return f.parse(v.FieldByIndex(f.index), tok)
}

func buildParser(t reflect.Type) (ParseFunc, bool) {
	pt := reflect.PointerTo(t)
	switch {
	case pt.Implements(tokenUnmarshalerType):
		return func(v reflect.Value, tok string) error {
			return v.Addr().Interface().(tokenUnmarshaler).UnmarshalToken(tok)
		}, true
	case pt.Implements(textUnmarshalerType):
		return func(v reflect.Value, tok string) error {
			return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(tok))
		}, true
	}
	return buildAtomic(t)
}

func buildAtomic(t reflect.Type) (ParseFunc, bool) {
	switch t.Kind() {
	case reflect.String:
		return func(v reflect.Value, tok string) error {
			v.SetString(tok)
			return nil
		}, true
	case reflect.Bool:
		return func(v reflect.Value, tok string) error {
			b, err := strconv.ParseBool(tok)
			if err != nil {
				return err
			}
			v.SetBool(b)
			return nil
		}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := t.Bits()
		return func(v reflect.Value, tok string) error {
			i, err := strconv.ParseInt(tok, 10, bits)
			if err != nil {
				return err
			}
			v.SetInt(i)
			return nil
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bits := t.Bits()
		return func(v reflect.Value, tok string) error {
			u, err := strconv.ParseUint(tok, 10, bits)
			if err != nil {
				return err
			}
			v.SetUint(u)
			return nil
		}, true
	case reflect.Float32, reflect.Float64:
		bits := t.Bits()
		return func(v reflect.Value, tok string) error {
			f, err := strconv.ParseFloat(tok, bits)
			if err != nil {
				return err
			}
			v.SetFloat(f)
			return nil
		}, true
	default:
		return nil, false
	}
}
