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

package tokenread

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"

	"lostluck.dev/tokenread/internal/schema"
)

// Char is a single character token. Unlike rune, which is an int32 and
// parses as a number, a Char parses from a token holding exactly one
// character.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

// UnmarshalToken implements TokenUnmarshaler.
func (c *Char) UnmarshalToken(tok string) error {
	v, err := parseChar(tok)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// TokenUnmarshaler is implemented by types that parse themselves from a
// single token. It takes precedence over encoding.TextUnmarshaler.
type TokenUnmarshaler interface {
	UnmarshalToken(tok string) error
}

// ParseToken parses a single token as a T.
//
// Strings, booleans, integers and floats of every width and Char are
// supported directly. Other types must implement TokenUnmarshaler or
// encoding.TextUnmarshaler on their pointer, or be defined on one of the
// supported kinds, like time.Duration, which parses as its int64 count.
// Anything else fails with an error wrapping ErrUnsupportedType.
func ParseToken[T any](tok string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = tok
	case *bool:
		*p, err = strconv.ParseBool(tok)
	case *Char:
		*p, err = parseChar(tok)
	case *int:
		*p, err = parseInt[int](tok, strconv.IntSize)
	case *int8:
		*p, err = parseInt[int8](tok, 8)
	case *int16:
		*p, err = parseInt[int16](tok, 16)
	case *int32:
		*p, err = parseInt[int32](tok, 32)
	case *int64:
		*p, err = parseInt[int64](tok, 64)
	case *uint:
		*p, err = parseUint[uint](tok, strconv.IntSize)
	case *uint8:
		*p, err = parseUint[uint8](tok, 8)
	case *uint16:
		*p, err = parseUint[uint16](tok, 16)
	case *uint32:
		*p, err = parseUint[uint32](tok, 32)
	case *uint64:
		*p, err = parseUint[uint64](tok, 64)
	case *uintptr:
		*p, err = parseUint[uintptr](tok, strconv.IntSize)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(tok, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(tok, 64)
	case TokenUnmarshaler:
		err = p.UnmarshalToken(tok)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(tok))
	default:
		parse, ok := schema.Parser(reflect.TypeFor[T]())
		if !ok {
			err = fmt.Errorf("%w: %T", ErrUnsupportedType, v)
			break
		}
		err = parse(reflect.ValueOf(&v).Elem(), tok)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func parseInt[I ~int | ~int8 | ~int16 | ~int32 | ~int64](tok string, bits int) (I, error) {
	i, err := strconv.ParseInt(tok, 10, bits)
	return I(i), err
}

func parseUint[U ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](tok string, bits int) (U, error) {
	u, err := strconv.ParseUint(tok, 10, bits)
	return U(u), err
}

func parseChar(tok string) (Char, error) {
	r, size := utf8.DecodeRuneInString(tok)
	if size == 0 || size != len(tok) {
		return 0, fmt.Errorf("%w: %q", ErrNotChar, tok)
	}
	return Char(r), nil
}
