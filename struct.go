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
	"fmt"
	"reflect"

	"lostluck.dev/tokenread/internal/schema"
)

// Struct decodes a line into the exported fields of the struct type T, one
// token per field in declaration order. Fields of nested structs are filled
// in place, and fields tagged `token:"-"` are skipped.
//
//	type player struct {
//		Name   string
//		Points uint64
//		Ratio  float64
//	}
//	p, err := tokenread.Line[tokenread.Struct[player]](in)
//
// Token counts are checked as for a tuple with one field per token, and
// a PatternParse error's Field counts the decoded fields in order. A T
// with a field that has no token form fails with ErrUnsupportedType.
type Struct[T any] struct {
	V T
}

// DecodeTokens implements Decodable.
func (s *Struct[T]) DecodeTokens(src TokenSource) error {
	typ := reflect.TypeFor[T]()
	l, err := schema.Of(typ)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	v := reflect.New(typ).Elem()
	n := l.Len()
	for i := range n {
		tok, ok := src.Next()
		if !ok {
			return &PatternError{Kind: PatternTooFew, Real: i, Expected: n}
		}
		if err := l.Set(v, i, tok); err != nil {
			return &PatternError{Kind: PatternParse, Field: i, Err: fmt.Errorf("field %v: %w", l.Name(i), err)}
		}
	}
	if err := expectEnd(src, n); err != nil {
		return err
	}
	s.V = v.Interface().(T)
	return nil
}
