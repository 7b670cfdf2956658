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

// Decodable is implemented by types that decode themselves from the
// tokens of a single line. It's the only extension point of the package:
// Line, Take and Parse accept any type whose pointer implements it.
//
// DecodeTokens must consume the tokens it needs from src and report an
// error rather than leave the receiver partially decoded.
type Decodable interface {
	DecodeTokens(src TokenSource) error
}

// decodablePtr constrains PT to be a pointer to T implementing Decodable,
// so callers only ever name the value type.
type decodablePtr[T any] interface {
	*T
	Decodable
}

// Parse decodes a T from the tokens in src.
func Parse[T any, PT decodablePtr[T]](src TokenSource) (T, error) {
	var v T
	if err := PT(&v).DecodeTokens(src); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ParseLine splits line into tokens and decodes them as a T.
//
//	p, err := tokenread.ParseLine[tokenread.Tuple2[uint64, tokenread.Char]]("15 B")
func ParseLine[T any, PT decodablePtr[T]](line string) (T, error) {
	return Parse[T, PT](Fields(line))
}

// decodeField parses the next token of src into dst, the field at
// position i of a shape with n fields.
func decodeField[T any](src TokenSource, dst *T, i, n int) error {
	tok, ok := src.Next()
	if !ok {
		return &PatternError{Kind: PatternTooFew, Real: i, Expected: n}
	}
	v, err := ParseToken[T](tok)
	if err != nil {
		return &PatternError{Kind: PatternParse, Field: i, Err: err}
	}
	*dst = v
	return nil
}

// expectEnd fails if src has tokens left after all n fields were decoded.
func expectEnd(src TokenSource, n int) error {
	if _, ok := src.Next(); ok {
		return &PatternError{Kind: PatternTooMany, Expected: n}
	}
	return nil
}

// decodeArray fills every slot of dst from src, and requires src to hold
// exactly len(dst) tokens. dst is left untouched on failure.
func decodeArray[T any](src TokenSource, dst []T) error {
	vals := make([]T, len(dst))
	for i := range vals {
		if err := decodeField(src, &vals[i], i, len(vals)); err != nil {
			return err
		}
	}
	if err := expectEnd(src, len(vals)); err != nil {
		return err
	}
	copy(dst, vals)
	return nil
}
