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
	"errors"
	"fmt"
	"io"
)

var (
	// ErrUnsupportedType is returned by ParseToken for types it has no
	// parser for.
	ErrUnsupportedType = errors.New("unsupported token type")

	// ErrNotChar is returned when a Char token isn't exactly one character.
	ErrNotChar = errors.New("token is not a single character")
)

// PatternKind says why a fixed shape rejected the tokens of a line.
type PatternKind int

const (
	PatternParse   PatternKind = iota + 1 // A token failed to parse as its field's type.
	PatternTooMany                        // The line had more tokens than the shape has fields.
	PatternTooFew                         // The line had fewer tokens than the shape has fields.
)

func (k PatternKind) String() string {
	switch k {
	case PatternParse:
		return "parse"
	case PatternTooMany:
		return "too many tokens"
	case PatternTooFew:
		return "too few tokens"
	default:
		return fmt.Sprintf("PatternKind(%d)", int(k))
	}
}

// PatternError is returned when the tokens of a line don't match a tuple
// or fixed array.
//
// For PatternParse, Field is the position of the token that failed and Err
// is the error returned by that field's parser. Real and Expected hold the
// token counts for PatternTooFew, and Expected alone is set for
// PatternTooMany.
type PatternError struct {
	Kind     PatternKind
	Field    int
	Real     int
	Expected int
	Err      error
}

func (e *PatternError) Error() string {
	switch e.Kind {
	case PatternParse:
		return fmt.Sprintf("failed to parse token %d: %v", e.Field, e.Err)
	case PatternTooMany:
		return fmt.Sprintf("got more than %d tokens", e.Expected)
	case PatternTooFew:
		return fmt.Sprintf("got %d tokens, expected %d", e.Real, e.Expected)
	default:
		return fmt.Sprintf("token pattern error: %v", e.Kind)
	}
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Kind classifies errors returned by a Reader.
type Kind int

const (
	KindIO     Kind = iota + 1 // The underlying source failed.
	KindEOF                    // The underlying source has no more lines.
	KindDecode                 // A line was read, but didn't decode as the requested shape.
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "input error"
	case KindEOF:
		return "unexpected end of file"
	case KindDecode:
		return "failed to parse tokens"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LineError is returned by Reader.LineRaw. Its Kind is either KindIO or
// KindEOF.
type LineError struct {
	Kind   Kind
	LineNo int   // Number of the line that couldn't be read, counting from 1.
	Err    error // The I/O failure, or io.EOF.
}

func (e *LineError) Error() string {
	if e.Kind == KindEOF {
		return fmt.Sprintf("line %d: %v", e.LineNo, e.Kind)
	}
	return fmt.Sprintf("line %d: %v: %v", e.LineNo, e.Kind, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Record converts e into the error returned when reading records. There is
// no line text to attach, since no line was read.
func (e *LineError) Record() *RecordError {
	return &RecordError{Kind: e.Kind, LineNo: e.LineNo, Err: e.Err}
}

// RecordError is returned by Line and the iterators from Take and
// TakeCount.
//
// For KindDecode, Line holds the raw text of the offending line and Err
// the error of the shape's decoder, such as a *PatternError.
type RecordError struct {
	Kind   Kind
	LineNo int
	Line   string
	Err    error
}

func (e *RecordError) Error() string {
	switch e.Kind {
	case KindDecode:
		return fmt.Sprintf("line %d: %v %q: %v", e.LineNo, e.Kind, e.Line, e.Err)
	case KindEOF:
		return fmt.Sprintf("line %d: %v", e.LineNo, e.Kind)
	default:
		return fmt.Sprintf("line %d: %v: %v", e.LineNo, e.Kind, e.Err)
	}
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsEOF reports whether err is the end of the input, as returned by
// LineRaw, Line or the Take iterators.
func IsEOF(err error) bool {
	var le *LineError
	if errors.As(err, &le) {
		return le.Kind == KindEOF
	}
	var re *RecordError
	if errors.As(err, &re) {
		return re.Kind == KindEOF
	}
	return errors.Is(err, io.EOF)
}
