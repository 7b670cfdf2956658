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
	"unicode"
	"unicode/utf8"
)

// TokenSource yields the tokens of a single line, left to right.
//
// Once Next reports false, the source is exhausted and every later call
// must also report false.
type TokenSource interface {
	Next() (string, bool)
}

// Tokens is a lazy TokenSource over a single line. Tokens are maximal runs
// of non-whitespace characters, so leading, trailing and repeated
// whitespace never produce empty tokens.
type Tokens struct {
	line string
	pos  int
}

var _ TokenSource = (*Tokens)(nil)

// Fields returns the tokens of line. The line isn't split up front;
// tokens are found as Next is called.
func Fields(line string) *Tokens {
	return &Tokens{line: line}
}

// Next returns the next token, or false once the line is exhausted.
func (t *Tokens) Next() (string, bool) {
	start := -1
	for t.pos < len(t.line) {
		r, size := rune(t.line[t.pos]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRuneInString(t.line[t.pos:])
		}
		if unicode.IsSpace(r) {
			if start >= 0 {
				tok := t.line[start:t.pos]
				t.pos += size
				return tok, true
			}
		} else if start < 0 {
			start = t.pos
		}
		t.pos += size
	}
	if start >= 0 {
		return t.line[start:], true
	}
	return "", false
}

// Split returns all the tokens of line.
func Split(line string) []string {
	var toks []string
	for t := Fields(line); ; {
		tok, ok := t.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// SliceSource is a TokenSource over tokens that were already split.
type SliceSource struct {
	toks []string
}

var _ TokenSource = (*SliceSource)(nil)

// FromSlice returns a TokenSource yielding toks in order.
func FromSlice(toks []string) *SliceSource {
	return &SliceSource{toks: toks}
}

func (s *SliceSource) Next() (string, bool) {
	if len(s.toks) == 0 {
		return "", false
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	return tok, true
}
