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

// Package synthetic produces random records and their text form.
// Typically used for property tests and benchmarks of decoders.
package synthetic

import (
	"iter"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
	"lostluck.dev/tokenread"
)

// Config controls the layout of generated lines.
type Config struct {
	NumRecords int    // Number of lines to produce.
	Seed       uint64 // Seed of the random source, for reproducible runs.
	MaxSpace   int    // Longest whitespace run between tokens. Values below 1 mean 1.
	Pad        bool   // Add whitespace runs before the first and after the last token.
}

// whitespace excludes '\n', which would split the record in two.
const whitespace = " \t\v\f\r"

// Field produces a random value and the token it's written as.
type Field[E any] func(r *rand.Rand) (E, string)

// Record produces a random value and the tokens of its line.
type Record[T any] func(r *rand.Rand) (T, []string)

// Int produces signed integers over the whole range of E.
func Int[E constraints.Signed]() Field[E] {
	return func(r *rand.Rand) (E, string) {
		v := E(r.Uint64())
		return v, strconv.FormatInt(int64(v), 10)
	}
}

// Uint produces unsigned integers over the whole range of E.
func Uint[E constraints.Unsigned]() Field[E] {
	return func(r *rand.Rand) (E, string) {
		v := E(r.Uint64())
		return v, strconv.FormatUint(uint64(v), 10)
	}
}

// Float produces finite floats, written with the fewest digits that read
// back exactly.
func Float[E constraints.Float]() Field[E] {
	return func(r *rand.Rand) (E, string) {
		v := E(r.NormFloat64() * math.Pow(10, float64(r.IntN(12)-6)))
		bits := int(unsafe.Sizeof(v)) * 8
		return v, strconv.FormatFloat(float64(v), 'g', -1, bits)
	}
}

const wordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-.:/éß"

// Word produces non-empty tokens of letters, digits and punctuation.
func Word() Field[string] {
	chars := []rune(wordChars)
	return func(r *rand.Rand) (string, string) {
		var sb strings.Builder
		for range 1 + r.IntN(8) {
			sb.WriteRune(chars[r.IntN(len(chars))])
		}
		return sb.String(), sb.String()
	}
}

// Char produces single character tokens.
func Char() Field[tokenread.Char] {
	chars := []rune(wordChars)
	return func(r *rand.Rand) (tokenread.Char, string) {
		c := chars[r.IntN(len(chars))]
		return tokenread.Char(c), string(c)
	}
}

// Slice produces records of up to maxLen values of f.
func Slice[E any](f Field[E], maxLen int) Record[[]E] {
	return func(r *rand.Rand) ([]E, []string) {
		n := r.IntN(maxLen + 1)
		vals, toks := make([]E, n), make([]string, n)
		for i := range n {
			vals[i], toks[i] = f(r)
		}
		return vals, toks
	}
}

// Lines yields cfg.NumRecords lines produced by rec, with the value each
// line should decode to.
func Lines[T any](cfg Config, rec Record[T]) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
		for range cfg.NumRecords {
			v, toks := rec(r)
			if !yield(Join(r, cfg, toks), v) {
				return
			}
		}
	}
}

// Join writes toks as a line, separated by random whitespace runs.
func Join(r *rand.Rand, cfg Config, toks []string) string {
	var sb strings.Builder
	if cfg.Pad {
		space(r, cfg, &sb)
	}
	for i, tok := range toks {
		if i > 0 {
			space(r, cfg, &sb)
		}
		sb.WriteString(tok)
	}
	if cfg.Pad {
		space(r, cfg, &sb)
	}
	return sb.String()
}

func space(r *rand.Rand, cfg Config, sb *strings.Builder) {
	for range 1 + r.IntN(max(cfg.MaxSpace, 1)) {
		sb.WriteByte(whitespace[r.IntN(len(whitespace))])
	}
}
