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

package tokenread_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"lostluck.dev/tokenread"
	"lostluck.dev/tokenread/internal/synthetic"
)

type mixed = tokenread.Tuple5[int64, uint16, float64, string, tokenread.Char]

func mixedRecord() synthetic.Record[mixed] {
	i64, u16 := synthetic.Int[int64](), synthetic.Uint[uint16]()
	f64, word, char := synthetic.Float[float64](), synthetic.Word(), synthetic.Char()
	return func(r *rand.Rand) (mixed, []string) {
		var v mixed
		toks := make([]string, 5)
		v.F0, toks[0] = i64(r)
		v.F1, toks[1] = u16(r)
		v.F2, toks[2] = f64(r)
		v.F3, toks[3] = word(r)
		v.F4, toks[4] = char(r)
		return v, toks
	}
}

// roundTrip writes the generated lines as one input, reads them back with
// Take, and checks every line decodes to the value it was generated from.
func roundTrip[T any, PT interface {
	*T
	tokenread.Decodable
}](t *testing.T, cfg synthetic.Config, rec synthetic.Record[T]) {
	t.Helper()
	var sb strings.Builder
	var want []T
	for line, v := range synthetic.Lines(cfg, rec) {
		sb.WriteString(line)
		sb.WriteByte('\n')
		want = append(want, v)
	}
	in := tokenread.NewReader(strings.NewReader(sb.String()))
	var got []T
	for v, err := range tokenread.Take[T, PT](in, cfg.NumRecords) {
		if err != nil {
			t.Fatalf("line %d: unexpected error: %v", in.LineNo(), err)
		}
		got = append(got, v)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("round trip of %d lines (seed %d) mismatch (-want, +got):\n%v", cfg.NumRecords, cfg.Seed, d)
	}
	if _, err := in.LineRaw(); !tokenread.IsEOF(err) {
		t.Errorf("after %d lines LineRaw() = %v, want end of input", cfg.NumRecords, err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		t.Run(fmt.Sprint("tuple/seed", seed), func(t *testing.T) {
			cfg := synthetic.Config{NumRecords: 200, Seed: seed, MaxSpace: 3, Pad: seed%2 == 0}
			roundTrip(t, cfg, mixedRecord())
		})
		t.Run(fmt.Sprint("slice/seed", seed), func(t *testing.T) {
			cfg := synthetic.Config{NumRecords: 200, Seed: seed, MaxSpace: 4, Pad: true}
			rec := synthetic.Slice(synthetic.Int[int32](), 12)
			roundTrip(t, cfg, asSlice(rec))
		})
		t.Run(fmt.Sprint("float32/seed", seed), func(t *testing.T) {
			cfg := synthetic.Config{NumRecords: 100, Seed: seed, MaxSpace: 2}
			f32 := synthetic.Float[float32]()
			rec := func(r *rand.Rand) (tokenread.Array3[float32], []string) {
				var a tokenread.Array3[float32]
				toks := make([]string, len(a))
				for i := range a {
					a[i], toks[i] = f32(r)
				}
				return a, toks
			}
			roundTrip(t, cfg, synthetic.Record[tokenread.Array3[float32]](rec))
		})
	}
}

// asSlice converts generated []E records to the Slice decoder's type.
func asSlice[E any](rec synthetic.Record[[]E]) synthetic.Record[tokenread.Slice[E]] {
	return func(r *rand.Rand) (tokenread.Slice[E], []string) {
		v, toks := rec(r)
		if v == nil {
			v = []E{}
		}
		return v, toks
	}
}

func BenchmarkLine(b *testing.B) {
	benches := []struct {
		name string
		rec  synthetic.Record[string]
		read func(*tokenread.Reader) error
	}{
		{
			name: "tuple5",
			rec:  textOnly(mixedRecord()),
			read: func(r *tokenread.Reader) error {
				_, err := tokenread.Line[mixed](r)
				return err
			},
		}, {
			name: "slice16",
			rec:  textOnly(synthetic.Slice(synthetic.Uint[uint64](), 16)),
			read: func(r *tokenread.Reader) error {
				_, err := tokenread.Line[tokenread.Slice[uint64]](r)
				return err
			},
		}, {
			name: "sortedset16",
			rec:  textOnly(synthetic.Slice(synthetic.Word(), 16)),
			read: func(r *tokenread.Reader) error {
				_, err := tokenread.Line[tokenread.SortedSet[string]](r)
				return err
			},
		},
	}
	for _, bench := range benches {
		cfg := synthetic.Config{NumRecords: 1000, Seed: 1, MaxSpace: 2}
		var sb strings.Builder
		for line := range synthetic.Lines(cfg, bench.rec) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		input := sb.String()
		b.Run(bench.name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for range b.N {
				r := tokenread.NewReader(strings.NewReader(input))
				for range cfg.NumRecords {
					if err := bench.read(r); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// textOnly drops the generated values, keeping only the line text.
func textOnly[T any](rec synthetic.Record[T]) synthetic.Record[string] {
	return func(r *rand.Rand) (string, []string) {
		_, toks := rec(r)
		return "", toks
	}
}
