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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTakeGetsMultipleLines(t *testing.T) {
	r := NewReader(strings.NewReader("0\n1\n2\nx"))
	i := 0
	for v, err := range Take[Tuple1[int]](r, 3) {
		if err != nil {
			t.Fatalf("item %d failed: %v", i, err)
		}
		if v.F0 != i {
			t.Errorf("item %d = %d, want %d", i, v.F0, i)
		}
		i++
	}
	if got, want := i, 3; got != want {
		t.Errorf("Take(3) yielded %d items, want %d", got, want)
	}
	// The fourth line is left for the caller.
	if line, err := r.LineRaw(); err != nil || line != "x" {
		t.Errorf("LineRaw() after Take = %q, %v, want %q, nil", line, err, "x")
	}
}

func TestTakeCount(t *testing.T) {
	input := "1 a\n2 b\n3 c\n4 d\n"
	want := []Tuple2[uint64, Char]{{1, 'a'}, {2, 'b'}, {3, 'c'}}

	collect := func(t *testing.T, seq func(yield func(Tuple2[uint64, Char], error) bool)) []Tuple2[uint64, Char] {
		t.Helper()
		var got []Tuple2[uint64, Char]
		for v, err := range seq {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got = append(got, v)
		}
		return got
	}

	t.Run("uint8", func(t *testing.T) {
		r := NewReader(strings.NewReader(input))
		got := collect(t, TakeCount[Tuple2[uint64, Char]](r, uint8(3)))
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("TakeCount(uint8(3)) diff (-want, +got):\n%v", d)
		}
	})
	t.Run("uint64", func(t *testing.T) {
		r := NewReader(strings.NewReader(input))
		got := collect(t, TakeCount[Tuple2[uint64, Char]](r, uint64(3)))
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("TakeCount(uint64(3)) diff (-want, +got):\n%v", d)
		}
	})
}

func TestTakeMatchesLine(t *testing.T) {
	input := "5 6\n7 x\n\n9 10\n"
	direct := NewReader(strings.NewReader(input))
	taken := NewReader(strings.NewReader(input))
	n := 0
	for got, gotErr := range Take[Slice[int]](taken, 4) {
		want, wantErr := Line[Slice[int]](direct)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("item %d diff (-Line, +Take):\n%v", n, d)
		}
		if (gotErr == nil) != (wantErr == nil) {
			t.Errorf("item %d error = %v, Line returned %v", n, gotErr, wantErr)
		}
		n++
	}
	if got, want := n, 4; got != want {
		t.Errorf("Take(4) yielded %d items, want %d", got, want)
	}
}

func TestTakeContinuesAfterDecodeError(t *testing.T) {
	r := NewReader(strings.NewReader("1\none\n3\n"))
	var vals []int
	var errs int
	for v, err := range Take[Tuple1[int]](r, 3) {
		if err != nil {
			var rerr *RecordError
			if !errors.As(err, &rerr) || rerr.Kind != KindDecode || rerr.Line != "one" {
				t.Errorf("unexpected error: %v", err)
			}
			errs++
			continue
		}
		vals = append(vals, v.F0)
	}
	if d := cmp.Diff([]int{1, 3}, vals); d != "" {
		t.Errorf("values diff (-want, +got):\n%v", d)
	}
	if errs != 1 {
		t.Errorf("got %d errors, want 1", errs)
	}
}

func TestTakeStopsAtEndOfInput(t *testing.T) {
	r := NewReader(strings.NewReader("1\n2\n"))
	var vals []int
	var errs []error
	for v, err := range Take[Tuple1[int]](r, 5) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals = append(vals, v.F0)
	}
	if d := cmp.Diff([]int{1, 2}, vals); d != "" {
		t.Errorf("values diff (-want, +got):\n%v", d)
	}
	if len(errs) != 1 || !IsEOF(errs[0]) {
		t.Errorf("errors = %v, want a single end of input error", errs)
	}
}

func TestTakeExhaustionIsPermanent(t *testing.T) {
	r := NewReader(strings.NewReader("1\n2\n3\n"))
	seq := Take[Tuple1[int]](r, 1)
	count := 0
	for range 3 {
		for _, err := range seq {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			count++
		}
	}
	if count != 1 {
		t.Errorf("Take(1) ranged three times yielded %d items, want 1", count)
	}
	if got, want := r.LineNo(), 1; got != want {
		t.Errorf("LineNo() = %d, want %d", got, want)
	}
}

func TestTakeResumesAfterBreak(t *testing.T) {
	r := NewReader(strings.NewReader("1\n2\n3\n4\n"))
	seq := Take[Tuple1[int]](r, 3)
	var vals []int
	for v := range seq {
		vals = append(vals, v.F0)
		break
	}
	if got, want := r.LineNo(), 1; got != want {
		t.Errorf("Take read ahead: LineNo() = %d, want %d", got, want)
	}
	for v := range seq {
		vals = append(vals, v.F0)
	}
	if d := cmp.Diff([]int{1, 2, 3}, vals); d != "" {
		t.Errorf("values diff (-want, +got):\n%v", d)
	}
}

func TestTakeZeroAndNegative(t *testing.T) {
	for _, n := range []int{0, -3} {
		r := NewReader(strings.NewReader("1\n"))
		for v, err := range Take[Tuple1[int]](r, n) {
			t.Errorf("Take(%d) yielded %v, %v", n, v, err)
		}
		if r.LineNo() != 0 {
			t.Errorf("Take(%d) read a line", n)
		}
	}
}
