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
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlice(t *testing.T) {
	tests := []struct {
		line string
		want Slice[int64]
	}{
		{"13 8 17", Slice[int64]{13, 8, 17}},
		{"40", Slice[int64]{40}},
		{" ", Slice[int64]{}},
		{"1\t\r    \t  7", Slice[int64]{1, 7}},
	}
	for _, test := range tests {
		got, err := ParseLine[Slice[int64]](test.line)
		if err != nil {
			t.Fatalf("ParseLine[Slice](%q) failed: %v", test.line, err)
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("ParseLine[Slice](%q) diff (-want, +got):\n%v", test.line, d)
		}
	}
}

func TestDeque(t *testing.T) {
	d, err := ParseLine[Deque[string]]("first middle last")
	if err != nil {
		t.Fatalf("ParseLine[Deque] failed: %v", err)
	}
	if got, want := d.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := d.Front(), "first"; got != want {
		t.Errorf("Front() = %q, want %q", got, want)
	}
	if got, want := d.Back(), "last"; got != want {
		t.Errorf("Back() = %q, want %q", got, want)
	}
	if got, want := d.At(1), "middle"; got != want {
		t.Errorf("At(1) = %q, want %q", got, want)
	}
}

func TestSet(t *testing.T) {
	s, err := ParseLine[Set[uint64]]("3 1 3 7")
	if err != nil {
		t.Fatalf("ParseLine[Set] failed: %v", err)
	}
	want := Set[uint64]{1: {}, 3: {}, 7: {}}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("ParseLine[Set] diff (-want, +got):\n%v", d)
	}
	if !s.Has(7) || s.Has(2) {
		t.Errorf("Has reports wrong membership for %v", s)
	}

	empty, err := ParseLine[Set[uint64]]("")
	if err != nil {
		t.Fatalf("ParseLine[Set] of an empty line failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("ParseLine[Set] of an empty line = %#v, want an empty set", empty)
	}
}

func TestSortedSet(t *testing.T) {
	s, err := ParseLine[SortedSet[string]]("pear apple fig apple")
	if err != nil {
		t.Fatalf("ParseLine[SortedSet] failed: %v", err)
	}
	if d := cmp.Diff(SortedSet[string]{"apple", "fig", "pear"}, s); d != "" {
		t.Errorf("ParseLine[SortedSet] diff (-want, +got):\n%v", d)
	}
	if !s.Has("fig") || s.Has("kiwi") {
		t.Errorf("Has reports wrong membership for %v", s)
	}
}

func TestSortedSetNaN(t *testing.T) {
	s, err := ParseLine[SortedSet[float64]]("NaN 1 NaN -2 1")
	if err != nil {
		t.Fatalf("ParseLine[SortedSet] failed: %v", err)
	}
	if got, want := len(s), 3; got != want {
		t.Fatalf("ParseLine[SortedSet] = %v, want %d values", s, want)
	}
	if !math.IsNaN(s[0]) || s[1] != -2 || s[2] != 1 {
		t.Errorf("ParseLine[SortedSet] = %v, want [NaN -2 1]", s)
	}
	if !s.Has(math.NaN()) {
		t.Errorf("Has(NaN) = false for %v", s)
	}
}

func TestHeap(t *testing.T) {
	h, err := ParseLine[Heap[int]]("5 1 9 5 3")
	if err != nil {
		t.Fatalf("ParseLine[Heap] failed: %v", err)
	}
	if top, ok := h.Peek(); !ok || top != 9 {
		t.Errorf("Peek() = %v, %v, want 9, true", top, ok)
	}
	h.Push(4)
	var got []int
	for h.Len() > 0 {
		v, _ := h.Pop()
		got = append(got, v)
	}
	if d := cmp.Diff([]int{9, 5, 5, 4, 3, 1}, got); d != "" {
		t.Errorf("heap pop order diff (-want, +got):\n%v", d)
	}
	if _, ok := h.Pop(); ok {
		t.Errorf("Pop() on an empty heap reported a value")
	}
	if _, ok := h.Peek(); ok {
		t.Errorf("Peek() on an empty heap reported a value")
	}
}

func TestCollectionElementErrors(t *testing.T) {
	parses := map[string]func(string) error{
		"Slice": func(l string) error { _, err := ParseLine[Slice[int8]](l); return err },
		"Deque": func(l string) error { _, err := ParseLine[Deque[int8]](l); return err },
		"Set":   func(l string) error { _, err := ParseLine[Set[int8]](l); return err },
		"SortedSet": func(l string) error {
			_, err := ParseLine[SortedSet[int8]](l)
			return err
		},
		"Heap": func(l string) error { _, err := ParseLine[Heap[int8]](l); return err },
	}
	for name, parse := range parses {
		t.Run(name, func(t *testing.T) {
			err := parse("1 2 one 3")
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) {
				t.Fatalf("got %v, want the element's *strconv.NumError", err)
			}
			if got, want := numErr.Num, "one"; got != want {
				t.Errorf("error is for token %q, want %q", got, want)
			}
			var perr *PatternError
			if errors.As(err, &perr) {
				t.Errorf("collection error %v was wrapped in a *PatternError", err)
			}
		})
	}
}

func TestSliceFailureLeavesValue(t *testing.T) {
	s := Slice[int]{4, 5}
	if err := s.DecodeTokens(Fields("1 x")); err == nil {
		t.Fatalf("DecodeTokens succeeded, want error")
	}
	if d := cmp.Diff(Slice[int]{4, 5}, s); d != "" {
		t.Errorf("failed decode changed the slice, diff (-want, +got):\n%v", d)
	}
}
