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
	"cmp"
	"container/heap"

	"github.com/gammazero/deque"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Collections decode every token of a line as an element. The first
// element that fails to parse aborts the decode, and its parse error is
// returned as is, so the caller sees exactly what ParseToken reported.

// eachToken parses every remaining token of src as a T, calling add for
// each in token order.
func eachToken[T any](src TokenSource, add func(T)) error {
	for {
		tok, ok := src.Next()
		if !ok {
			return nil
		}
		v, err := ParseToken[T](tok)
		if err != nil {
			return err
		}
		add(v)
	}
}

// Slice is a record of any number of fields of the same type, in line
// order.
type Slice[T any] []T

// DecodeTokens implements Decodable.
func (s *Slice[T]) DecodeTokens(src TokenSource) error {
	var out Slice[T]
	if err := eachToken(src, func(v T) { out = append(out, v) }); err != nil {
		return err
	}
	if out == nil {
		out = Slice[T]{}
	}
	*s = out
	return nil
}

// Deque is a double ended queue of the fields of a record, in line order.
type Deque[T any] struct {
	*deque.Deque[T]
}

// DecodeTokens implements Decodable.
func (d *Deque[T]) DecodeTokens(src TokenSource) error {
	q := deque.New[T]()
	if err := eachToken(src, q.PushBack); err != nil {
		return err
	}
	d.Deque = q
	return nil
}

// Set is the unordered set of the fields of a record. Repeated tokens
// are kept once.
type Set[T comparable] map[T]struct{}

// DecodeTokens implements Decodable.
func (s *Set[T]) DecodeTokens(src TokenSource) error {
	out := Set[T]{}
	if err := eachToken(src, func(v T) { out[v] = struct{}{} }); err != nil {
		return err
	}
	*s = out
	return nil
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// SortedSet is the set of the fields of a record in ascending order.
// Repeated values are kept once. For floats, NaNs sort first and count as
// a single value.
type SortedSet[T constraints.Ordered] []T

// DecodeTokens implements Decodable.
func (s *SortedSet[T]) DecodeTokens(src TokenSource) error {
	var out []T
	if err := eachToken(src, func(v T) { out = append(out, v) }); err != nil {
		return err
	}
	slices.Sort(out)
	*s = SortedSet[T](slices.CompactFunc(out, func(a, b T) bool { return cmp.Compare(a, b) == 0 }))
	return nil
}

// Has reports whether v is in the set.
func (s SortedSet[T]) Has(v T) bool {
	_, ok := slices.BinarySearch(s, v)
	return ok
}

// Heap is a max priority queue of the fields of a record. Every field is
// kept, including repeats.
type Heap[T constraints.Ordered] struct {
	h maxHeap[T]
}

// DecodeTokens implements Decodable.
func (h *Heap[T]) DecodeTokens(src TokenSource) error {
	var vals maxHeap[T]
	if err := eachToken(src, func(v T) { vals = append(vals, v) }); err != nil {
		return err
	}
	heap.Init(&vals)
	h.h = vals
	return nil
}

// Len returns the number of values in the heap.
func (h *Heap[T]) Len() int {
	return h.h.Len()
}

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	heap.Push(&h.h, v)
}

// Peek returns the largest value without removing it. It's false for an
// empty heap.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.h) == 0 {
		var zero T
		return zero, false
	}
	return h.h[0], true
}

// Pop removes and returns the largest value. It's false for an empty heap.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.h) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&h.h).(T), true
}

// maxHeap implements heap.Interface with the largest value on top.
type maxHeap[T constraints.Ordered] []T

func (h maxHeap[T]) Len() int           { return len(h) }
func (h maxHeap[T]) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxHeap[T]) Push(x any) {
	*h = append(*h, x.(T))
}

func (h *maxHeap[T]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
