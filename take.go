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
	"iter"

	"golang.org/x/exp/constraints"
)

// Take returns an iterator that reads and decodes up to n lines of r as
// T values. See TakeCount.
//
//	for v, err := range tokenread.Take[tokenread.Tuple2[string, int]](in, n) {
//		...
//	}
func Take[T any, PT decodablePtr[T]](r *Reader, n int) iter.Seq2[T, error] {
	return TakeCount[T, PT](r, uint(max(n, 0)))
}

// TakeCount is Take with a count of any unsigned integer type, for inputs
// with more lines than an int can count.
//
// Each step reads one line with Line and yields its value or error. A
// line that fails to decode doesn't stop the iteration; the caller decides
// whether to keep going. The end of the input is yielded once as a
// *RecordError of KindEOF, after which the iterator is exhausted.
//
// Lines are only read as the iterator is advanced, and the remaining count
// is kept across range loops: breaking out of a loop and ranging again
// continues where the first loop left off. The Reader must not be used
// by anything else while the iterator is in use.
func TakeCount[T any, PT decodablePtr[T], C constraints.Unsigned](r *Reader, n C) iter.Seq2[T, error] {
	remaining := n
	return func(yield func(T, error) bool) {
		for remaining != 0 {
			remaining--
			v, err := Line[T, PT](r)
			if IsEOF(err) {
				remaining = 0
			}
			if !yield(v, err) {
				return
			}
		}
	}
}
