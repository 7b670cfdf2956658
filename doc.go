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

// Package tokenread decodes whitespace delimited text into typed values,
// one line at a time. It's meant for programs reading line oriented input
// such as counts, tuples and lists of numbers, that need to fail with a
// useful error when a line doesn't have the expected shape.
//
// For example, given the input
//
//	3
//	James 158000 0.58
//	13 8 17
//
// the lines decode with
//
//	in := tokenread.NewReader(os.Stdin)
//	n, err := tokenread.Line[tokenread.Tuple1[int]](in)
//	player, err := tokenread.Line[tokenread.Tuple3[string, uint64, float64]](in)
//	nums, err := tokenread.Line[tokenread.Slice[int64]](in)
//
// Tuples (Tuple0 to Tuple16) and arrays (Array0 to Array16) require an
// exact number of tokens. Slice, Deque, Set, SortedSet and Heap take every
// token on the line. Struct fills the exported fields of a struct type in
// declaration order. Other shapes can be decoded by implementing
// Decodable, and other field types by implementing TokenUnmarshaler.
//
// Take and TakeCount read a run of lines lazily as an iter.Seq2.
//
// Errors are values of three kinds: the end of the input, a failure of
// the underlying reader, and a line that didn't decode. The last carries
// the text of the offending line.
package tokenread

//go:generate go run ./internal/gen/tuplegen -max 16 -o tuples_gen.go
