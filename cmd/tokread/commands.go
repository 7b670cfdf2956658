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

package main

import (
	"context"
	"encoding/binary"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"lostluck.dev/tokenread"
)

type player struct {
	Name   string `json:"name"`
	Points int64  `json:"points"`
}

// winner prints the player with the most points. Ties go to the player
// listed first.
func winner(cfg *Config, in *tokenread.Reader, out io.Writer) error {
	count, err := tokenread.Line[tokenread.Tuple1[int]](in)
	if err != nil {
		return errors.Wrap(err, "reading player count")
	}
	var best *player
	for p, err := range tokenread.Take[tokenread.Struct[player]](in, count.F0) {
		if err != nil {
			return errors.Wrap(err, "reading player")
		}
		if best == nil || p.V.Points > best.Points {
			best = &p.V
		}
	}
	if cfg.JSON {
		return writeJSON(out, best)
	}
	if best == nil {
		return printf(out, "There are no players.\n")
	}
	return printf(out, "%s is the winner with %d points.\n", best.Name, best.Points)
}

// sortValues prints the counted values in ascending order.
func sortValues(cfg *Config, in *tokenread.Reader, out io.Writer) error {
	count, err := tokenread.Line[tokenread.Tuple1[int]](in)
	if err != nil {
		return errors.Wrap(err, "reading value count")
	}
	values := make([]int64, 0, max(count.F0, 0))
	for v, err := range tokenread.Take[tokenread.Tuple1[int64]](in, count.F0) {
		if err != nil {
			return errors.Wrap(err, "reading value")
		}
		values = append(values, v.F0)
	}
	slices.Sort(values)
	if cfg.JSON {
		return writeJSON(out, values)
	}
	for _, v := range values {
		if err := printf(out, "%d\n", v); err != nil {
			return err
		}
	}
	return nil
}

// discard copies the counted lines, except those whose zero based index
// is listed in the discard set.
func discard(cfg *Config, in *tokenread.Reader, out io.Writer) error {
	header, err := tokenread.Line[tokenread.Tuple2[uint64, int]](in)
	if err != nil {
		return errors.Wrap(err, "reading line and discard counts")
	}
	discards, err := tokenread.Line[tokenread.Set[uint64]](in)
	if err != nil {
		return errors.Wrap(err, "reading discarded lines")
	}
	var kept []string
	for i := uint64(0); i < header.F0; i++ {
		line, err := in.LineRaw()
		if err != nil {
			return errors.Wrapf(err, "reading line %d", i)
		}
		if discards.Has(i) {
			continue
		}
		if cfg.JSON {
			kept = append(kept, line)
			continue
		}
		if err := printf(out, "%s\n", line); err != nil {
			return err
		}
	}
	if cfg.JSON {
		if kept == nil {
			kept = []string{}
		}
		return writeJSON(out, kept)
	}
	return nil
}

// u32 prints four bytes as a big endian unsigned integer.
func u32(cfg *Config, in *tokenread.Reader, out io.Writer) error {
	b, err := tokenread.Line[tokenread.Array4[uint8]](in)
	if err != nil {
		return errors.Wrap(err, "reading bytes")
	}
	v := binary.BigEndian.Uint32(b[:])
	if cfg.JSON {
		return writeJSON(out, v)
	}
	return printf(out, "%d\n", v)
}

type inputSum struct {
	Name string `json:"name"`
	Sum  int64  `json:"sum"`
}

type sums struct {
	Inputs []inputSum `json:"inputs"`
	Total  int64      `json:"total"`
}

// sum adds up every integer of every input. Inputs are read concurrently,
// each with its own Reader.
func sum(ctx context.Context, cfg *Config, o *opener, inputs []string, out io.Writer) error {
	res := sums{Inputs: make([]inputSum, len(inputs))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Jobs, 1))
	for i, name := range inputs {
		g.Go(func() error {
			in, closer, err := o.open(ctx, name)
			if err != nil {
				return errors.Wrapf(err, "input %s", name)
			}
			defer closer.Close()
			total, err := sumReader(ctx, in)
			if err != nil {
				return errors.Wrapf(err, "input %s", name)
			}
			res.Inputs[i] = inputSum{Name: name, Sum: total}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, in := range res.Inputs {
		res.Total += in.Sum
	}
	if cfg.JSON {
		return writeJSON(out, res)
	}
	for _, in := range res.Inputs {
		if err := printf(out, "%s\t%d\n", in.Name, in.Sum); err != nil {
			return err
		}
	}
	return printf(out, "total\t%d\n", res.Total)
}

// sumReader adds the integers of every line of in until the end of the
// input, or ctx is cancelled.
func sumReader(ctx context.Context, in *tokenread.Reader) (int64, error) {
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		vals, err := tokenread.Line[tokenread.Slice[int64]](in)
		if tokenread.IsEOF(err) {
			return total, nil
		}
		if err != nil {
			return 0, err
		}
		for _, v := range vals {
			total += v
		}
	}
}

func writeJSON(out io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}
	_, err = out.Write(append(b, '\n'))
	return err
}
