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
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"lostluck.dev/tokenread/internal/readopts"
)

// LineSource is a buffered source of newline terminated text, such as a
// *bufio.Reader.
type LineSource interface {
	ReadString(delim byte) (string, error)
}

// Reader reads whitespace delimited records from a LineSource, one line
// at a time.
//
// A Reader is not safe for concurrent use. Callers sharing one must
// serialize access themselves.
type Reader struct {
	src    LineSource
	lineNo int
	eof    bool

	name   string
	logger *slog.Logger
}

// New returns a Reader over an already buffered source.
func New(src LineSource, opts ...Options) *Reader {
	var opt readopts.Struct
	opt.Join(opts...)
	return newReader(src, opt)
}

// NewReader returns a Reader over r, adding buffering. If the Encoding
// option is set, r is transcoded from that character set to UTF-8.
func NewReader(r io.Reader, opts ...Options) *Reader {
	var opt readopts.Struct
	opt.Join(opts...)
	if opt.Encoding != nil {
		r = opt.Encoding.NewDecoder().Reader(r)
	}
	return newReader(bufio.NewReader(r), opt)
}

func newReader(src LineSource, opt readopts.Struct) *Reader {
	return &Reader{
		src:    src,
		name:   opt.Name,
		logger: opt.Logger,
	}
}

// LineNo returns the number of lines read so far.
func (r *Reader) LineNo() int {
	return r.lineNo
}

// LineRaw reads the next line as is, without its line terminator.
//
// At the end of the input it returns a *LineError of KindEOF, and if the
// source fails, a *LineError of KindIO holding the cause. A last line
// without a terminator is returned like any other.
func (r *Reader) LineRaw() (string, error) {
	line, lerr := r.readLine()
	if lerr != nil {
		return "", lerr
	}
	return line, nil
}

func (r *Reader) readLine() (string, *LineError) {
	if r.eof {
		return "", r.lineErr(KindEOF, io.EOF)
	}
	line, err := r.src.ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		r.eof = true
		r.debug("end of input", r.lineNo+1)
		return "", r.lineErr(KindEOF, io.EOF)
	case err == io.EOF:
		r.eof = true
	case err != nil:
		r.debug("read failed", r.lineNo+1, slog.Any("error", err))
		return "", r.lineErr(KindIO, errors.WithStack(err))
	}
	r.lineNo++
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	}
	return line, nil
}

func (r *Reader) lineErr(kind Kind, err error) *LineError {
	return &LineError{Kind: kind, LineNo: r.lineNo + 1, Err: err}
}

func (r *Reader) debug(msg string, lineNo int, attrs ...slog.Attr) {
	if r.logger == nil {
		return
	}
	if r.name != "" {
		attrs = append(attrs, slog.String("input", r.name))
	}
	attrs = append(attrs, slog.Int("line", lineNo))
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// Line reads the next line and decodes its tokens as a T.
//
// If the line doesn't decode, the returned *RecordError holds the line's
// text along with the decoder's error. Read failures and the end of input
// are returned as a *RecordError without text.
//
//	in := tokenread.NewReader(os.Stdin)
//	n, err := tokenread.Line[tokenread.Tuple1[int]](in)
//	...
//	nums, err := tokenread.Line[tokenread.Slice[int64]](in)
func Line[T any, PT decodablePtr[T]](r *Reader) (T, error) {
	line, lerr := r.readLine()
	if lerr != nil {
		var zero T
		return zero, lerr.Record()
	}
	v, err := ParseLine[T, PT](line)
	if err != nil {
		r.debug("decode failed", r.lineNo, slog.String("text", line), slog.Any("error", err))
		return v, &RecordError{Kind: KindDecode, LineNo: r.lineNo, Line: line, Err: err}
	}
	return v, nil
}
