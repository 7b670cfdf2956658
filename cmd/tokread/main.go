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

// tokread decodes whitespace delimited input with package tokenread.
//
// Usage:
//
//	tokread [flags] command [input ...]
//
// Commands:
//
//	winner   first line is a player count, then "name points" lines; prints the best player
//	sort     first line is a count, then one integer per line; prints them sorted
//	discard  first line is "lines discards", then the discarded line indexes, then the lines
//	u32      one line of four bytes; prints them as a big endian uint32
//	sum      sums every integer of every input, processing inputs concurrently
//
// Inputs are "-" for standard input (the default), file paths, or bucket
// URLs such as file:///data/input.txt, s3://bucket/input.txt or
// gs://bucket/input.txt.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"lostluck.dev/tokenread"
	"lostluck.dev/tokenread/internal/source"
)

// Config handles configuring the command.
type Config struct {
	JSON    bool   // Write results as JSON.
	Charset string // IANA name of the input character set.
	Verbose bool   // Log at debug level.
	Jobs    int    // Inputs processed at once by sum.
}

func initFlags(fs *flag.FlagSet) *Config {
	var cfg Config
	fs.BoolVar(&cfg.JSON, "json", false, "write results as JSON")
	fs.StringVar(&cfg.Charset, "charset", "", "IANA character set of the input, such as ISO-8859-1 (default UTF-8)")
	fs.BoolVar(&cfg.Verbose, "v", false, "log debug messages to stderr")
	fs.IntVar(&cfg.Jobs, "jobs", 4, "number of inputs sum processes concurrently")
	return &cfg
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg := initFlags(fs)
	fs.Parse(os.Args[1:])

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("run", uuid.NewString()))

	if err := run(context.Background(), cfg, logger, fs.Args(), os.Stdout); err != nil {
		logger.Error("tokread failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// commands run against the first input.
var commands = map[string]func(cfg *Config, in *tokenread.Reader, out io.Writer) error{
	"winner":  winner,
	"sort":    sortValues,
	"discard": discard,
	"u32":     u32,
}

func run(ctx context.Context, cfg *Config, logger *slog.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing command")
	}
	name, inputs := args[0], args[1:]
	if len(inputs) == 0 {
		inputs = []string{source.Stdin}
	}
	enc, err := charset(cfg.Charset)
	if err != nil {
		return err
	}
	opener := &opener{enc: enc, logger: logger}

	if name == "sum" {
		return sum(ctx, cfg, opener, inputs, out)
	}
	cmd, ok := commands[name]
	if !ok {
		return errors.Errorf("unknown command %q", name)
	}
	if len(inputs) > 1 {
		return errors.Errorf("%s takes a single input, got %d", name, len(inputs))
	}
	in, closer, err := opener.open(ctx, inputs[0])
	if err != nil {
		return err
	}
	defer closer.Close()
	return cmd(cfg, in, out)
}

// charset looks up the named encoding. The empty name is UTF-8, which
// needs no transcoding.
func charset(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(err, "charset %q", name)
	}
	if enc == nil {
		return nil, errors.Errorf("charset %q is not supported", name)
	}
	return enc, nil
}

// opener opens inputs as tokenread Readers with shared options.
type opener struct {
	enc    encoding.Encoding
	logger *slog.Logger
}

func (o *opener) open(ctx context.Context, name string) (*tokenread.Reader, io.Closer, error) {
	rc, err := source.Open(ctx, name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input")
	}
	opts := []tokenread.Options{tokenread.Name(name), tokenread.Logger(o.logger)}
	if o.enc != nil {
		opts = append(opts, tokenread.Encoding(o.enc))
	}
	o.logger.Debug("reading input", slog.String("input", name))
	return tokenread.NewReader(rc, opts...), rc, nil
}

func printf(out io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(out, format, args...)
	return err
}
