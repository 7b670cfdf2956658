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

// tuplegen writes the arity-indexed tuple and fixed array decoders of
// package tokenread. Every arity has the same shape, so they're generated
// rather than written by hand.
//
//	go run ./internal/gen/tuplegen -max 16 -o tuples_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strings"
)

// Config handles configuring the generator.
type Config struct {
	Max    int    // Largest arity to generate.
	Output string // File to write, or "-" for stdout.
}

func initFlags() *Config {
	var cfg Config
	flag.IntVar(&cfg.Max, "max", 16, "largest tuple and array arity to generate")
	flag.StringVar(&cfg.Output, "o", "tuples_gen.go", "output file, or - for stdout")
	return &cfg
}

func main() {
	cfg := initFlags()
	flag.Parse()

	src, err := generate(cfg.Max)
	if err != nil {
		log.Fatalf("tuplegen: %v", err)
	}
	if cfg.Output == "-" {
		if _, err := os.Stdout.Write(src); err != nil {
			log.Fatalf("tuplegen: %v", err)
		}
		return
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		log.Fatalf("tuplegen: %v", err)
	}
}

const license = `// Licensed to the Apache Software Foundation (ASF) under one or more
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
`

// generate returns the formatted source for arities 0 through max.
func generate(max int) ([]byte, error) {
	if max < 0 {
		return nil, fmt.Errorf("negative max arity %d", max)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n// Code generated by tuplegen. DO NOT EDIT.\n\npackage tokenread\n", license)
	for n := 0; n <= max; n++ {
		writeTuple(&buf, n)
	}
	for n := 0; n <= max; n++ {
		writeArray(&buf, n)
	}
	return format.Source(buf.Bytes())
}

// typeParams returns the declaration and use of the type parameter lists
// of a tuple of arity n, both empty for n == 0.
func typeParams(n int) (decl, use string) {
	if n == 0 {
		return "", ""
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("T%d", i)
	}
	list := strings.Join(names, ", ")
	return "[" + list + " any]", "[" + list + "]"
}

func writeTuple(w io.Writer, n int) {
	decl, use := typeParams(n)

	fmt.Fprintf(w, "\n// Tuple%d is a record of %d whitespace separated fields.\n", n, n)
	if n == 0 {
		fmt.Fprintf(w, "// It decodes only from a line without tokens.\n")
		fmt.Fprintf(w, "type Tuple0 struct{}\n")
	} else {
		fmt.Fprintf(w, "type Tuple%d%s struct {\n", n, decl)
		for i := 0; i < n; i++ {
			fmt.Fprintf(w, "\tF%d T%d\n", i, i)
		}
		fmt.Fprintf(w, "}\n")
	}

	fmt.Fprintf(w, "\n// DecodeTokens implements Decodable.\n")
	fmt.Fprintf(w, "func (t *Tuple%d%s) DecodeTokens(src TokenSource) error {\n", n, use)
	if n == 0 {
		fmt.Fprintf(w, "\treturn expectEnd(src, 0)\n}\n")
		return
	}
	fmt.Fprintf(w, "\tvar v Tuple%d%s\n", n, use)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "\tif err := decodeField(src, &v.F%d, %d, %d); err != nil {\n\t\treturn err\n\t}\n", i, i, n)
	}
	fmt.Fprintf(w, "\tif err := expectEnd(src, %d); err != nil {\n\t\treturn err\n\t}\n", n)
	fmt.Fprintf(w, "\t*t = v\n\treturn nil\n}\n")
}

func writeArray(w io.Writer, n int) {
	fmt.Fprintf(w, "\n// Array%d is a record of exactly %d fields of the same type.\n", n, n)
	fmt.Fprintf(w, "type Array%d[T any] [%d]T\n", n, n)
	fmt.Fprintf(w, "\n// DecodeTokens implements Decodable.\n")
	fmt.Fprintf(w, "func (a *Array%d[T]) DecodeTokens(src TokenSource) error {\n", n)
	fmt.Fprintf(w, "\treturn decodeArray(src, a[:])\n}\n")
}
