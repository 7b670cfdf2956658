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
	"log/slog"

	"golang.org/x/text/encoding"
	"lostluck.dev/tokenread/internal/readopts"
)

// Options configure New and NewReader with specific features.
// Each function takes a variadic list of options, where properties
// set in later options override the value of previously set properties.
type Options = readopts.Options

// Name sets the name of the input, typically a file name, to make log
// messages easier to attribute.
func Name(name string) Options {
	return &readopts.Struct{
		Name: name,
	}
}

// Logger sets the logger the Reader reports read failures and the end of
// input to, at debug level. Readers are silent by default.
func Logger(logger *slog.Logger) Options {
	return &readopts.Struct{
		Logger: logger,
	}
}

// Encoding sets the character set of the raw input. NewReader transcodes
// the input to UTF-8 before splitting lines. It has no effect on New, which
// receives an already buffered source.
func Encoding(enc encoding.Encoding) Options {
	return &readopts.Struct{
		Encoding: enc,
	}
}
