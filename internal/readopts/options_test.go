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

package readopts

import (
	"log/slog"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestJoin(t *testing.T) {
	logger := slog.Default()

	var opt Struct
	opt.Join(
		&Struct{Name: "first", Encoding: charmap.ISO8859_1},
		&Struct{Logger: logger},
		&Struct{Name: "second"},
	)

	if got, want := opt.Name, "second"; got != want {
		t.Errorf("later Name didn't override: got %q want %q", got, want)
	}
	if opt.Logger != logger {
		t.Errorf("Logger not joined: got %v want %v", opt.Logger, logger)
	}
	if got, want := opt.Encoding, charmap.ISO8859_1; got != want {
		t.Errorf("Encoding overwritten by an unset option: got %v want %v", got, want)
	}
}
