// Copyright 2024 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sessionscript loads a YAML-scripted sequence of host calls
// against a signercore.Session: a recorded review session made up of
// set_context, parse, enumerate, validate, sign and get_address steps,
// run in file order.
package sessionscript

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is the top-level YAML document: a named sequence of Steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// NewFromFile loads and parses a session script from path.
func NewFromFile(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, err
	}
	defer f.Close()
	return NewFromReader(f)
}

// NewFromReader parses a session script from r. Unknown YAML fields are
// rejected so a typo in a step name fails fast instead of silently
// running a shorter script than intended.
func NewFromReader(r io.Reader) (Script, error) {
	var ret Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ret); err != nil {
		return Script{}, err
	}
	return ret, nil
}
