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

package sessionscript

// Step is exactly one of its fields non-nil, mirroring
// internal/conversation's Entry: a YAML mapping key names the step kind,
// its value carries that step's parameters.
type Step struct {
	SetContext *StepSetContext `yaml:"set_context"`
	Parse      *StepParse      `yaml:"parse"`
	Enumerate  *StepEnumerate  `yaml:"enumerate"`
	Validate   *StepValidate   `yaml:"validate"`
	Sign       *StepSign       `yaml:"sign"`
	GetAddress *StepGetAddress `yaml:"get_address"`
}

// StepSetContext sets the session's signing-domain context to the given
// printable-ASCII text, e.g. "oasis-core/consensus: tx for chain
// testnet-genesis".
type StepSetContext struct {
	Context string `yaml:"context"`
}

// StepParse decodes Hex (a hex-encoded CBOR transaction or entity
// descriptor) and hands it to the session.
type StepParse struct {
	Hex string `yaml:"hex"`
}

// StepEnumerate has no parameters: it walks every display row of the
// currently parsed message and logs it.
type StepEnumerate struct{}

// StepValidate has no parameters: it runs the full pre-sign validation
// pass.
type StepValidate struct{}

// StepSign signs the parsed message with a key derived from the given
// hex-encoded BIP32 seed.
type StepSign struct {
	Seed string `yaml:"seed"`
}

// StepGetAddress derives and logs the device address for the given
// hex-encoded BIP32 seed, independent of any parsed message.
type StepGetAddress struct {
	Seed string `yaml:"seed"`
}
