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

// Package canon is an independent canonical-form validator: a second pass
// over the raw input, unrelated to the schema decoder in package decoder,
// that confirms the bytes are valid, fully consumed, duplicate-key-free,
// indefinite-length-free canonical CBOR per RFC 7049 §3.9. It is
// deliberately a separate code path so decoding and canonicality stay
// independently testable.
package canon

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	decMode cbor.DecMode
	encMode cbor.EncMode
)

func init() {
	var err error
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		TagsMd:      cbor.TagsForbidden,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("canon: building decode mode: %v", err))
	}
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("canon: building canonical encode mode: %v", err))
	}
}

// ErrNotCanonical reports that the input decodes fine but is not the
// unique canonical encoding of its own value (non-shortest integers,
// out-of-order map keys, or similar).
var ErrNotCanonical = errors.New("canon: input is not canonical CBOR")

// ErrTrailingBytes reports that bytes remain after the single top-level
// value was consumed.
var ErrTrailingBytes = errors.New("canon: trailing bytes after top-level value")

// Validate re-decodes input independently of package decoder and confirms
// it is canonical CBOR per RFC 7049 §3.9: no duplicate map keys, no
// indefinite-length items, no CBOR tags, and — via a decode/canonical
// re-encode/byte-compare round trip — shortest-form integers and
// length-then-lexicographic map key ordering. It also rejects any
// trailing bytes after the single top-level value.
func Validate(input []byte) error {
	if len(input) == 0 {
		return errors.New("canon: empty input")
	}

	dec := decMode.NewDecoder(bytes.NewReader(input))
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("canon: decode: %w", err)
	}
	if dec.NumBytesRead() != len(input) {
		return ErrTrailingBytes
	}

	reencoded, err := encMode.Marshal(v)
	if err != nil {
		return fmt.Errorf("canon: canonical re-encode: %w", err)
	}
	if !bytes.Equal(reencoded, input) {
		return ErrNotCanonical
	}
	return nil
}
