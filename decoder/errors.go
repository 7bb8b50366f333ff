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

package decoder

import "errors"

// Sentinel errors for the decoder's schema/framing failures. They are
// decoder-local, the same way cborio and ctxstore keep their own — the
// root package maps them onto *signercore.Error at the Session boundary
// so this package never has to import signercore.
var (
	ErrBufferEmpty      = errors.New("decoder: input is empty or truncated")
	ErrUnexpectedType   = errors.New("decoder: unexpected CBOR type")
	ErrUnexpectedMethod = errors.New("decoder: unrecognized method")
	ErrUnexpectedValue  = errors.New("decoder: unexpected value")
	ErrValueOutOfRange  = errors.New("decoder: value exceeds its fixed-capacity buffer")
	ErrUnexpectedNumber = errors.New("decoder: unexpected number of map or array items")
	ErrUnexpectedField  = errors.New("decoder: unexpected or misplaced field")
	ErrRequiredNonce    = errors.New("decoder: missing required field \"nonce\"")
	ErrRequiredMethod   = errors.New("decoder: missing required field \"method\"")
	ErrDataAtEnd        = errors.New("decoder: unexpected data after parsed message")
)
