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

// Package signercore is the transaction-review and signing core of a
// hardware-wallet application for the Oasis consensus layer. It decodes and
// validates a canonically-encoded CBOR transaction or entity descriptor,
// renders every field as a paged key/value row for display, and — once a
// session reaches the Validated state — produces an Ed25519 signature over
// the domain-separated message.
package signercore
