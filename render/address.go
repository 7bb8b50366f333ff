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

package render

import "github.com/btcsuite/btcd/btcutil/bech32"

// hrp is the Bech32 human-readable part used to render every public key
// this package displays.
const hrp = "oasis"

// encodeAddress Bech32-encodes a 32-byte public key with the fixed HRP, the
// same conversion btcutil's own address types perform before calling
// bech32.Encode: regroup the 8-bit public key into 5-bit words first.
func encodeAddress(pubkey []byte) (string, error) {
	converted, err := bech32.ConvertBits(pubkey, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, converted)
}

// EncodeAddress is the exported form of encodeAddress, used by the root
// package's GetAddress implementation.
func EncodeAddress(pubkey []byte) (string, error) {
	return encodeAddress(pubkey)
}
