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

package signercore

const (
	// PublicKeyLen is the fixed size of an Oasis Ed25519 public key.
	PublicKeyLen = 32

	// MaxQuantityLen is the largest big-endian byte string accepted for a
	// Quantity. Anything longer is ValueOutOfRange.
	MaxQuantityLen = 64

	// MaxEntityNodes bounds the number of node identifiers an entity
	// descriptor may declare.
	MaxEntityNodes = 16

	// MaxContextSize bounds the signing-domain context buffer.
	MaxContextSize = 100

	// CoinHRP is the Bech32 human-readable part used to render addresses.
	CoinHRP = "oasis"

	// CoinAmountDecimalPlaces is the fixed-point shift applied when
	// rendering a token Quantity (amount) as a decimal string.
	CoinAmountDecimalPlaces = 9

	// CoinRateDecimalPlaces is the fixed-point scale of a commission-rate
	// Quantity; rendering it as a percentage shifts by two fewer places
	// (CoinRateDecimalPlaces-2) before the trailing "%".
	CoinRateDecimalPlaces = 9

	// DisplayPageWidth is the fixed column width a single display page can
	// hold; longer rendered values are split across pages of this size.
	DisplayPageWidth = 40

	// contextPrefixTx is the domain-separation prefix every staking and
	// registry transaction context must begin with.
	contextPrefixTx = "oasis-core/consensus: tx for chain "
)
