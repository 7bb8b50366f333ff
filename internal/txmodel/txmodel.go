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

// Package txmodel holds the decoded data model shared by decoder, render,
// and the root signercore package. It is split
// out as an internal package, rather than living in signercore directly,
// so decoder/render can depend on the data shapes without
// depending on the root package — which itself depends on decoder and
// render to implement Session. The root package re-exports every type
// here except Kind as a plain alias.
package txmodel

import "github.com/oasisprotocol/ledger-signer-core/internal/method"

const (
	PublicKeyLen   = 32
	MaxQuantityLen = 64
)

// PublicKey is a 32-byte Ed25519 public key, address, or node identifier.
type PublicKey [PublicKeyLen]byte

// Quantity is an unsigned big-endian integer of up to MaxQuantityLen
// bytes, stored at fixed capacity with an explicit length.
type Quantity struct {
	Buffer [MaxQuantityLen]byte
	Len    int
}

// Bytes returns the significant big-endian bytes of the quantity.
func (q Quantity) Bytes() []byte {
	return q.Buffer[:q.Len]
}

// EpochTime is an Oasis consensus epoch index.
type EpochTime = uint64

// Fee is the optional transaction fee. Present reports whether a "fee" map
// was found in the wire data at all — its absence is legal, not an error.
type Fee struct {
	Present bool
	Gas     uint64
	Amount  Quantity
}

// TransferBody is the staking.Transfer method body.
type TransferBody struct {
	To     PublicKey
	Tokens Quantity
}

// BurnBody is the staking.Burn method body.
type BurnBody struct {
	Tokens Quantity
}

// AddEscrowBody is the staking.AddEscrow method body.
type AddEscrowBody struct {
	Account PublicKey
	Tokens  Quantity
}

// ReclaimEscrowBody is the staking.ReclaimEscrow method body.
type ReclaimEscrowBody struct {
	Account PublicKey
	Shares  Quantity
}

// AmendCommissionScheduleBody records only the declared array lengths;
// individual rate/bound elements are fetched on demand.
type AmendCommissionScheduleBody struct {
	RatesLen  int
	BoundsLen int
}

// UnfreezeNodeBody is the registry.UnfreezeNode method body.
type UnfreezeNodeBody struct {
	NodeID PublicKey
}

// CommissionRateStep is one element of an amendment's "rates" array.
type CommissionRateStep struct {
	Start EpochTime
	Rate  Quantity
}

// CommissionRateBoundStep is one element of an amendment's "bounds" array.
type CommissionRateBoundStep struct {
	Start   EpochTime
	RateMax Quantity
	RateMin Quantity
}

// Tx is a fully decoded transaction. Body holds exactly one of the
// method-specific body types above, or nil for DeregisterEntity.
type Tx struct {
	Method method.Method
	Fee    Fee
	Nonce  uint64
	Body   any
}

// Entity is a fully decoded entity descriptor. NodesLen is the declared
// length of the "nodes" array; individual node public keys are fetched on
// demand.
type Entity struct {
	ID                     PublicKey
	NodesLen               int
	AllowEntitySignedNodes bool
}

// Kind discriminates ParsedMessage's variants.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTransaction
	KindEntity
)

// ParsedMessage is the tagged union produced by the schema decoder. It
// borrows the original input slice for the lifetime of the review session
// so that amendment elements and node lists can be fetched lazily; no
// parsed field outlives Input.
type ParsedMessage struct {
	Kind   Kind
	Tx     *Tx
	Entity *Entity
	Input  []byte

	// Scratch holds the single in-flight element produced by the last
	// on-demand fetch (rate, bound, or node). Exactly one of these is
	// meaningful at a time; callers read it immediately after a fetch.
	ScratchRate  CommissionRateStep
	ScratchBound CommissionRateBoundStep
	ScratchNode  PublicKey
}

// IsTransaction reports whether the parsed message is a transaction.
func (m *ParsedMessage) IsTransaction() bool { return m.Kind == KindTransaction }

// IsEntity reports whether the parsed message is an entity descriptor.
func (m *ParsedMessage) IsEntity() bool { return m.Kind == KindEntity }
