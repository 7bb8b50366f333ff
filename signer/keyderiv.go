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

package signer

import (
	"context"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"filippo.io/edwards25519"
)

// KeyDeriver is the external-boundary interface this core relies on:
// BIP32/44 key derivation and the production Ed25519 signing coprocessor
// live outside this core. SLIP10Deriver below is the one concrete
// implementation shipped so the core is runnable end to end.
type KeyDeriver interface {
	DerivePrivateKey(ctx context.Context, path [5]uint32) (ed25519.PrivateKey, error)
}

// slip10Seed is the "ed25519 seed" HMAC key SLIP-0010 fixes for Ed25519
// master-key generation.
var slip10Seed = []byte("ed25519 seed")

// SLIP10Deriver derives Ed25519 keys from a BIP32 master seed following
// SLIP-0010's hardened-only Ed25519 scheme: every path component is an
// HMAC-SHA512 cascade, since Ed25519 has no defined public-key derivation.
type SLIP10Deriver struct {
	seed []byte
}

// NewSLIP10Deriver returns a deriver rooted at masterSeed (the device's
// BIP32 seed, owned externally).
func NewSLIP10Deriver(masterSeed []byte) *SLIP10Deriver {
	return &SLIP10Deriver{seed: masterSeed}
}

// DerivePrivateKey walks path as a cascade of hardened HMAC-SHA512
// derivations, then expands the resulting 32-byte node key into an Ed25519
// keypair the way RFC 8032 / crypto/ed25519 does: hash with SHA-512, clamp
// the low half into a scalar, and multiply the base point. The clamping
// and scalar multiplication use filippo.io/edwards25519 directly (rather
// than leaning on ed25519.NewKeyFromSeed's private internals) so the
// derived public key can be returned to the caller without a second,
// separate signing-time recomputation.
func (d *SLIP10Deriver) DerivePrivateKey(_ context.Context, path [5]uint32) (ed25519.PrivateKey, error) {
	il, ir := slip10Master(d.seed)

	for _, index := range path {
		il, ir = slip10ChildHardened(il, ir, index)
	}
	defer zero(il)
	defer zero(ir)

	h := sha512.Sum512(il)
	defer zero(h[:])

	scalar, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		return nil, err
	}
	pub := edwards25519.NewIdentityPoint().ScalarBaseMult(scalar).Bytes()

	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(priv[:32], il)
	copy(priv[32:], pub)
	return priv, nil
}

func slip10Master(seed []byte) (il, ir []byte) {
	mac := hmac.New(sha512.New, slip10Seed)
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

func slip10ChildHardened(parentIL, parentIR []byte, index uint32) (il, ir []byte) {
	// SLIP-0010 Ed25519 derivation is hardened-only: every index is forced
	// into the hardened range regardless of its high bit on input.
	hardened := index | 0x80000000

	data := make([]byte, 1+32+4)
	data[0] = 0x00
	copy(data[1:33], parentIL)
	binary.BigEndian.PutUint32(data[33:37], hardened)

	mac := hmac.New(sha512.New, parentIR)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
