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

// Package signer implements the signing adapter: it concatenates the
// signing-domain context and the original message bytes, hashes with
// SHA-512, and produces an Ed25519 signature over a BIP32/44-derived key.
// The private key is zeroized on every exit path via the deferred helper
// in keyderiv.go rather than left to the garbage collector.
package signer

import (
	"context"
	"crypto/ed25519"
	"crypto/sha512"
	"errors"
)

// ErrSigningFailed wraps any derivation or signing failure — the root
// package maps it onto CodeInternalCryptoError at the Session boundary.
var ErrSigningFailed = errors.New("signer: signing failed")

// Path is the BIP44 derivation path used by every Sign call: purpose',
// coin type', account', change, address index (Oasis coin type 474,
// SLIP-0010 Ed25519 convention of hardening every component).
var Path = [5]uint32{
	0x8000002C,
	0x800001DA,
	0x80000000,
	0x80000000,
	0x80000000,
}

// Signer computes Ed25519(SHA-512(context||message)) using a caller-
// supplied KeyDeriver.
type Signer struct {
	Deriver KeyDeriver
}

// Sign returns the 64-byte Ed25519 signature over SHA-512(domainContext ||
// message). message must be the exact byte slice the decoder consumed —
// byte-identical round-tripping is required for the signature to verify
// against what the user approved.
func (s *Signer) Sign(ctx context.Context, domainContext, message []byte) ([]byte, error) {
	h := sha512.New()
	h.Write(domainContext)
	h.Write(message)
	digest := h.Sum(nil)

	priv, err := s.Deriver.DerivePrivateKey(ctx, Path)
	if err != nil {
		return nil, errors.Join(ErrSigningFailed, err)
	}
	defer zero(priv)

	return ed25519.Sign(priv, digest), nil
}

// Address returns the raw 32-byte Ed25519 public key for Path, without a
// signature — used to answer a GetAddress request.
func (s *Signer) Address(ctx context.Context) ([]byte, error) {
	priv, err := s.Deriver.DerivePrivateKey(ctx, Path)
	if err != nil {
		return nil, errors.Join(ErrSigningFailed, err)
	}
	defer zero(priv)

	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, priv[32:])
	return pub, nil
}
