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

package signer_test

import (
	"context"
	"crypto/ed25519"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/ledger-signer-core/signer"
)

func testSeed() []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestSignProducesVerifiableSignature(t *testing.T) {
	deriver := signer.NewSLIP10Deriver(testSeed())
	s := &signer.Signer{Deriver: deriver}

	pub, err := s.Address(context.Background())
	require.NoError(t, err)
	require.Len(t, pub, ed25519.PublicKeySize)

	sig, err := s.Sign(context.Background(), []byte("oasis-core/consensus: tx for chain test"), []byte("message-bytes"))
	require.NoError(t, err)
	require.Len(t, sig, ed25519.SignatureSize)

	h := sha512Digest([]byte("oasis-core/consensus: tx for chain test"), []byte("message-bytes"))
	require.True(t, ed25519.Verify(pub, h, sig))
}

func TestDerivationIsDeterministic(t *testing.T) {
	deriver := signer.NewSLIP10Deriver(testSeed())
	s := &signer.Signer{Deriver: deriver}

	pub1, err := s.Address(context.Background())
	require.NoError(t, err)
	pub2, err := s.Address(context.Background())
	require.NoError(t, err)
	require.Equal(t, pub1, pub2)
}

func TestDifferentSeedsDeriveDifferentKeys(t *testing.T) {
	seedA := testSeed()
	seedB := append([]byte(nil), seedA...)
	seedB[0] ^= 0xFF

	pubA, err := (&signer.Signer{Deriver: signer.NewSLIP10Deriver(seedA)}).Address(context.Background())
	require.NoError(t, err)
	pubB, err := (&signer.Signer{Deriver: signer.NewSLIP10Deriver(seedB)}).Address(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, pubA, pubB)
}

func sha512Digest(domainContext, message []byte) []byte {
	h := sha512.New()
	h.Write(domainContext)
	h.Write(message)
	return h.Sum(nil)
}
