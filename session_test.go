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

package signercore_test

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	signercore "github.com/oasisprotocol/ledger-signer-core"
	"github.com/oasisprotocol/ledger-signer-core/signer"
)

var encMode = func() cbor.EncMode {
	m, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return m
}()

func mustEncode(t *testing.T, v any) []byte {
	t.Helper()
	b, err := encMode.Marshal(v)
	require.NoError(t, err)
	return b
}

func pk(b byte) []byte {
	out := make([]byte, 32)
	for i := range out {
		out[i] = b
	}
	return out
}

type feeWire struct {
	Gas    uint64 `cbor:"gas"`
	Amount []byte `cbor:"amount"`
}

type transferWire struct {
	Method string   `cbor:"method"`
	Fee    *feeWire `cbor:"fee,omitempty"`
	Nonce  uint64   `cbor:"nonce"`
	Body   any      `cbor:"body,omitempty"`
}

type transferBodyWire struct {
	XferTo     []byte `cbor:"xfer_to"`
	XferTokens []byte `cbor:"xfer_tokens"`
}

func testSeed() []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func validContext() []byte {
	return []byte("oasis-core/consensus: tx for chain testnet-genesis")
}

func TestSessionFullReviewAndSign(t *testing.T) {
	defer goleak.VerifyNone(t)

	input := mustEncode(t, transferWire{
		Method: "staking.Transfer",
		Fee:    &feeWire{Gas: 1000, Amount: []byte{0x0A}},
		Nonce:  7,
		Body:   transferBodyWire{XferTo: pk(0x01), XferTokens: []byte{0x64}},
	})

	s := signercore.NewSession()
	require.NoError(t, s.SetContext(validContext()))
	require.NoError(t, s.Parse(input))

	n, err := s.NumItems()
	require.NoError(t, err)
	require.Equal(t, uint8(6), n) // Type, Fee Amount, Fee Gas, Context, To, Tokens

	key, val, _, err := s.GetItem(3, 0)
	require.NoError(t, err)
	require.Equal(t, "Context", key)
	require.Equal(t, "testnet-genesis", val)

	require.NoError(t, s.Validate())

	sgn := &signer.Signer{Deriver: signer.NewSLIP10Deriver(testSeed())}
	sig, err := s.Sign(context.Background(), sgn)
	require.NoError(t, err)
	require.Len(t, sig, ed25519.SignatureSize)

	// Once Signed, the review is over: a second Sign is refused.
	_, err = s.Sign(context.Background(), sgn)
	require.ErrorIs(t, err, signercore.ErrSessionState)
}

func TestSessionRejectsOutOfOrderCalls(t *testing.T) {
	s := signercore.NewSession()
	sgn := &signer.Signer{Deriver: signer.NewSLIP10Deriver(testSeed())}

	// Sign before Parse.
	_, err := s.Sign(context.Background(), sgn)
	require.ErrorIs(t, err, signercore.ErrSessionState)

	// Validate before Parse.
	err = s.Validate()
	require.ErrorIs(t, err, signercore.ErrSessionState)
}

func TestSessionRejectsContextMismatch(t *testing.T) {
	input := mustEncode(t, transferWire{
		Method: "staking.Burn",
		Nonce:  0,
		Body:   map[string]any{"burn_tokens": []byte{0x01}},
	})

	s := signercore.NewSession()
	require.NoError(t, s.SetContext([]byte("wrong-prefix")))
	require.NoError(t, s.Parse(input))

	err := s.Validate()
	require.ErrorIs(t, err, signercore.ErrContextMismatch)

	// Rejected: Sign is no longer reachable.
	sgn := &signer.Signer{Deriver: signer.NewSLIP10Deriver(testSeed())}
	_, err = s.Sign(context.Background(), sgn)
	require.ErrorIs(t, err, signercore.ErrSessionState)
}

func TestSessionResetAllowsNewReview(t *testing.T) {
	input := mustEncode(t, transferWire{
		Method: "staking.Burn",
		Nonce:  0,
		Body:   map[string]any{"burn_tokens": []byte{0x01}},
	})

	s := signercore.NewSession()
	require.NoError(t, s.SetContext(validContext()))
	require.NoError(t, s.Parse(input))
	require.NoError(t, s.Validate())

	s.Reset()
	_, err := s.NumItems()
	require.ErrorIs(t, err, signercore.ErrSessionState)

	require.NoError(t, s.Parse(input))
	require.NoError(t, s.Validate())
}

func TestSessionGetAddress(t *testing.T) {
	s := signercore.NewSession()
	sgn := &signer.Signer{Deriver: signer.NewSLIP10Deriver(testSeed())}

	pub, addr, err := s.GetAddress(context.Background(), sgn)
	require.NoError(t, err)
	require.Len(t, pub, ed25519.PublicKeySize)
	require.Regexp(t, `^oasis1[023456789acdefghjklmnpqrstuvwxyz]+$`, addr)
}

func TestSessionRejectsPageOutOfRange(t *testing.T) {
	input := mustEncode(t, transferWire{
		Method: "staking.Burn",
		Nonce:  0,
		Body:   map[string]any{"burn_tokens": []byte{0x01}},
	})

	s := signercore.NewSession()
	require.NoError(t, s.Parse(input))

	// Row 0 ("Type") is a single page; page 1 does not exist.
	_, _, _, err := s.GetItem(0, 1)
	require.ErrorIs(t, err, signercore.ErrDisplayPageOutOfRange)
}

func TestSessionSignRequiresContext(t *testing.T) {
	// An entity descriptor validates without a context (there is no
	// domain-separation prefix to check), but signing still needs one.
	input := mustEncode(t, struct {
		ID                     []byte   `cbor:"id"`
		Nodes                  [][]byte `cbor:"nodes"`
		AllowEntitySignedNodes bool     `cbor:"allow_entity_signed_nodes"`
	}{
		ID:    pk(0x02),
		Nodes: [][]byte{pk(0x03)},
	})

	s := signercore.NewSession()
	require.NoError(t, s.Parse(input))
	require.NoError(t, s.Validate())

	sgn := &signer.Signer{Deriver: signer.NewSLIP10Deriver(testSeed())}
	_, err := s.Sign(context.Background(), sgn)
	require.ErrorIs(t, err, signercore.ErrInitContextEmpty)
}
