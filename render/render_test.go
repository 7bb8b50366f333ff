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

package render_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/ledger-signer-core/decoder"
	"github.com/oasisprotocol/ledger-signer-core/render"
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

type burnBodyWire struct {
	BurnTokens []byte `cbor:"burn_tokens"`
}

type entityWire struct {
	ID                     []byte   `cbor:"id"`
	Nodes                  [][]byte `cbor:"nodes"`
	AllowEntitySignedNodes bool     `cbor:"allow_entity_signed_nodes"`
}

type rateWire struct {
	Rate  []byte `cbor:"rate"`
	Start uint64 `cbor:"start"`
}

type boundWire struct {
	Start   uint64 `cbor:"start"`
	RateMax []byte `cbor:"rate_max"`
	RateMin []byte `cbor:"rate_min"`
}

type amendmentWire struct {
	Rates  []rateWire  `cbor:"rates"`
	Bounds []boundWire `cbor:"bounds"`
}

type amendBodyWire struct {
	Amendment amendmentWire `cbor:"amendment"`
}

func TestTransferRows(t *testing.T) {
	input := mustEncode(t, transferWire{
		Method: "staking.Transfer",
		Fee:    &feeWire{Gas: 1000, Amount: []byte{0x0A}},
		Nonce:  7,
		Body:   transferBodyWire{XferTo: pk(0x01), XferTokens: []byte{0x64}},
	})
	msg, err := decoder.Decode(input)
	require.NoError(t, err)

	require.Equal(t, uint8(5), render.NumItems(msg, nil))

	key, val, _, err := render.GetItem(msg, nil, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "Type", key)
	require.Equal(t, "Transfer", val)

	key, val, _, err = render.GetItem(msg, nil, 1, 0)
	require.NoError(t, err)
	require.Equal(t, "Fee Amount", key)
	require.Equal(t, "0.000000010", val)

	key, val, _, err = render.GetItem(msg, nil, 2, 0)
	require.NoError(t, err)
	require.Equal(t, "Fee Gas", key)
	require.Equal(t, "1000", val)

	key, _, _, err = render.GetItem(msg, nil, 3, 0)
	require.NoError(t, err)
	require.Equal(t, "To", key)

	key, val, _, err = render.GetItem(msg, nil, 4, 0)
	require.NoError(t, err)
	require.Equal(t, "Tokens", key)
	require.Equal(t, "0.000000100", val)

	require.NoError(t, render.Validate(msg, nil))
}

func TestBurnNoFeeRows(t *testing.T) {
	input := mustEncode(t, transferWire{
		Method: "staking.Burn",
		Nonce:  0,
		Body:   burnBodyWire{BurnTokens: []byte{0x01}},
	})
	msg, err := decoder.Decode(input)
	require.NoError(t, err)
	require.Equal(t, uint8(2), render.NumItems(msg, nil))
}

func TestEntityRows(t *testing.T) {
	input := mustEncode(t, entityWire{
		ID:                     pk(0x02),
		Nodes:                  [][]byte{pk(0x03), pk(0x04)},
		AllowEntitySignedNodes: true,
	})
	msg, err := decoder.Decode(input)
	require.NoError(t, err)
	require.Equal(t, uint8(4), render.NumItems(msg, nil))

	key, _, _, err := render.GetItem(msg, nil, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "ID", key)

	key, val, _, err := render.GetItem(msg, nil, 3, 0)
	require.NoError(t, err)
	require.Equal(t, "Allowed", key)
	require.Equal(t, "true", val)

	require.NoError(t, render.Validate(msg, nil))
}

func TestAmendCommissionScheduleRows(t *testing.T) {
	input := mustEncode(t, transferWire{
		Method: "staking.AmendCommissionSchedule",
		Fee:    &feeWire{Gas: 500, Amount: []byte{0x05}},
		Nonce:  3,
		Body: amendBodyWire{Amendment: amendmentWire{
			Rates: []rateWire{
				{Rate: []byte{0x01}, Start: 10},
				{Rate: []byte{0x02}, Start: 20},
			},
			Bounds: []boundWire{
				{Start: 5, RateMax: []byte{0x09}, RateMin: []byte{0x01}},
			},
		}},
	})
	msg, err := decoder.Decode(input)
	require.NoError(t, err)

	require.Equal(t, uint8(10), render.NumItems(msg, nil))

	wantKeys := []string{
		"Type", "Fee Amount", "Fee Gas",
		"Rate Start", "Rate", "Rate Start", "Rate",
		"Bound Start", "Bound Min", "Bound Max",
	}
	for i, wantKey := range wantKeys {
		key, _, _, err := render.GetItem(msg, nil, i, 0)
		require.NoError(t, err, "row %d", i)
		require.Equal(t, wantKey, key, "row %d", i)
	}

	require.NoError(t, render.Validate(msg, nil))
}

func TestContextRowInserted(t *testing.T) {
	input := mustEncode(t, transferWire{
		Method: "staking.Burn",
		Nonce:  0,
		Body:   burnBodyWire{BurnTokens: []byte{0x01}},
	})
	msg, err := decoder.Decode(input)
	require.NoError(t, err)

	suffix := []byte("testnet-genesis")
	require.Equal(t, uint8(3), render.NumItems(msg, suffix))
	key, val, _, err := render.GetItem(msg, suffix, 1, 0)
	require.NoError(t, err)
	require.Equal(t, "Context", key)
	require.Equal(t, "testnet-genesis", val)
}

func TestGetItemOutOfRange(t *testing.T) {
	input := mustEncode(t, transferWire{Method: "staking.Burn", Nonce: 0, Body: burnBodyWire{BurnTokens: []byte{0x01}}})
	msg, err := decoder.Decode(input)
	require.NoError(t, err)
	_, _, _, err = render.GetItem(msg, nil, 99, 0)
	require.ErrorIs(t, err, render.ErrIdxOutOfRange)
}

func TestPagingSplitsLongValue(t *testing.T) {
	input := mustEncode(t, transferWire{Method: "staking.Burn", Nonce: 0, Body: burnBodyWire{BurnTokens: []byte{0x01}}})
	msg, err := decoder.Decode(input)
	require.NoError(t, err)

	longSuffix := make([]byte, 85)
	for i := range longSuffix {
		longSuffix[i] = 'x'
	}
	_, val, pages, err := render.GetItem(msg, longSuffix, 1, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(3), pages)
	require.Len(t, val, 40)

	_, val, _, err = render.GetItem(msg, longSuffix, 1, 2)
	require.NoError(t, err)
	require.Len(t, val, 5)
}
