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

// Package render implements the item enumerator and renderer: for a
// parsed message it reports a fixed row count and, per row index, a
// (key, value) pair with the value paged for a fixed-width display. BCD
// conversion (bcd.go) and paging (page.go) are hand-rolled; Bech32
// rendering uses btcutil/bech32 (address.go).
package render

import (
	"strconv"

	"github.com/oasisprotocol/ledger-signer-core/decoder"
	"github.com/oasisprotocol/ledger-signer-core/internal/method"
	"github.com/oasisprotocol/ledger-signer-core/internal/txmodel"
)

const (
	amountDecimalPlaces = 9
	rateDecimalPlaces   = 9 - 2
)

// NumItems reports the total number of display rows for msg. contextSuffix
// is the portion of the signing context after its domain-separation
// prefix, or the whole context when that prefix does not match
// (ctxstore.Store.Suffix); a non-empty suffix adds one row.
func NumItems(msg *txmodel.ParsedMessage, contextSuffix []byte) uint8 {
	if msg.IsEntity() {
		return uint8(2 + msg.Entity.NodesLen)
	}

	tx := msg.Tx
	n := 1 // Type
	if tx.Fee.Present {
		n += 2
	}
	if len(contextSuffix) > 0 {
		n++
	}
	n += bodyRowCount(tx)
	return uint8(n)
}

func bodyRowCount(tx *txmodel.Tx) int {
	switch tx.Method {
	case method.StakingTransfer, method.StakingAddEscrow, method.StakingReclaimEscrow:
		return 2
	case method.StakingBurn, method.RegistryUnfreezeNode:
		return 1
	case method.StakingAmendCommissionSchedule:
		b := tx.Body.(txmodel.AmendCommissionScheduleBody)
		return 2*b.RatesLen + 3*b.BoundsLen
	case method.RegistryDeregisterEntity:
		return 0
	default:
		return 0
	}
}

// GetItem renders row idx of msg, paged to pageIdx, returning the row's
// key, the requested page of its value, and the total page count.
func GetItem(msg *txmodel.ParsedMessage, contextSuffix []byte, idx int, pageIdx uint8) (string, string, uint8, error) {
	key, value, err := rowAt(msg, contextSuffix, idx)
	if err != nil {
		return "", "", 0, err
	}
	return key, page(value, pageIdx), pageCount(value), nil
}

// Validate re-runs GetItem for every row of msg so a renderer error cannot
// surface mid-approval — the definitive go/no-go check before signing.
func Validate(msg *txmodel.ParsedMessage, contextSuffix []byte) error {
	total := int(NumItems(msg, contextSuffix))
	for i := 0; i < total; i++ {
		if _, _, _, err := GetItem(msg, contextSuffix, i, 0); err != nil {
			return err
		}
	}
	return nil
}

func rowAt(msg *txmodel.ParsedMessage, contextSuffix []byte, idx int) (string, string, error) {
	if idx < 0 || idx >= int(NumItems(msg, contextSuffix)) {
		return "", "", ErrIdxOutOfRange
	}
	if msg.IsEntity() {
		return entityRowAt(msg.Entity, msg, idx)
	}
	if msg.IsTransaction() {
		return txRowAt(msg, contextSuffix, idx)
	}
	return "", "", ErrUnknownMessage
}

func entityRowAt(ent *txmodel.Entity, msg *txmodel.ParsedMessage, idx int) (string, string, error) {
	switch {
	case idx == 0:
		addr, err := encodeAddress(ent.ID[:])
		if err != nil {
			return "", "", err
		}
		return "ID", addr, nil
	case idx == 1+ent.NodesLen:
		return "Allowed", strconv.FormatBool(ent.AllowEntitySignedNodes), nil
	default:
		nodeIdx := idx - 1
		if err := decoder.FetchNodeAt(msg, nodeIdx); err != nil {
			return "", "", err
		}
		addr, err := encodeAddress(msg.ScratchNode[:])
		if err != nil {
			return "", "", err
		}
		return "Node", addr, nil
	}
}

func txRowAt(msg *txmodel.ParsedMessage, contextSuffix []byte, idx int) (string, string, error) {
	tx := msg.Tx
	off := 0

	if idx == off {
		return "Type", tx.Method.DisplayLabel(), nil
	}
	off++

	if tx.Fee.Present {
		if idx == off {
			return "Fee Amount", formatFixedPoint(tx.Fee.Amount.Bytes(), amountDecimalPlaces), nil
		}
		off++
		if idx == off {
			return "Fee Gas", strconv.FormatUint(tx.Fee.Gas, 10), nil
		}
		off++
	}

	if len(contextSuffix) > 0 {
		if idx == off {
			return "Context", string(contextSuffix), nil
		}
		off++
	}

	return bodyRowAt(msg, idx-off)
}

func bodyRowAt(msg *txmodel.ParsedMessage, bodyIdx int) (string, string, error) {
	tx := msg.Tx
	switch tx.Method {
	case method.StakingTransfer:
		b := tx.Body.(txmodel.TransferBody)
		if bodyIdx == 0 {
			addr, err := encodeAddress(b.To[:])
			return "To", addr, err
		}
		return "Tokens", formatFixedPoint(b.Tokens.Bytes(), amountDecimalPlaces), nil

	case method.StakingBurn:
		b := tx.Body.(txmodel.BurnBody)
		return "Tokens", formatFixedPoint(b.Tokens.Bytes(), amountDecimalPlaces), nil

	case method.StakingAddEscrow:
		b := tx.Body.(txmodel.AddEscrowBody)
		if bodyIdx == 0 {
			addr, err := encodeAddress(b.Account[:])
			return "Escrow", addr, err
		}
		return "Tokens", formatFixedPoint(b.Tokens.Bytes(), amountDecimalPlaces), nil

	case method.StakingReclaimEscrow:
		b := tx.Body.(txmodel.ReclaimEscrowBody)
		if bodyIdx == 0 {
			addr, err := encodeAddress(b.Account[:])
			return "Escrow", addr, err
		}
		return "Tokens", formatFixedPoint(b.Shares.Bytes(), amountDecimalPlaces), nil

	case method.RegistryUnfreezeNode:
		b := tx.Body.(txmodel.UnfreezeNodeBody)
		addr, err := encodeAddress(b.NodeID[:])
		return "Node ID", addr, err

	case method.StakingAmendCommissionSchedule:
		return amendmentRowAt(msg, tx.Body.(txmodel.AmendCommissionScheduleBody), bodyIdx)

	default:
		return "", "", ErrIdxOutOfRange
	}
}

func amendmentRowAt(msg *txmodel.ParsedMessage, b txmodel.AmendCommissionScheduleBody, bodyIdx int) (string, string, error) {
	ratesRows := 2 * b.RatesLen
	if bodyIdx < ratesRows {
		rateIdx := bodyIdx / 2
		if err := decoder.FetchRateAt(msg, rateIdx); err != nil {
			return "", "", err
		}
		if bodyIdx%2 == 0 {
			return "Rate Start", strconv.FormatUint(msg.ScratchRate.Start, 10), nil
		}
		return "Rate", formatFixedPoint(msg.ScratchRate.Rate.Bytes(), rateDecimalPlaces) + "%", nil
	}

	boundIdx := (bodyIdx - ratesRows) / 3
	sub := (bodyIdx - ratesRows) % 3
	if err := decoder.FetchBoundAt(msg, boundIdx); err != nil {
		return "", "", err
	}
	switch sub {
	case 0:
		return "Bound Start", strconv.FormatUint(msg.ScratchBound.Start, 10), nil
	case 1:
		return "Bound Min", formatFixedPoint(msg.ScratchBound.RateMin.Bytes(), rateDecimalPlaces) + "%", nil
	default:
		return "Bound Max", formatFixedPoint(msg.ScratchBound.RateMax.Bytes(), rateDecimalPlaces) + "%", nil
	}
}
