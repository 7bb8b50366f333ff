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

// Package decoder implements the schema decoder: it walks a canonical
// CBOR byte slice, discriminates a transaction from an entity descriptor,
// and populates a txmodel.ParsedMessage tagged union, dispatching across
// seven transaction methods plus the entity path, with an optional "fee"
// key.
package decoder

import (
	"github.com/oasisprotocol/ledger-signer-core/cborio"
	"github.com/oasisprotocol/ledger-signer-core/internal/method"
	"github.com/oasisprotocol/ledger-signer-core/internal/txmodel"
)

// MaxEntityNodes bounds the number of node identifiers an entity
// descriptor may declare.
const MaxEntityNodes = 16

// Decode parses input as either a transaction or an entity descriptor and
// returns the populated tagged union. input is retained for the lifetime
// of the returned ParsedMessage so that amendment and node elements can be
// fetched lazily (fetch.go) — callers must not mutate it afterward.
func Decode(input []byte) (*txmodel.ParsedMessage, error) {
	if len(input) == 0 {
		return nil, ErrBufferEmpty
	}

	root := cborio.NewCursor(input)
	isEntity, err := probeEntity(root)
	if err != nil {
		return nil, err
	}

	var msg *txmodel.ParsedMessage
	if isEntity {
		msg, err = decodeEntity(root)
	} else {
		msg, err = decodeTx(root)
	}
	if err != nil {
		return nil, err
	}

	if !root.AtEnd() {
		return nil, ErrDataAtEnd
	}
	msg.Input = input
	return msg, nil
}

// probeEntity peeks the outer map's first key without consuming anything:
// "id" present means an entity descriptor.
func probeEntity(root *cborio.Cursor) (bool, error) {
	contents, declaredLen, err := root.EnterMapLen()
	if err != nil {
		return false, translateCursorErr(err)
	}
	if declaredLen == 0 {
		return false, nil
	}
	isID, err := cborio.MatchTextKey(contents, "id")
	if err != nil {
		return false, translateCursorErr(err)
	}
	return isID, nil
}

func decodeEntity(root *cborio.Cursor) (*txmodel.ParsedMessage, error) {
	contents, err := root.EnterMap(3)
	if err != nil {
		return nil, translateCursorErr(err)
	}

	ok, err := cborio.MatchTextKey(contents, "id")
	if err != nil {
		return nil, translateCursorErr(err)
	}
	if !ok {
		return nil, ErrUnexpectedField
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}
	var id txmodel.PublicKey
	if err := cborio.ReadPublicKey(contents, id[:]); err != nil {
		return nil, translatePublicKeyErr(err)
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}

	ok, err = cborio.MatchTextKey(contents, "nodes")
	if err != nil {
		return nil, translateCursorErr(err)
	}
	if !ok {
		return nil, ErrUnexpectedField
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}
	nodesLen, err := contents.ArrayLen()
	if err != nil {
		return nil, translateCursorErr(err)
	}
	if nodesLen > MaxEntityNodes {
		return nil, ErrUnexpectedNumber
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}

	ok, err = cborio.MatchTextKey(contents, "allow_entity_signed_nodes")
	if err != nil {
		return nil, translateCursorErr(err)
	}
	if !ok {
		return nil, ErrUnexpectedField
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}
	allow, err := cborio.ReadBool(contents)
	if err != nil {
		return nil, translateCursorErr(err)
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}

	root.Leave(contents)
	return &txmodel.ParsedMessage{
		Kind: txmodel.KindEntity,
		Entity: &txmodel.Entity{
			ID:                     id,
			NodesLen:               nodesLen,
			AllowEntitySignedNodes: allow,
		},
	}, nil
}

// decodeTx is a two-pass walk: fee (if present), skip body, nonce, method —
// then revisit the saved body-field cursor now that method is known, so
// the method-specific body shape never needs to be guessed ahead of time.
func decodeTx(root *cborio.Cursor) (*txmodel.ParsedMessage, error) {
	contents, declaredLen, err := root.EnterMapLen()
	if err != nil {
		return nil, translateCursorErr(err)
	}

	decodedKeys := 0

	var fee txmodel.Fee
	hasFee := false
	if decodedKeys < declaredLen {
		hasFee, err = cborio.MatchTextKey(contents, "fee")
		if err != nil {
			return nil, translateCursorErr(err)
		}
	}
	if hasFee {
		if err := readFee(contents, &fee); err != nil {
			return nil, err
		}
		fee.Present = true
		decodedKeys++
	}

	// Save the body field's position (key not yet consumed) so it can be
	// revisited once the method, read below, tells us how to interpret it.
	bodyField := *contents
	hasBody := false
	if decodedKeys < declaredLen {
		hasBody, err = cborio.MatchTextKey(contents, "body")
		if err != nil {
			return nil, translateCursorErr(err)
		}
	}
	if hasBody {
		if err := contents.Advance(); err != nil { // key
			return nil, translateCursorErr(err)
		}
		if err := contents.Advance(); err != nil { // value, skipped for now
			return nil, translateCursorErr(err)
		}
		decodedKeys++
	}

	// The map has run out of keys before a required field was seen.
	if decodedKeys >= declaredLen {
		return nil, ErrRequiredNonce
	}
	ok, err := cborio.MatchTextKey(contents, "nonce")
	if err != nil {
		return nil, translateCursorErr(err)
	}
	if !ok {
		return nil, ErrRequiredNonce
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}
	nonce, err := cborio.ReadUint64(contents)
	if err != nil {
		return nil, translateCursorErr(err)
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}
	decodedKeys++

	if decodedKeys >= declaredLen {
		return nil, ErrRequiredMethod
	}
	ok, err = cborio.MatchTextKey(contents, "method")
	if err != nil {
		return nil, translateCursorErr(err)
	}
	if !ok {
		return nil, ErrRequiredMethod
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}
	methodName, err := cborio.ReadTextString(contents)
	if err != nil {
		return nil, translateCursorErr(err)
	}
	m := method.FromWireName(methodName)
	if m == method.Unknown {
		return nil, ErrUnexpectedMethod
	}
	if err := contents.Advance(); err != nil {
		return nil, translateCursorErr(err)
	}
	decodedKeys++

	if m.HasBody() && !hasBody {
		return nil, ErrUnexpectedField
	}
	if !m.HasBody() && hasBody {
		// Design Note §9's first cargo-cult rejection: a DeregisterEntity
		// body present at all is an error, not silently ignored.
		return nil, ErrUnexpectedField
	}

	var body any
	if m.HasBody() {
		body, err = readBody(&bodyField, m)
		if err != nil {
			return nil, err
		}
	}

	if decodedKeys != declaredLen {
		return nil, ErrUnexpectedNumber
	}

	root.Leave(contents)
	return &txmodel.ParsedMessage{
		Kind: txmodel.KindTransaction,
		Tx: &txmodel.Tx{
			Method: m,
			Fee:    fee,
			Nonce:  nonce,
			Body:   body,
		},
	}, nil
}

func readFee(c *cborio.Cursor, out *txmodel.Fee) error {
	if err := c.Advance(); err != nil { // "fee" key
		return translateCursorErr(err)
	}
	inner, err := c.EnterMap(2)
	if err != nil {
		return translateCursorErr(err)
	}

	ok, err := cborio.MatchTextKey(inner, "gas")
	if err != nil {
		return translateCursorErr(err)
	}
	if !ok {
		return ErrUnexpectedField
	}
	if err := inner.Advance(); err != nil {
		return translateCursorErr(err)
	}
	gas, err := cborio.ReadUint64(inner)
	if err != nil {
		return translateCursorErr(err)
	}
	if err := inner.Advance(); err != nil {
		return translateCursorErr(err)
	}

	ok, err = cborio.MatchTextKey(inner, "amount")
	if err != nil {
		return translateCursorErr(err)
	}
	if !ok {
		return ErrUnexpectedField
	}
	if err := inner.Advance(); err != nil {
		return translateCursorErr(err)
	}
	var amount txmodel.Quantity
	if err := readQuantity(inner, &amount); err != nil {
		return err
	}
	if err := inner.Advance(); err != nil {
		return translateCursorErr(err)
	}

	c.Leave(inner)
	out.Gas = gas
	out.Amount = amount
	return nil
}

// readBody dispatches on method to decode the body map at bodyField, which
// still points at the unconsumed "body" key.
func readBody(bodyField *cborio.Cursor, m method.Method) (any, error) {
	if err := bodyField.Advance(); err != nil { // "body" key
		return nil, translateCursorErr(err)
	}

	switch m {
	case method.StakingTransfer:
		inner, err := bodyField.EnterMap(2)
		if err != nil {
			return nil, translateCursorErr(err)
		}
		var out txmodel.TransferBody
		if err := requireKey(inner, "xfer_to"); err != nil {
			return nil, err
		}
		if err := cborio.ReadPublicKey(inner, out.To[:]); err != nil {
			return nil, translatePublicKeyErr(err)
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		if err := requireKey(inner, "xfer_tokens"); err != nil {
			return nil, err
		}
		if err := readQuantity(inner, &out.Tokens); err != nil {
			return nil, err
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		return out, nil

	case method.StakingBurn:
		inner, err := bodyField.EnterMap(1)
		if err != nil {
			return nil, translateCursorErr(err)
		}
		var out txmodel.BurnBody
		if err := requireKey(inner, "burn_tokens"); err != nil {
			return nil, err
		}
		if err := readQuantity(inner, &out.Tokens); err != nil {
			return nil, err
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		return out, nil

	case method.StakingAddEscrow:
		inner, err := bodyField.EnterMap(2)
		if err != nil {
			return nil, translateCursorErr(err)
		}
		var out txmodel.AddEscrowBody
		// Canonical key order: the shorter "escrow_tokens" comes first.
		if err := requireKey(inner, "escrow_tokens"); err != nil {
			return nil, err
		}
		if err := readQuantity(inner, &out.Tokens); err != nil {
			return nil, err
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		if err := requireKey(inner, "escrow_account"); err != nil {
			return nil, err
		}
		if err := cborio.ReadPublicKey(inner, out.Account[:]); err != nil {
			return nil, translatePublicKeyErr(err)
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		return out, nil

	case method.StakingReclaimEscrow:
		inner, err := bodyField.EnterMap(2)
		if err != nil {
			return nil, translateCursorErr(err)
		}
		var out txmodel.ReclaimEscrowBody
		if err := requireKey(inner, "escrow_account"); err != nil {
			return nil, err
		}
		if err := cborio.ReadPublicKey(inner, out.Account[:]); err != nil {
			return nil, translatePublicKeyErr(err)
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		// Design Note §9's second cargo-cult field: the wire key really is
		// "reclaim_shares", decoded into a Quantity — never the stray
		// string type an older source variant read it as.
		if err := requireKey(inner, "reclaim_shares"); err != nil {
			return nil, err
		}
		if err := readQuantity(inner, &out.Shares); err != nil {
			return nil, err
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		return out, nil

	case method.StakingAmendCommissionSchedule:
		inner, err := bodyField.EnterMap(1)
		if err != nil {
			return nil, translateCursorErr(err)
		}
		if err := requireKey(inner, "amendment"); err != nil {
			return nil, err
		}
		out, err := readAmendmentLengths(inner)
		if err != nil {
			return nil, err
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		return out, nil

	case method.RegistryUnfreezeNode:
		inner, err := bodyField.EnterMap(1)
		if err != nil {
			return nil, translateCursorErr(err)
		}
		var out txmodel.UnfreezeNodeBody
		if err := requireKey(inner, "node_id"); err != nil {
			return nil, err
		}
		if err := cborio.ReadPublicKey(inner, out.NodeID[:]); err != nil {
			return nil, translatePublicKeyErr(err)
		}
		if err := inner.Advance(); err != nil {
			return nil, translateCursorErr(err)
		}
		return out, nil

	default:
		return nil, ErrUnexpectedMethod
	}
}

// readAmendmentLengths records only "rates"/"bounds" array lengths —
// elements are fetched on demand (fetch.go).
func readAmendmentLengths(c *cborio.Cursor) (txmodel.AmendCommissionScheduleBody, error) {
	var out txmodel.AmendCommissionScheduleBody
	inner, err := c.EnterMap(2)
	if err != nil {
		return out, translateCursorErr(err)
	}

	if err := requireKey(inner, "rates"); err != nil {
		return out, err
	}
	ratesLen, err := inner.ArrayLen()
	if err != nil {
		return out, translateCursorErr(err)
	}
	if err := inner.Advance(); err != nil {
		return out, translateCursorErr(err)
	}

	if err := requireKey(inner, "bounds"); err != nil {
		return out, err
	}
	boundsLen, err := inner.ArrayLen()
	if err != nil {
		return out, translateCursorErr(err)
	}
	if err := inner.Advance(); err != nil {
		return out, translateCursorErr(err)
	}

	out.RatesLen = ratesLen
	out.BoundsLen = boundsLen
	return out, nil
}

// requireKey matches expected at the cursor and, on success, advances past
// the key so the caller can read the value next.
func requireKey(c *cborio.Cursor, expected string) error {
	ok, err := cborio.MatchTextKey(c, expected)
	if err != nil {
		return translateCursorErr(err)
	}
	if !ok {
		return ErrUnexpectedField
	}
	return translateCursorErr(c.Advance())
}

func readQuantity(c *cborio.Cursor, out *txmodel.Quantity) error {
	n, err := cborio.ReadQuantityInto(c, out.Buffer[:])
	if err != nil {
		return translateQuantityErr(err)
	}
	out.Len = n
	return nil
}

func translateCursorErr(err error) error {
	switch err {
	case nil:
		return nil
	case cborio.ErrBufferEnd:
		return ErrBufferEmpty
	case cborio.ErrUnexpectedType:
		return ErrUnexpectedType
	case cborio.ErrUnexpectedValue:
		return ErrUnexpectedValue
	case cborio.ErrUnexpectedNumberItems:
		return ErrUnexpectedNumber
	default:
		return err
	}
}

func translatePublicKeyErr(err error) error {
	if err == cborio.ErrUnexpectedValue {
		return ErrUnexpectedValue
	}
	return translateCursorErr(err)
}

// translateQuantityErr maps a too-long byte string to ValueOutOfRange, a
// distinct code from the UnexpectedValue a wrong-length public key gets.
func translateQuantityErr(err error) error {
	if err == cborio.ErrUnexpectedValue {
		return ErrValueOutOfRange
	}
	return translateCursorErr(err)
}
