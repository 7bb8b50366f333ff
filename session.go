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

// Package signercore is the public entry point of the review-and-sign
// core: a single Session type that a host transport drives through
// SET_CONTEXT, PARSE, GET_ITEM, VALIDATE and SIGN, in that order.
// Session itself does no CBOR decoding, rendering, or signing — it owns a
// ctxstore.Store and the current *ParsedMessage and delegates to package
// decoder, render, canon, ctxstore and signer, translating every leaf
// package's local sentinel error onto this package's Code taxonomy at the
// boundary (errors_map.go).
package signercore

import (
	"context"

	"github.com/oasisprotocol/ledger-signer-core/canon"
	"github.com/oasisprotocol/ledger-signer-core/ctxstore"
	"github.com/oasisprotocol/ledger-signer-core/decoder"
	"github.com/oasisprotocol/ledger-signer-core/render"
	"github.com/oasisprotocol/ledger-signer-core/signer"
)

// state is the session's position in the review state machine:
//
//	Idle -> Parsed -> Validated -> Signed
//	          \           \
//	           `---------- -> Rejected
//
// Any call out of order returns ErrSessionState rather than acting.
type state uint8

const (
	stateIdle state = iota
	stateParsed
	stateValidated
	stateSigned
	stateRejected
)

// Session is the single stateful object this module exposes. A host keeps
// exactly one Session alive per physical review: a fresh Session (or a
// call to Reset) is required to review the next message.
type Session struct {
	ctx   ctxstore.Store
	msg   *ParsedMessage
	state state
}

// NewSession returns an idle Session with an empty signing context.
func NewSession() *Session {
	return &Session{state: stateIdle}
}

// Reset discards any parsed message and review progress, returning the
// Session to Idle. The signing context set by SetContext is left intact:
// it is a host-session property, not a per-message one.
func (s *Session) Reset() {
	s.msg = nil
	s.state = stateIdle
}

// SetContext stores the signing-domain context used by Validate and Sign.
// It may be called at any point in the state machine — a host is expected
// to call it once before the first Parse, but nothing here forbids
// changing it between reviews.
func (s *Session) SetContext(data []byte) error {
	if err := s.ctx.Set(data); err != nil {
		return mapCtxstoreErr(err)
	}
	return nil
}

// Parse decodes input as a transaction or entity descriptor and moves the
// Session from Idle to Parsed. input is retained for the lifetime of the
// parsed message (ParsedMessage borrows from it directly), so the host
// must not mutate it afterward.
func (s *Session) Parse(input []byte) error {
	if s.state != stateIdle {
		return ErrSessionState
	}

	msg, err := decoder.Decode(input)
	if err != nil {
		return mapDecoderErr(err)
	}

	s.msg = msg
	s.state = stateParsed
	return nil
}

// contextSuffix returns the portion of the stored context the UI should
// display alongside a transaction, per ctxstore.Store.Suffix. Entities
// carry no method and so have no domain-separation prefix to strip.
func (s *Session) contextSuffix() []byte {
	if s.msg == nil || !s.msg.IsTransaction() {
		return nil
	}
	return s.ctx.Suffix(s.msg.Tx.Method)
}

// NumItems reports the number of display rows the parsed message has.
// Valid once Parsed, before or after Validate; a rejected or signed
// session must be Reset first.
func (s *Session) NumItems() (uint8, error) {
	if s.state != stateParsed && s.state != stateValidated {
		return 0, ErrSessionState
	}
	return render.NumItems(s.msg, s.contextSuffix()), nil
}

// GetItem renders row idx, page pageIdx of the parsed message. Valid once
// Parsed, before or after Validate, so a host can enumerate rows while
// still deciding whether to call Validate at all.
func (s *Session) GetItem(idx int, pageIdx uint8) (key, value string, pageCount uint8, err error) {
	if s.state != stateParsed && s.state != stateValidated {
		return "", "", 0, ErrSessionState
	}
	key, value, pageCount, err = render.GetItem(s.msg, s.contextSuffix(), idx, pageIdx)
	if err != nil {
		return "", "", 0, mapRenderErr(err)
	}
	if pageIdx >= pageCount {
		return "", "", 0, ErrDisplayPageOutOfRange
	}
	return key, value, pageCount, nil
}

// Validate runs every check required before a message may be signed: the
// independent canonical-CBOR re-validation (package canon),
// a full sweep of every display row (package render, so a rendering
// failure can never surface mid-approval), and — for transactions — the
// signing-domain context's prefix check (package ctxstore). A failure at
// any step moves the Session to Rejected; Sign and GetItem are no longer
// reachable until Reset.
func (s *Session) Validate() error {
	if s.state != stateParsed {
		return ErrSessionState
	}

	if err := canon.Validate(s.msg.Input); err != nil {
		s.state = stateRejected
		return mapCanonErr(err)
	}

	suffix := s.contextSuffix()
	if err := render.Validate(s.msg, suffix); err != nil {
		s.state = stateRejected
		return mapRenderErr(err)
	}

	if s.msg.IsTransaction() {
		if err := s.ctx.Validate(s.msg.Tx.Method); err != nil {
			s.state = stateRejected
			return mapCtxstoreErr(err)
		}
	}

	s.state = stateValidated
	return nil
}

// Sign signs the parsed message's original bytes with
// Ed25519(SHA-512(context || message)) over a key derived via sgn.
// Only reachable once Validated and with a non-empty signing context; on
// success the Session moves to Signed, and Reset (or a fresh Session) is
// required before the next Parse.
func (s *Session) Sign(ctx context.Context, sgn *signer.Signer) ([]byte, error) {
	if s.state != stateValidated {
		return nil, ErrSessionState
	}
	if s.ctx.Length() == 0 {
		return nil, ErrInitContextEmpty
	}

	sig, err := sgn.Sign(ctx, s.ctx.Get(), s.msg.Input)
	if err != nil {
		s.state = stateRejected
		return nil, ErrInternalCryptoError.WithMsg(err.Error())
	}

	s.state = stateSigned
	return sig, nil
}

// GetAddress derives the device's Ed25519 public key via sgn and returns
// both the raw key and its Bech32 "oasis1..." rendering.
// Unlike Parse/Validate/Sign, GetAddress does not touch the review state
// machine: a host may call it independently of any in-progress review.
func (s *Session) GetAddress(ctx context.Context, sgn *signer.Signer) (pubkey []byte, address string, err error) {
	pub, err := sgn.Address(ctx)
	if err != nil {
		return nil, "", ErrInternalCryptoError.WithMsg(err.Error())
	}

	addr, err := render.EncodeAddress(pub)
	if err != nil {
		return nil, "", ErrInternalCryptoError.WithMsg(err.Error())
	}
	return pub, addr, nil
}
