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

import (
	"errors"

	"github.com/oasisprotocol/ledger-signer-core/ctxstore"
	"github.com/oasisprotocol/ledger-signer-core/decoder"
	"github.com/oasisprotocol/ledger-signer-core/render"
)

// mapDecoderErr translates package decoder's local sentinels onto this
// module's Code taxonomy. Session is the only place that needs to know
// both vocabularies exist.
func mapDecoderErr(err error) error {
	switch {
	case errors.Is(err, decoder.ErrBufferEmpty):
		return ErrUnexpectedBufferEnd.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrUnexpectedType):
		return ErrUnexpectedType.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrUnexpectedMethod):
		return ErrUnexpectedMethod.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrValueOutOfRange):
		return ErrValueOutOfRange.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrUnexpectedValue):
		return ErrUnexpectedValue.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrUnexpectedNumber):
		return ErrUnexpectedNumberItems.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrUnexpectedField):
		return ErrUnexpectedField.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrRequiredNonce):
		return ErrRequiredNonce.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrRequiredMethod):
		return ErrRequiredMethod.WithMsg(err.Error())
	case errors.Is(err, decoder.ErrDataAtEnd):
		return ErrUnexpectedDataAtEnd.WithMsg(err.Error())
	default:
		return ErrCborUnexpected.WithMsg(err.Error())
	}
}

// mapRenderErr translates package render's sentinels. render.GetItem also
// surfaces decoder's lazy-fetch errors verbatim (fetching a rate/bound/
// node element re-parses the original input), so unrecognized errors fall
// through to mapDecoderErr rather than a single catch-all.
func mapRenderErr(err error) error {
	switch {
	case errors.Is(err, render.ErrIdxOutOfRange):
		return ErrDisplayIdxOutOfRange.WithMsg(err.Error())
	case errors.Is(err, render.ErrUnknownMessage):
		return ErrNoData.WithMsg(err.Error())
	default:
		return mapDecoderErr(err)
	}
}

// mapCtxstoreErr translates package ctxstore's sentinels.
func mapCtxstoreErr(err error) error {
	switch {
	case errors.Is(err, ctxstore.ErrUnexpectedSize):
		return ErrContextUnexpectedSize.WithMsg(err.Error())
	case errors.Is(err, ctxstore.ErrInvalidChars):
		return ErrContextInvalidChars.WithMsg(err.Error())
	case errors.Is(err, ctxstore.ErrUnknownPrefix):
		return ErrContextUnknownPrefix.WithMsg(err.Error())
	case errors.Is(err, ctxstore.ErrMismatch):
		return ErrContextMismatch.WithMsg(err.Error())
	default:
		return ErrCborUnexpected.WithMsg(err.Error())
	}
}

// mapCanonErr translates package canon's validation failure. canon has no
// finer-grained taxonomy than "not canonical" / "trailing bytes", both of
// which file under the same CborUnexpected code as any other malformed-
// encoding failure.
func mapCanonErr(err error) error {
	return ErrCborUnexpected.WithMsg(err.Error())
}
