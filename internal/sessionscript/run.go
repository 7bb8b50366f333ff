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

package sessionscript

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	signercore "github.com/oasisprotocol/ledger-signer-core"
	"github.com/oasisprotocol/ledger-signer-core/signer"
)

// Run drives a fresh Session through every Step in order, logging each
// one to logger. It stops and returns the first error encountered, the
// same fail-fast behavior a real host transport would give a malformed
// or rejected message.
func (s Script) Run(logger *slog.Logger) error {
	sess := signercore.NewSession()

	for i, step := range s.Steps {
		if err := runStep(sess, step, logger); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func runStep(sess *signercore.Session, step Step, logger *slog.Logger) error {
	switch {
	case step.SetContext != nil:
		if err := sess.SetContext([]byte(step.SetContext.Context)); err != nil {
			return fmt.Errorf("set_context: %w", err)
		}
		logger.Info("set_context", "length", len(step.SetContext.Context))

	case step.Parse != nil:
		raw, err := hex.DecodeString(step.Parse.Hex)
		if err != nil {
			return fmt.Errorf("parse: decoding hex: %w", err)
		}
		if err := sess.Parse(raw); err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		logger.Info("parse", "bytes", len(raw))

	case step.Enumerate != nil:
		return runEnumerate(sess, logger)

	case step.Validate != nil:
		if err := sess.Validate(); err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		logger.Info("validate: ok")

	case step.Sign != nil:
		sgn, err := newSigner(step.Sign.Seed)
		if err != nil {
			return fmt.Errorf("sign: %w", err)
		}
		sig, err := sess.Sign(context.Background(), sgn)
		if err != nil {
			return fmt.Errorf("sign: %w", err)
		}
		logger.Info("sign", "signature", hex.EncodeToString(sig))

	case step.GetAddress != nil:
		sgn, err := newSigner(step.GetAddress.Seed)
		if err != nil {
			return fmt.Errorf("get_address: %w", err)
		}
		pub, addr, err := sess.GetAddress(context.Background(), sgn)
		if err != nil {
			return fmt.Errorf("get_address: %w", err)
		}
		logger.Info("get_address", "pubkey", hex.EncodeToString(pub), "address", addr)

	default:
		return fmt.Errorf("empty step")
	}
	return nil
}

// runEnumerate logs every display row of the currently parsed message,
// one log line per page — the same (key, value, page, pages) shape a
// device's display driver consumes per GET_ITEM call.
func runEnumerate(sess *signercore.Session, logger *slog.Logger) error {
	n, err := sess.NumItems()
	if err != nil {
		return fmt.Errorf("enumerate: %w", err)
	}

	for idx := 0; idx < int(n); idx++ {
		key, value, pages, err := sess.GetItem(idx, 0)
		if err != nil {
			return fmt.Errorf("enumerate: row %d: %w", idx, err)
		}
		logger.Info("item", "idx", idx, "key", key, "value", value, "page", 0, "pages", pages)

		for p := uint8(1); p < pages; p++ {
			_, value, _, err := sess.GetItem(idx, p)
			if err != nil {
				return fmt.Errorf("enumerate: row %d page %d: %w", idx, p, err)
			}
			logger.Info("item", "idx", idx, "key", key, "value", value, "page", p, "pages", pages)
		}
	}
	return nil
}

func newSigner(seedHex string) (*signer.Signer, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	return &signer.Signer{Deriver: signer.NewSLIP10Deriver(seed)}, nil
}
