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

// Package ctxstore is the context store and validator: the ASCII-7
// signing-domain context a host sets once per session and the core
// validates against a per-method domain-separation prefix.
//
// Store is an explicitly owned value a Session holds rather than an
// ambient global, so tests can run independently of one another.
package ctxstore

import (
	"github.com/oasisprotocol/ledger-signer-core/internal/method"
)

// MaxSize bounds the context buffer, matching signercore.MaxContextSize.
const MaxSize = 100

// txPrefix is the domain-separation prefix every staking and registry
// transaction context must begin with.
const txPrefix = "oasis-core/consensus: tx for chain "

// Store holds the signing-domain context for one review session.
type Store struct {
	buf    [MaxSize]byte
	length int
}

// Set zeros the buffer and resets the recorded length before validating
// size and charset, so that a rejected context is never stored: after a
// rejection the store is empty, and the previous context is gone too.
func (s *Store) Set(newContext []byte) error {
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.length = 0

	if len(newContext) > MaxSize {
		return ErrUnexpectedSize
	}
	for _, b := range newContext {
		if b < 32 || b > 127 {
			return ErrInvalidChars
		}
	}

	s.length = copy(s.buf[:], newContext)
	return nil
}

// Get returns the stored context bytes (length s.Length()).
func (s *Store) Get() []byte {
	return s.buf[:s.length]
}

// Length returns the stored context's length.
func (s *Store) Length() int {
	return s.length
}

// expectedPrefix returns the domain-separation prefix for method, and
// whether the method has one at all.
func expectedPrefix(m method.Method) (string, bool) {
	switch m {
	case method.StakingTransfer,
		method.StakingBurn,
		method.StakingAddEscrow,
		method.StakingReclaimEscrow,
		method.StakingAmendCommissionSchedule,
		method.RegistryDeregisterEntity,
		method.RegistryUnfreezeNode:
		return txPrefix, true
	default:
		return "", false
	}
}

// Validate checks that the stored context begins with the
// domain-separation prefix expected for m.
func (s *Store) Validate(m method.Method) error {
	prefix, ok := expectedPrefix(m)
	if !ok {
		return ErrUnknownPrefix
	}
	if len(prefix) > s.length {
		return ErrMismatch
	}
	if string(s.buf[:len(prefix)]) != prefix {
		return ErrMismatch
	}
	return nil
}

// Suffix returns the portion of the stored context after the method's
// expected prefix. When the prefix doesn't match (or the method has none),
// it returns the whole context instead, so a rejecting UI can still show
// the user what was rejected.
func (s *Store) Suffix(m method.Method) []byte {
	prefix, ok := expectedPrefix(m)
	if !ok {
		return s.Get()
	}
	if len(prefix) > s.length || string(s.buf[:len(prefix)]) != prefix {
		return s.Get()
	}
	return s.buf[len(prefix):s.length]
}
