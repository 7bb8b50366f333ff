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

package ctxstore_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/ledger-signer-core/ctxstore"
	"github.com/oasisprotocol/ledger-signer-core/internal/method"
)

func TestSetContextRejectsNonPrintable(t *testing.T) {
	var s ctxstore.Store
	require.NoError(t, s.Set([]byte("previous-good-context")))

	err := s.Set([]byte("\x01bad"))
	require.ErrorIs(t, err, ctxstore.ErrInvalidChars)

	// A rejected context must not replace the previous one — and the
	// previous one doesn't survive either, because Set always zeros
	// first. "empty" is the documented post-rejection state.
	require.Equal(t, 0, s.Length())
	require.True(t, bytes.Equal(s.Get(), []byte{}))
}

func TestSetContextRejectsOversize(t *testing.T) {
	var s ctxstore.Store
	err := s.Set(bytes.Repeat([]byte("a"), ctxstore.MaxSize+1))
	require.ErrorIs(t, err, ctxstore.ErrUnexpectedSize)
	require.Equal(t, 0, s.Length())
}

func TestSetContextPurity(t *testing.T) {
	var s ctxstore.Store
	require.NoError(t, s.Set([]byte("oasis-core/consensus: tx for chain XXXXXXXX")))
	require.NoError(t, s.Set([]byte("Y")))

	require.Equal(t, 1, s.Length())
	require.Equal(t, byte('Y'), s.Get()[0])
	// No trace of the old, longer value remains in the backing array.
	for _, b := range s.Get()[1:ctxstore.MaxSize] {
		require.Zero(t, b)
	}
}

func TestValidateContextPrefix(t *testing.T) {
	var s ctxstore.Store
	require.NoError(t, s.Set([]byte("oasis-core/consensus: tx for chain testnet-genesis")))
	require.NoError(t, s.Validate(method.StakingTransfer))

	suffix := s.Suffix(method.StakingTransfer)
	require.Equal(t, "testnet-genesis", string(suffix))
}

func TestValidateContextMismatch(t *testing.T) {
	var s ctxstore.Store
	require.NoError(t, s.Set([]byte("not-the-right-prefix")))
	err := s.Validate(method.StakingBurn)
	require.ErrorIs(t, err, ctxstore.ErrMismatch)

	// On mismatch, Suffix returns the whole context so the UI can show
	// what was rejected.
	require.Equal(t, "not-the-right-prefix", string(s.Suffix(method.StakingBurn)))
}

func TestValidateContextUnknownMethod(t *testing.T) {
	var s ctxstore.Store
	require.NoError(t, s.Set([]byte("anything")))
	err := s.Validate(method.Unknown)
	require.ErrorIs(t, err, ctxstore.ErrUnknownPrefix)
}

func TestSetContextEmpty(t *testing.T) {
	var s ctxstore.Store
	require.NoError(t, s.Set(nil))
	require.Equal(t, 0, s.Length())
	require.False(t, strings.Contains(string(s.Get()), "x"))
}
