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

package cborio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/ledger-signer-core/cborio"
)

func TestReadUint64Small(t *testing.T) {
	// 0x07 -> unsigned int 7
	c := cborio.NewCursor([]byte{0x07})
	v, err := cborio.ReadUint64(c)
	require.NoError(t, err)
	require.Equal(t, uint64(7), v)
}

func TestReadUint64WithLen24(t *testing.T) {
	// 0x18 0x64 -> unsigned int 100
	c := cborio.NewCursor([]byte{0x18, 0x64})
	v, err := cborio.ReadUint64(c)
	require.NoError(t, err)
	require.Equal(t, uint64(100), v)
}

func TestReadBool(t *testing.T) {
	trueC := cborio.NewCursor([]byte{0xf5})
	v, err := cborio.ReadBool(trueC)
	require.NoError(t, err)
	require.True(t, v)

	falseC := cborio.NewCursor([]byte{0xf4})
	v, err = cborio.ReadBool(falseC)
	require.NoError(t, err)
	require.False(t, v)
}

func TestReadPublicKeyWrongLength(t *testing.T) {
	// byte string of length 1: 0x41 0xAB
	c := cborio.NewCursor([]byte{0x41, 0xAB})
	out := make([]byte, 32)
	err := cborio.ReadPublicKey(c, out)
	require.ErrorIs(t, err, cborio.ErrUnexpectedValue)
}

func TestReadQuantityTooLong(t *testing.T) {
	// byte string header claiming 65 bytes (0x58 0x41) but in practice the
	// declared length alone is enough to reject against a 64-byte buffer.
	data := append([]byte{0x58, 0x41}, make([]byte, 65)...)
	c := cborio.NewCursor(data)
	buf := make([]byte, 64)
	_, err := cborio.ReadQuantityInto(c, buf)
	require.ErrorIs(t, err, cborio.ErrUnexpectedValue)
}

func TestMatchTextKey(t *testing.T) {
	// text string "fee": 0x63 'f' 'e' 'e'
	c := cborio.NewCursor([]byte{0x63, 'f', 'e', 'e'})
	ok, err := cborio.MatchTextKey(c, "fee")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cborio.MatchTextKey(c, "nope")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEnterMapAndAdvance(t *testing.T) {
	// {"a": 1, "b": 2} canonical: 0xa2 0x61 'a' 0x01 0x61 'b' 0x02
	data := []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'b', 0x02}
	c := cborio.NewCursor(data)
	contents, err := c.EnterMap(2)
	require.NoError(t, err)

	ok, err := cborio.MatchTextKey(contents, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, contents.Advance())

	v, err := cborio.ReadUint64(contents)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)
	require.NoError(t, contents.Advance())

	ok, err = cborio.MatchTextKey(contents, "b")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, contents.Advance())

	v, err = cborio.ReadUint64(contents)
	require.NoError(t, err)
	require.Equal(t, uint64(2), v)
	require.NoError(t, contents.Advance())

	c.Leave(contents)
	require.True(t, c.AtEnd())
}

func TestArrayLenOnly(t *testing.T) {
	// [1, 2, 3]: 0x83 0x01 0x02 0x03
	data := []byte{0x83, 0x01, 0x02, 0x03}
	c := cborio.NewCursor(data)
	n, err := c.ArrayLen()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	// ArrayLen must not advance the cursor.
	require.Equal(t, 0, c.Offset())
}
