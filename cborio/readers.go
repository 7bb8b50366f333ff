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

package cborio

// ReadPublicKey requires a byte string of exactly len(out) bytes at the cursor
// and copies it into out. Any other length or type is an error. Does not
// advance the cursor.
func ReadPublicKey(c *Cursor, out []byte) error {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return err
	}
	if h.major != MajorByteStr {
		return ErrUnexpectedType
	}
	if int(h.value) != len(out) {
		return ErrUnexpectedValue
	}
	start := c.off + h.rawLen
	if start+len(out) > len(c.data) {
		return ErrBufferEnd
	}
	copy(out, c.data[start:start+len(out)])
	return nil
}

// ReadQuantityInto copies up to len(buf) bytes of a CBOR byte string into
// buf and reports the copied length. A byte string longer than len(buf) is
// ErrUnexpectedValue — the fixed-capacity invariant is enforced here, at
// the read site, not after the fact.
func ReadQuantityInto(c *Cursor, buf []byte) (int, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return 0, err
	}
	if h.major != MajorByteStr {
		return 0, ErrUnexpectedType
	}
	if int(h.value) > len(buf) {
		return 0, ErrUnexpectedValue
	}
	start := c.off + h.rawLen
	n := int(h.value)
	if start+n > len(c.data) {
		return 0, ErrBufferEnd
	}
	copy(buf[:n], c.data[start:start+n])
	return n, nil
}

// ReadUint64 requires a CBOR unsigned integer at the cursor.
func ReadUint64(c *Cursor) (uint64, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return 0, err
	}
	if h.major != MajorUint {
		return 0, ErrUnexpectedType
	}
	return h.value, nil
}

// ReadBool requires a CBOR boolean (simple value 20 or 21) at the cursor.
func ReadBool(c *Cursor) (bool, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return false, err
	}
	if h.major != MajorSimple || (h.info != 20 && h.info != 21) {
		return false, ErrUnexpectedType
	}
	return h.info == 21, nil
}

// ReadTextString requires a CBOR text string at the cursor and returns its
// decoded value.
func ReadTextString(c *Cursor) (string, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return "", err
	}
	if h.major != MajorTextStr {
		return "", ErrUnexpectedType
	}
	start := c.off + h.rawLen
	end := start + int(h.value)
	if end > len(c.data) {
		return "", ErrBufferEnd
	}
	return string(c.data[start:end]), nil
}

// MatchTextKey requires a text string at the cursor and reports whether it
// equals expected.
func MatchTextKey(c *Cursor, expected string) (bool, error) {
	s, err := ReadTextString(c)
	if err != nil {
		return false, err
	}
	return s == expected, nil
}
