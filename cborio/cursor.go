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

// Package cborio implements the byte reader primitives this module's
// decoder needs: typed readers over a canonical CBOR byte slice that
// never advance the cursor themselves. Composition (read, then advance)
// is the caller's job, keeping each reader a small, independently
// testable peek rather than a combined read-and-advance operation.
package cborio

import (
	"encoding/binary"
)

// Major CBOR types, RFC 7049 §2.1.
const (
	MajorUint    = 0
	MajorNegInt  = 1
	MajorByteStr = 2
	MajorTextStr = 3
	MajorArray   = 4
	MajorMap     = 5
	MajorTag     = 6
	MajorSimple  = 7
)

// Cursor is a read-only view into an immutable CBOR byte slice plus a
// current offset. It never mutates the underlying slice.
type Cursor struct {
	data []byte
	off  int
}

// NewCursor returns a Cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// AtEnd reports whether the cursor has consumed the entire input.
func (c *Cursor) AtEnd() bool {
	return c.off >= len(c.data)
}

// Offset returns the cursor's current byte offset into the original input.
func (c *Cursor) Offset() int {
	return c.off
}

// header describes one parsed CBOR item header.
type header struct {
	major  byte
	info   byte
	value  uint64
	rawLen int // bytes occupied by the header itself
}

func parseHeader(data []byte, off int) (header, error) {
	if off >= len(data) {
		return header{}, ErrBufferEnd
	}
	first := data[off]
	major := first >> 5
	info := first & 0x1f

	switch {
	case info < 24:
		return header{major: major, info: info, value: uint64(info), rawLen: 1}, nil
	case info == 24:
		if off+2 > len(data) {
			return header{}, ErrBufferEnd
		}
		return header{major: major, info: info, value: uint64(data[off+1]), rawLen: 2}, nil
	case info == 25:
		if off+3 > len(data) {
			return header{}, ErrBufferEnd
		}
		return header{major: major, info: info, value: uint64(binary.BigEndian.Uint16(data[off+1 : off+3])), rawLen: 3}, nil
	case info == 26:
		if off+5 > len(data) {
			return header{}, ErrBufferEnd
		}
		return header{major: major, info: info, value: uint64(binary.BigEndian.Uint32(data[off+1 : off+5])), rawLen: 5}, nil
	case info == 27:
		if off+9 > len(data) {
			return header{}, ErrBufferEnd
		}
		return header{major: major, info: info, value: binary.BigEndian.Uint64(data[off+1 : off+9]), rawLen: 9}, nil
	default:
		// info == 28..30 reserved, 31 indefinite-length: neither is valid
		// canonical CBOR for this schema.
		return header{}, ErrUnexpectedType
	}
}

// itemLen returns the total number of bytes the CBOR item starting at off
// occupies, recursing into arrays/maps/tags so that an entire subtree can
// be skipped in one Advance call.
func itemLen(data []byte, off int) (int, error) {
	h, err := parseHeader(data, off)
	if err != nil {
		return 0, err
	}
	switch h.major {
	case MajorUint, MajorNegInt:
		return h.rawLen, nil
	case MajorByteStr, MajorTextStr:
		total := h.rawLen + int(h.value)
		if off+total > len(data) {
			return 0, ErrBufferEnd
		}
		return total, nil
	case MajorArray:
		total := h.rawLen
		pos := off + h.rawLen
		for i := uint64(0); i < h.value; i++ {
			n, err := itemLen(data, pos)
			if err != nil {
				return 0, err
			}
			total += n
			pos += n
		}
		return total, nil
	case MajorMap:
		total := h.rawLen
		pos := off + h.rawLen
		for i := uint64(0); i < h.value*2; i++ {
			n, err := itemLen(data, pos)
			if err != nil {
				return 0, err
			}
			total += n
			pos += n
		}
		return total, nil
	case MajorTag:
		n, err := itemLen(data, off+h.rawLen)
		if err != nil {
			return 0, err
		}
		return h.rawLen + n, nil
	case MajorSimple:
		// Booleans/null/simple values and floats carry no extra payload
		// beyond what parseHeader already accounted for in rawLen.
		return h.rawLen, nil
	default:
		return 0, ErrUnexpectedType
	}
}

// Advance skips past the single CBOR item at the cursor's current
// position, recursing fully through container types. It never needs to
// have been "read" first — readers in this package are pure peeks.
func (c *Cursor) Advance() error {
	n, err := itemLen(c.data, c.off)
	if err != nil {
		return err
	}
	c.off += n
	return nil
}

// EnterMap asserts the value at the cursor is a map of exactly
// expectedLen entries and returns a new Cursor positioned at its first
// key, leaving the receiver untouched. Pair it with Leave once the
// contents cursor has consumed every key/value.
func (c *Cursor) EnterMap(expectedLen int) (*Cursor, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return nil, err
	}
	if h.major != MajorMap {
		return nil, ErrUnexpectedType
	}
	if int(h.value) != expectedLen {
		return nil, ErrUnexpectedNumberItems
	}
	return &Cursor{data: c.data, off: c.off + h.rawLen}, nil
}

// EnterMapLen returns a new Cursor positioned at the map's first key along
// with its declared entry count, without asserting any particular count —
// used where the key set is variable, such as the transaction outer map
// once "fee" becomes optional.
func (c *Cursor) EnterMapLen() (*Cursor, int, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return nil, 0, err
	}
	if h.major != MajorMap {
		return nil, 0, ErrUnexpectedType
	}
	return &Cursor{data: c.data, off: c.off + h.rawLen}, int(h.value), nil
}

// MapLen reports the declared length of the map at the cursor without
// entering it.
func (c *Cursor) MapLen() (int, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return 0, err
	}
	if h.major != MajorMap {
		return 0, ErrUnexpectedType
	}
	return int(h.value), nil
}

// EnterArray asserts the value at the cursor is an array and returns its
// declared length plus a new Cursor positioned at its first element,
// leaving the receiver untouched.
func (c *Cursor) EnterArray() (*Cursor, uint64, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return nil, 0, err
	}
	if h.major != MajorArray {
		return nil, 0, ErrUnexpectedType
	}
	return &Cursor{data: c.data, off: c.off + h.rawLen}, h.value, nil
}

// ArrayLen reports the declared length of the array at the cursor without
// entering it — used by the schema decoder to record rates_len/bounds_len
// without materializing elements.
func (c *Cursor) ArrayLen() (int, error) {
	h, err := parseHeader(c.data, c.off)
	if err != nil {
		return 0, err
	}
	if h.major != MajorArray {
		return 0, ErrUnexpectedType
	}
	return int(h.value), nil
}

// Leave copies the contents cursor's position back onto the receiver, the
// way the original tinycbor cbor_value_leave_container reseats the parent
// iterator after a nested container has been fully walked.
func (c *Cursor) Leave(contents *Cursor) {
	c.off = contents.off
}

// Seek repositions the cursor to an absolute byte offset.
func (c *Cursor) Seek(off int) {
	c.off = off
}
