// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"

	"github.com/blockstack/blockstore/fault"
)

// FixedMaximumBytes - widest field that fits a uint64
const FixedMaximumBytes = 8

// check the width and the value against the width
func checkFixed(value uint64, width int) error {
	if width < 1 || width > FixedMaximumBytes {
		return fault.ErrInvalidFieldWidth
	}
	if width < FixedMaximumBytes && value >= uint64(1)<<uint(8*width) {
		return fault.ErrFieldOverflow
	}
	return nil
}

// AppendFixed - append value as exactly width big-endian bytes
//
// Structure for width 4, value 0x00a1b2c3
// byte 1: 0x00 | byte 2: 0xa1 | byte 3: 0xb2 | byte 4: 0xc3
func AppendFixed(buffer []byte, value uint64, width int) ([]byte, error) {
	if err := checkFixed(value, width); nil != err {
		return buffer, err
	}
	for shift := 8 * (width - 1); shift >= 0; shift -= 8 {
		buffer = append(buffer, byte(value>>uint(shift)))
	}
	return buffer, nil
}

// ToFixedHex - convert value to exactly 2*width hex characters
//
// leading zeros are always present, so 1 in a 2 byte field is "0001"
func ToFixedHex(value uint64, width int) (string, error) {
	b, err := AppendFixed(make([]byte, 0, width), value, width)
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// FromFixed - read width big-endian bytes from the start of buffer
//
// also return the number of bytes used as second value
// returns 0, 0 if the buffer is truncated or the width is invalid
func FromFixed(buffer []byte, width int) (uint64, int) {
	if width < 1 || width > FixedMaximumBytes || len(buffer) < width {
		return 0, 0
	}
	value := uint64(0)
	for _, b := range buffer[:width] {
		value = value<<8 | uint64(b)
	}
	return value, width
}

// Cursor - sequential reader of fixed width fields
type Cursor struct {
	buffer []byte
	offset int
}

// NewCursor - start reading at the beginning of buffer
func NewCursor(buffer []byte) *Cursor {
	return &Cursor{buffer: buffer}
}

// Uint - read the next field and advance past it
func (c *Cursor) Uint(width int) (uint64, error) {
	if width < 1 || width > FixedMaximumBytes {
		return 0, fault.ErrInvalidFieldWidth
	}
	value, n := FromFixed(c.buffer[c.offset:], width)
	if 0 == n {
		return 0, fault.ErrTruncatedPayload
	}
	c.offset += n
	return value, nil
}

// Remainder - all bytes not yet read, the cursor moves to the end
func (c *Cursor) Remainder() []byte {
	r := c.buffer[c.offset:]
	c.offset = len(c.buffer)
	return r
}

// Offset - number of bytes consumed so far
func (c *Cursor) Offset() int {
	return c.offset
}
