// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"encoding/hex"

	"github.com/blockstack/blockstore/opcode"
)

// Packed - an operation payload without magic bytes or opcode
type Packed []byte

// Frame - prefix the magic bytes and opcode ready for a data carrier output
func (record Packed) Frame(op opcode.Opcode, testset bool) []byte {
	return opcode.AddMagicBytes(op, record, testset)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	buffer := make([]byte, size)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*record = buffer
	return nil
}
