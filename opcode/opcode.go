// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package opcode - framing of operation payloads in a data carrier output
//
// Every operation is prefixed by two magic bytes that identify the
// protocol and the network set, followed by a single opcode byte:
//
//   0     2   3
//   |-----|---|-----------------|
//   magic  op  operation payload
package opcode

import (
	"github.com/blockstack/blockstore/fault"
)

// Opcode - operation code following the magic bytes
type Opcode byte

// all operations
const (
	NamePreorder      = Opcode('?')
	NameRegistration  = Opcode(':')
	NameUpdate        = Opcode('+')
	NameTransfer      = Opcode('>')
	NameRevoke        = Opcode('~')
	NameImport        = Opcode(';')
	NamespacePreorder = Opcode('*')
	NamespaceReveal   = Opcode('&')
	NamespaceReady    = Opcode('!')
	Announce          = Opcode('#')
)

// magic bytes for each set of names
var (
	MainsetMagic = [2]byte{'i', 'd'}
	TestsetMagic = [2]byte{'e', 'g'}
)

// PrefixLength - bytes before the operation payload
const PrefixLength = 3

var names = map[Opcode]string{
	NamePreorder:      "NAME_PREORDER",
	NameRegistration:  "NAME_REGISTRATION",
	NameUpdate:        "NAME_UPDATE",
	NameTransfer:      "NAME_TRANSFER",
	NameRevoke:        "NAME_REVOKE",
	NameImport:        "NAME_IMPORT",
	NamespacePreorder: "NAMESPACE_PREORDER",
	NamespaceReveal:   "NAMESPACE_REVEAL",
	NamespaceReady:    "NAMESPACE_READY",
	Announce:          "ANNOUNCE",
}

// String - protocol name of the opcode
func (op Opcode) String() string {
	if s, ok := names[op]; ok {
		return s
	}
	return "*unknown*"
}

// Valid - true for a known opcode
func (op Opcode) Valid() bool {
	_, ok := names[op]
	return ok
}

// AddMagicBytes - frame a payload ready for a data carrier output
func AddMagicBytes(op Opcode, payload []byte, testset bool) []byte {
	magic := MainsetMagic
	if testset {
		magic = TestsetMagic
	}
	data := make([]byte, 0, PrefixLength+len(payload))
	data = append(data, magic[0], magic[1], byte(op))
	return append(data, payload...)
}

// Split - separate framing from the operation payload
//
// the payload shares the underlying array of data
func Split(data []byte) (testset bool, op Opcode, payload []byte, err error) {
	if len(data) < PrefixLength {
		return false, 0, nil, fault.ErrTruncatedPayload
	}

	switch [2]byte{data[0], data[1]} {
	case MainsetMagic:
		testset = false
	case TestsetMagic:
		testset = true
	default:
		return false, 0, nil, fault.ErrInvalidMagicBytes
	}

	op = Opcode(data[2])
	if !op.Valid() {
		return false, 0, nil, fault.ErrInvalidOpcode
	}
	return testset, op, data[PrefixLength:], nil
}
