// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashing - commitment hashes for names and the content hash
// format used by data records
package hashing

import (
	"encoding/hex"

	"github.com/btcsuite/btcutil"

	"github.com/blockstack/blockstore/b40"
)

// ContentHashLength - hex characters in a content hash (SHA-256)
const ContentHashLength = 64

// NameHasher - compute the commitment hash binding a name to the
// sender that preordered it and the address that will receive it
type NameHasher interface {
	HashName(name []byte, senderScriptHex string, registerAddress string) (string, error)
}

// Validator - check the format of a content hash
type Validator func(string) bool

// Hash160Hasher - the protocol's commitment hash:
//
//   hex(RIPEMD160(SHA256(b40bin(name) ‖ sender script ‖ register address)))
type Hash160Hasher struct{}

// HashName - implements NameHasher
func (Hash160Hasher) HashName(name []byte, senderScriptHex string, registerAddress string) (string, error) {
	binName, err := b40.ToBin(string(name))
	if nil != err {
		return "", err
	}
	script, err := hex.DecodeString(senderScriptHex)
	if nil != err {
		return "", err
	}

	message := make([]byte, 0, len(binName)+len(script)+len(registerAddress))
	message = append(message, binName...)
	message = append(message, script...)
	message = append(message, registerAddress...)

	return hex.EncodeToString(btcutil.Hash160(message)), nil
}

// IsValidHash - true for exactly 64 hex digits
func IsValidHash(s string) bool {
	if ContentHashLength != len(s) {
		return false
	}
	_, err := hex.DecodeString(s)
	return nil == err
}
