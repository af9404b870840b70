// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package b40 - the base-40 alphabet used for names and namespace ids
package b40

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/blockstack/blockstore/fault"
)

// Alphabet - digit order defines the numeric value of each character
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz-_.+"

// characters excluded from namespace ids
const namespaceExcluded = ".+"

var base = big.NewInt(int64(len(Alphabet)))

// IsB40 - true if every character is in the base-40 alphabet
func IsB40(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}

// IsB38 - the namespace alphabet: base-40 without '.' and '+'
func IsB38(s string) bool {
	return IsB40(s) && !strings.ContainsAny(s, namespaceExcluded)
}

// ToBin - convert a base-40 string to the big-endian bytes of its value
//
// leading zero digits do not contribute to the value; the hex form is
// padded to an even length so zero becomes a single 0x00 byte
func ToBin(s string) ([]byte, error) {
	value := new(big.Int)
	for _, c := range s {
		digit := strings.IndexRune(Alphabet, c)
		if digit < 0 {
			return nil, fault.ErrInvalidB40
		}
		value.Mul(value, base)
		value.Add(value, big.NewInt(int64(digit)))
	}

	h := value.Text(16)
	if 1 == len(h)%2 {
		h = "0" + h
	}
	return hex.DecodeString(h)
}
