// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zonefile

import (
	"strings"

	"github.com/blockstack/blockstore/hashing"
)

// split an immutable record at its last '#'
func splitTXT(txt string) (string, string, bool) {
	n := strings.LastIndex(txt, immutableSeparator)
	if n < 0 {
		return "", "", false
	}
	return txt[:n], txt[n+1:], true
}

// MakeImmutableTXT - the txt of an immutable data record
func MakeImmutableTXT(hash string, urlHint string) string {
	return urlHint + immutableSeparator + hash
}

// HashFromTXT - the content hash of an immutable data record
func HashFromTXT(txt string) (string, bool) {
	return hashFromTXT(txt, hashing.IsValidHash)
}

func hashFromTXT(txt string, valid hashing.Validator) (string, bool) {
	_, hash, ok := splitTXT(txt)
	if !ok || !valid(hash) {
		return "", false
	}
	return hash, true
}

// URLFromTXT - the url hint of an immutable data record
//
// everything before the last '#'; false when there is no hint
func URLFromTXT(txt string) (string, bool) {
	u, _, ok := splitTXT(txt)
	if !ok || "" == u {
		return "", false
	}
	return u, true
}
