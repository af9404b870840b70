// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mutable

import (
	"encoding/base64"
	"regexp"
	"strconv"

	"github.com/blockstack/blockstore/fault"
)

const keyTag = "mutable"

var keyPattern = regexp.MustCompile(`^mutable:([A-Za-z0-9+/=]*):([0-9]+)$`)

// Key - identity of a mutable data entry
type Key struct {
	DataId  string `json:"data_id"`
	Version uint64 `json:"version"`
}

// Pack - the string form used as a JSON map key
func (k Key) Pack() string {
	return PackPrefix(k.DataId) + strconv.FormatUint(k.Version, 10)
}

// String - the packed form
func (k Key) String() string {
	return k.Pack()
}

// PackPrefix - the packed form of every version of a data id
func PackPrefix(dataId string) string {
	return keyTag + ":" + base64.StdEncoding.EncodeToString([]byte(dataId)) + ":"
}

// IsPackedKey - true if the string has the packed key form
func IsPackedKey(s string) bool {
	return keyPattern.MatchString(s)
}

// UnpackKey - exact inverse of Pack
func UnpackKey(s string) (Key, error) {
	m := keyPattern.FindStringSubmatch(s)
	if nil == m {
		return Key{}, fault.ErrMalformedKey
	}

	dataId, err := base64.StdEncoding.DecodeString(m[1])
	if nil != err {
		return Key{}, fault.ErrMalformedKey
	}
	version, err := strconv.ParseUint(m[2], 10, 64)
	if nil != err {
		return Key{}, fault.ErrMalformedKey
	}

	k := Key{
		DataId:  string(dataId),
		Version: version,
	}
	if k.Pack() != s {
		return Key{}, fault.ErrMalformedKey
	}
	return k, nil
}
