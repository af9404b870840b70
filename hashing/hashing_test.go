// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashing_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcutil"
	"github.com/stretchr/testify/assert"

	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/hashing"
)

func TestHashName(t *testing.T) {
	hasher := hashing.Hash160Hasher{}

	// "id" in base-40 is 733 = 0x02dd
	sender := "76a914"
	address := "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"
	message := append([]byte{0x02, 0xdd, 0x76, 0xa9, 0x14}, address...)
	expected := hex.EncodeToString(btcutil.Hash160(message))

	actual, err := hasher.HashName([]byte("id"), sender, address)
	assert.Nil(t, err, "hash error")
	assert.Equal(t, expected, actual, "wrong hash")
	assert.Equal(t, 40, len(actual), "wrong hash length")
}

func TestHashNameDiffers(t *testing.T) {
	hasher := hashing.Hash160Hasher{}

	h1, err := hasher.HashName([]byte("id"), "00", "a")
	assert.Nil(t, err)
	h2, err := hasher.HashName([]byte("id"), "00", "b")
	assert.Nil(t, err)
	h3, err := hasher.HashName([]byte("ie"), "00", "a")
	assert.Nil(t, err)

	assert.NotEqual(t, h1, h2, "register address ignored")
	assert.NotEqual(t, h1, h3, "name ignored")
}

func TestHashNameInvalid(t *testing.T) {
	hasher := hashing.Hash160Hasher{}

	_, err := hasher.HashName([]byte("NOT B40"), "00", "a")
	assert.Equal(t, fault.ErrInvalidB40, err, "wrong error for bad name")

	_, err = hasher.HashName([]byte("id"), "not hex", "a")
	assert.NotNil(t, err, "bad sender script accepted")
}

func TestIsValidHash(t *testing.T) {
	sum := sha256.Sum256([]byte("hello"))
	valid := hex.EncodeToString(sum[:])

	tests := []struct {
		s     string
		valid bool
	}{
		{valid, true},
		{" " + valid + "\n", false},
		{" " + valid, false},
		{valid + "\n", false},
		{valid[:63], false},
		{valid + "0", false},
		{"", false},
		{"zz" + valid[2:], false},
	}

	for i, item := range tests {
		if actual := hashing.IsValidHash(item.s); actual != item.valid {
			t.Errorf("%d: IsValidHash(%q) = %v  expected: %v", i, item.s, actual, item.valid)
		}
	}
}
