// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package b40_test

import (
	"bytes"
	"testing"

	"github.com/blockstack/blockstore/b40"
	"github.com/blockstack/blockstore/fault"
)

func TestAlphabet(t *testing.T) {
	tests := []struct {
		s   string
		b40 bool
		b38 bool
	}{
		{"", true, true},
		{"id", true, true},
		{"a-b_c", true, true},
		{"name.id", true, false},
		{"a+b", true, false},
		{"UPPER", false, false},
		{"sp ace", false, false},
		{"ünï", false, false},
	}

	for i, item := range tests {
		if actual := b40.IsB40(item.s); actual != item.b40 {
			t.Errorf("%d: IsB40(%q) = %v  expected: %v", i, item.s, actual, item.b40)
		}
		if actual := b40.IsB38(item.s); actual != item.b38 {
			t.Errorf("%d: IsB38(%q) = %v  expected: %v", i, item.s, actual, item.b38)
		}
	}
}

func TestToBin(t *testing.T) {
	tests := []struct {
		s        string
		expected []byte
	}{
		{"0", []byte{0x00}},
		{"1", []byte{0x01}},
		{"f", []byte{0x0f}},
		{"10", []byte{0x28}},
		{"+", []byte{0x27}},
		{"id", []byte{0x02, 0xdd}},
		{"0id", []byte{0x02, 0xdd}},
		{"100", []byte{0x06, 0x40}},
	}

	for i, item := range tests {
		actual, err := b40.ToBin(item.s)
		if nil != err {
			t.Fatalf("%d: %q error: %s", i, item.s, err)
		}
		if !bytes.Equal(actual, item.expected) {
			t.Errorf("%d: %q → %x  expected: %x", i, item.s, actual, item.expected)
		}
	}
}

func TestToBinInvalid(t *testing.T) {
	_, err := b40.ToBin("Not Valid")
	if fault.ErrInvalidB40 != err {
		t.Errorf("expected: %s  actual: %v", fault.ErrInvalidB40, err)
	}
}
