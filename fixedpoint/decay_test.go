// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedpoint_test

import (
	"math"
	"testing"

	"github.com/blockstack/blockstore/fixedpoint"
)

func TestFloatToDecay(t *testing.T) {
	tests := []struct {
		value    float64
		expected uint32
	}{
		{0, 0x00000000},
		{1, 0x01000000},
		{1.5, 0x01800000},
		{4.25, 0x04400000},
		{255, 0xff000000},
		{255.5, 0xff800000},
		{0.00000005960464477539063, 0x00000001}, // 1/2^24
		{0.00000002980232238769531, 0x00000000}, // 1/2^25 truncates to zero
	}

	for i, item := range tests {
		actual, ok := fixedpoint.FloatToDecay(item.value)
		if !ok {
			t.Errorf("%d: %v was rejected", i, item.value)
			continue
		}
		if actual != item.expected {
			t.Errorf("%d: %v → 0x%08x  expected: 0x%08x", i, item.value, actual, item.expected)
		}
	}
}

func TestFloatToDecayTruncates(t *testing.T) {
	// just below 1/2^24 must not round up
	value := 0.99 / float64(1<<24)
	actual, ok := fixedpoint.FloatToDecay(value)
	if !ok || 0 != actual {
		t.Errorf("%v → 0x%08x, %v  expected: 0x00000000, true", value, actual, ok)
	}
}

func TestFloatToDecayInvalid(t *testing.T) {
	tests := []float64{
		-1,
		-0.0001,
		256,
		1000.5,
		math.NaN(),
		math.Inf(1),
	}

	for i, value := range tests {
		if actual, ok := fixedpoint.FloatToDecay(value); ok {
			t.Errorf("%d: %v accepted as: 0x%08x", i, value, actual)
		}
	}
}

func TestDecayToFloat(t *testing.T) {
	tests := []struct {
		fixedpoint uint32
		expected   float64
	}{
		{0x00000000, 0},
		{0x01000000, 1},
		{0x01800000, 1.5},
		{0xff000000, 255},
		{0x00000001, 1.0 / (1 << 24)},
		{0xffffffff, 255 + float64(1<<24-1)/(1<<24)},
	}

	for i, item := range tests {
		actual := fixedpoint.DecayToFloat(item.fixedpoint)
		if actual != item.expected {
			t.Errorf("%d: 0x%08x → %v  expected: %v", i, item.fixedpoint, actual, item.expected)
		}
	}
}

// converting back and forth loses at most one fraction unit
func TestRoundTrip(t *testing.T) {
	const epsilon = 1.0 / (1 << 24)

	for v := 0.0; v < 256; v += 0.7071 {
		packed, ok := fixedpoint.FloatToDecay(v)
		if !ok {
			t.Fatalf("%v was rejected", v)
		}
		back := fixedpoint.DecayToFloat(packed)
		if back > v || v-back >= epsilon {
			t.Errorf("%v → 0x%08x → %v  difference too large", v, packed, back)
		}
	}
}
