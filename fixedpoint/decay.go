// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixedpoint - the namespace price decay rate on the wire
//
// A decay rate is packed into 32 bits:
//   upper  8 bits: integer part (0..255)
//   lower 24 bits: fraction in units of 1/2^24
package fixedpoint

import (
	"math"
)

// layout of the packed value
const (
	FractionBits = 24
	fractionMask = 1<<FractionBits - 1
	maxInteger   = 255
)

// DecayToFloat - unpack a fixed point decay rate
func DecayToFloat(fixedpoint uint32) float64 {
	integer := fixedpoint >> FractionBits
	fraction := fixedpoint & fractionMask
	return float64(integer) + float64(fraction)/float64(1<<FractionBits)
}

// FloatToDecay - pack a decay rate
//
// the fraction is truncated towards zero, not rounded; false is
// returned for negative values, NaN or an integer part above 255
func FloatToDecay(value float64) (uint32, bool) {
	if math.IsNaN(value) || value < 0 {
		return 0, false
	}

	integer := math.Floor(value)
	if integer > maxInteger {
		return 0, false
	}

	fraction := uint32((value - integer) * float64(1<<FractionBits))
	return uint32(integer)<<FractionBits | fraction, true
}
