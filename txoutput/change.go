// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txoutput

import (
	"github.com/blockstack/blockstore/fault"
)

// Input - an unspent output being consumed
type Input struct {
	TxId      string `json:"txid"`
	Vout      uint32 `json:"vout"`
	Value     uint64 `json:"value"`
	ScriptHex string `json:"script_hex"`
}

// ChangeCalculator - amount to return to the sender
type ChangeCalculator interface {
	Change(inputs []Input, sendAmount uint64, fee uint64) (uint64, error)
}

// InputChange - change is whatever the inputs hold beyond the send
// amount and the fee
type InputChange struct{}

// Change - implements ChangeCalculator
func (InputChange) Change(inputs []Input, sendAmount uint64, fee uint64) (uint64, error) {
	total := uint64(0)
	for _, in := range inputs {
		if total+in.Value < total {
			return 0, fault.ErrFieldOverflow
		}
		total += in.Value
	}

	required := sendAmount + fee
	if required < sendAmount || total < required {
		return 0, fault.ErrInsufficientInputs
	}
	return total - required, nil
}
