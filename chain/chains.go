// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/blockstack/blockstore/fault"
)

// names of all chains
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Regtest = "regtest"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Regtest:
		return true
	default:
		return false
	}
}

// IsTestset - chains whose operations carry the testset magic bytes
func IsTestset(name string) bool {
	switch name {
	case Testnet, Regtest:
		return true
	default:
		return false
	}
}

// Params - bitcoin address and network parameters for a chain
func Params(name string) (*chaincfg.Params, error) {
	switch name {
	case Mainnet:
		return &chaincfg.MainNetParams, nil
	case Testnet:
		return &chaincfg.TestNet3Params, nil
	case Regtest:
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fault.ErrInvalidChain
	}
}
