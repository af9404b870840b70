// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txoutput

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcutil"

	"github.com/blockstack/blockstore/fault"
)

// ScriptEncoder - produce output scripts
type ScriptEncoder interface {
	DataCarrier(payload []byte) ([]byte, error)
	PayToAddress(address string) ([]byte, error)
}

// BitcoinEncoder - standard scripts for a particular network
type BitcoinEncoder struct {
	params *chaincfg.Params
}

// NewBitcoinEncoder - encoder for addresses of the given network
func NewBitcoinEncoder(params *chaincfg.Params) *BitcoinEncoder {
	if nil == params {
		params = &chaincfg.MainNetParams
	}
	return &BitcoinEncoder{
		params: params,
	}
}

// DataCarrier - OP_RETURN script with a single data push
func (e *BitcoinEncoder) DataCarrier(payload []byte) ([]byte, error) {
	if len(payload) > txscript.MaxDataCarrierSize {
		return nil, fault.ErrPayloadTooLarge
	}
	return txscript.NullDataScript(payload)
}

// PayToAddress - pay-to-pubkey-hash or pay-to-script-hash script
//
// the address must belong to the encoder's network
func (e *BitcoinEncoder) PayToAddress(address string) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, e.params)
	if nil != err {
		return nil, fault.ErrInvalidAddress
	}
	if !addr.IsForNet(e.params) {
		return nil, fault.ErrInvalidAddress
	}
	return txscript.PayToAddrScript(addr)
}

// Script - output script with a hex JSON form
type Script []byte

// MarshalText - convert a script to its hex JSON form
func (script Script) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(script))
	b := make([]byte, size)
	hex.Encode(b, script)
	return b, nil
}

// UnmarshalText - convert a script from its hex JSON form
func (script *Script) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	buffer := make([]byte, size)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidScript
	}
	*script = buffer
	return nil
}
