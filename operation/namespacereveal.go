// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/blockstack/blockstore/b40"
	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/fixedpoint"
	"github.com/blockstack/blockstore/hashing"
	"github.com/blockstack/blockstore/util"
)

// byte sizes for various fields
const (
	MaxNamespaceIdLength = 19

	lifetimeLength = 4
	costLength     = 7
	decayLength    = 4
	versionLength  = 2

	// NamespaceRevealHeaderLength - fixed fields before the namespace id
	NamespaceRevealHeaderLength = lifetimeLength + costLength + decayLength + versionLength
)

// limits
const (
	NamespaceLifeInfinite = 0xffffffff
	MaxSatoshiCost        = 1<<(8*costLength) - 1

	// BlockstoreVersion - current rules version
	BlockstoreVersion = 1
)

// NamespaceReveal - the unpacked namespace reveal structure
//
// wire layout:
//
//   0         4            11         15        17            36
//   |---------|------------|----------|---------|-------------|
//   lifetime   cost         decay      version   namespace id
type NamespaceReveal struct {
	NamespaceId     string  `json:"namespace_id"`      // base-38
	Version         uint16  `json:"version"`           // rules version
	RevealAddress   string  `json:"reveal_address"`    // receives the namespace until ready
	Lifetime        uint32  `json:"lifetime"`          // blocks, 0xffffffff = infinite
	Cost            uint64  `json:"cost"`              // satoshis for a one character name
	PriceDecay      float64 `json:"price_decay"`       // price divisor per extra character
	NamespaceIdHash string  `json:"namespace_id_hash"` // only set by parse
}

// BuildNamespaceReveal - validate the namespace rules and pack them
//
// validation order: namespace id characters, namespace id length,
// decay rate, then cost; a lifetime outside 0..2^32-1 is taken as
// infinite rather than rejected
func BuildNamespaceReveal(namespaceId string, version uint16, revealAddress string, lifetime int64, satoshiCost uint64, priceDecayRate float64) (Packed, error) {

	if !b40.IsB38(namespaceId) {
		return nil, fault.ErrNamespaceIdCharacters
	}
	if len(namespaceId) < 1 || len(namespaceId) > MaxNamespaceIdLength {
		return nil, fault.ErrNamespaceIdLength
	}

	decay, ok := fixedpoint.FloatToDecay(priceDecayRate)
	if !ok {
		return nil, fault.ErrInvalidDecayRate
	}

	if lifetime < 0 || lifetime > NamespaceLifeInfinite {
		lifetime = NamespaceLifeInfinite
	}

	if satoshiCost > MaxSatoshiCost {
		return nil, fault.ErrCostOutOfRange
	}

	// concatenate bytes
	message := make(Packed, 0, NamespaceRevealHeaderLength+len(namespaceId))
	message, err := appendField(message, uint64(lifetime), lifetimeLength, fault.ErrFieldOverflow)
	if nil != err {
		return nil, err
	}
	message, err = appendField(message, satoshiCost, costLength, fault.ErrCostOutOfRange)
	if nil != err {
		return nil, err
	}
	message, err = appendField(message, uint64(decay), decayLength, fault.ErrDecayOutOfRange)
	if nil != err {
		return nil, err
	}
	message, err = appendField(message, uint64(version), versionLength, fault.ErrFieldOverflow)
	if nil != err {
		return nil, err
	}
	return append(message, namespaceId...), nil
}

// Pack - pack the rules held in the structure
func (reveal *NamespaceReveal) Pack() (Packed, error) {
	return BuildNamespaceReveal(
		reveal.NamespaceId,
		reveal.Version,
		reveal.RevealAddress,
		int64(reveal.Lifetime),
		reveal.Cost,
		reveal.PriceDecay,
	)
}

// ParseNamespaceReveal - unpack a payload (magic bytes and opcode
// already removed)
//
// the namespace id is the remainder of the payload and its characters
// are not validated since the record is already on the chain; the
// commitment hash is computed from the namespace id, the sender's
// script and the recipient address
func ParseNamespaceReveal(payload []byte, sender string, recipientAddress string, hasher hashing.NameHasher) (r *NamespaceReveal, e error) {

	defer func() {
		if rec := recover(); nil != rec {
			r = nil
			e = fault.ErrTruncatedPayload
		}
	}()

	if len(payload) < NamespaceRevealHeaderLength {
		return nil, fault.ErrTruncatedPayload
	}
	if nil == hasher {
		hasher = hashing.Hash160Hasher{}
	}

	c := util.NewCursor(payload)

	lifetime, err := c.Uint(lifetimeLength)
	if nil != err {
		return nil, err
	}
	cost, err := c.Uint(costLength)
	if nil != err {
		return nil, err
	}
	decay, err := c.Uint(decayLength)
	if nil != err {
		return nil, err
	}
	version, err := c.Uint(versionLength)
	if nil != err {
		return nil, err
	}

	namespaceId := make([]byte, len(payload)-c.Offset())
	copy(namespaceId, c.Remainder())

	namespaceIdHash, err := hasher.HashName(namespaceId, sender, recipientAddress)
	if nil != err {
		return nil, err
	}

	reveal := &NamespaceReveal{
		NamespaceId:     string(namespaceId),
		Version:         uint16(version),
		RevealAddress:   recipientAddress,
		Lifetime:        uint32(lifetime),
		Cost:            cost,
		PriceDecay:      fixedpoint.DecayToFloat(uint32(decay)),
		NamespaceIdHash: namespaceIdHash,
	}
	return reveal, nil
}

// append a fixed width field, reporting overflow as the field's error
func appendField(buffer Packed, value uint64, width int, overflow error) (Packed, error) {
	b, err := util.AppendFixed(buffer, value, width)
	if fault.ErrFieldOverflow == err {
		return nil, overflow
	}
	if nil != err {
		return nil, err
	}
	return b, nil
}
