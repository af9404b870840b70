// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/hashing"
	"github.com/blockstack/blockstore/opcode"
	"github.com/blockstack/blockstore/operation"
)

type revealResult struct {
	Testset     bool                       `json:"testset"`
	Reveal      *operation.NamespaceReveal `json:"reveal"`
	Payload     operation.Packed           `json:"payload"`
	DataCarrier operation.Packed           `json:"data_carrier"`
}

func runReveal(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	namespaceId, err := checkRequired(c.String("namespace"), ErrRequiredNamespace)
	if nil != err {
		return err
	}

	cost, err := checkCost(c)
	if nil != err {
		return err
	}

	rules := c.Uint("rules")
	if rules > math.MaxUint16 {
		return ErrRulesVersion
	}

	lifetime := c.Int64("lifetime")
	decay := c.Float64("decay")
	address := c.String("address")

	m.verbosef("namespace: %s\n", namespaceId)
	m.verbosef("lifetime: %d\n", lifetime)
	m.verbosef("cost: %d\n", cost)
	m.verbosef("decay: %f\n", decay)

	payload, err := operation.BuildNamespaceReveal(namespaceId, uint16(rules), address, lifetime, cost, decay)
	if nil != err {
		return err
	}

	// decode again for the stored field values
	reveal, err := operation.ParseNamespaceReveal(payload, "", address, hashing.Hash160Hasher{})
	if nil != err {
		return err
	}
	reveal.NamespaceIdHash = ""

	result := revealResult{
		Testset:     m.testset,
		Reveal:      reveal,
		Payload:     payload,
		DataCarrier: operation.Packed(payload.Frame(opcode.NamespaceReveal, m.testset)),
	}
	return printJson(m.w, result)
}
