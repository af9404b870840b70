// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/hashing"
	"github.com/blockstack/blockstore/opcode"
	"github.com/blockstack/blockstore/operation"
)

type parseResult struct {
	Testset bool                       `json:"testset"`
	Opcode  string                     `json:"opcode"`
	Reveal  *operation.NamespaceReveal `json:"reveal"`
}

func runParse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkHex(c.String("data"), ErrRequiredData)
	if nil != err {
		return err
	}

	sender, err := checkRequired(c.String("sender"), ErrRequiredSender)
	if nil != err {
		return err
	}

	recipient, err := checkRequired(c.String("recipient"), ErrRequiredAddress)
	if nil != err {
		return err
	}

	testset, op, payload, err := opcode.Split(data)
	if nil != err {
		return err
	}
	if opcode.NamespaceReveal != op {
		return ErrWrongOpcode
	}
	if testset != m.testset {
		m.log.Warnf("data carrier testset: %t  chain: %s", testset, m.config.Chain)
		m.verbosef("warning: data carrier is for a different set of names\n")
	}

	reveal, err := operation.ParseNamespaceReveal(payload, sender, recipient, hashing.Hash160Hasher{})
	if nil != err {
		return err
	}

	result := parseResult{
		Testset: testset,
		Opcode:  op.String(),
		Reveal:  reveal,
	}
	return printJson(m.w, result)
}
