// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/txoutput"
)

type outputsResult struct {
	TotalRequired uint64                                `json:"total_required"`
	Outputs       [txoutput.OutputCount]txoutput.Output `json:"outputs"`
}

func runOutputs(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkHex(c.String("data"), ErrRequiredData)
	if nil != err {
		return err
	}

	inputs, err := checkInputs(c.String("inputs"))
	if nil != err {
		return err
	}

	revealAddress, err := checkRequired(c.String("reveal"), ErrRequiredAddress)
	if nil != err {
		return err
	}

	changeAddress, err := checkRequired(c.String("change"), ErrRequiredAddress)
	if nil != err {
		return err
	}

	m.verbosef("inputs: %d\n", len(inputs))
	m.verbosef("fees: data carrier: %d  dust: %d\n", m.config.Fees.DataCarrier, m.config.Fees.Dust)

	outputs, err := m.shaper.MakeOutputs(data, inputs, revealAddress, changeAddress)
	if nil != err {
		return err
	}

	result := outputsResult{
		TotalRequired: txoutput.TotalRequired(m.config.Fees, len(inputs)),
		Outputs:       outputs,
	}
	return printJson(m.w, result)
}
