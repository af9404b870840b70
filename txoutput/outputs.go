// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txoutput

// default amounts in satoshis
const (
	DefaultDataCarrierFee = 10000
	DefaultDustFee        = 5500
)

// OutputCount - outputs in every operation transaction
const OutputCount = 3

// output positions
const (
	DataCarrierIndex = 0
	RecipientIndex   = 1
	ChangeIndex      = 2
)

// Fees - amounts attached to the fixed outputs
type Fees struct {
	DataCarrier uint64 `gluamapper:"data_carrier" json:"data_carrier"`
	Dust        uint64 `gluamapper:"dust" json:"dust"`
}

// DefaultFees - network defaults
var DefaultFees = Fees{
	DataCarrier: DefaultDataCarrierFee,
	Dust:        DefaultDustFee,
}

// Output - one transaction output
type Output struct {
	Script Script `json:"script_hex"`
	Value  uint64 `json:"value"`
}

// Shaper - build the outputs of an operation transaction
type Shaper struct {
	fees       Fees
	encoder    ScriptEncoder
	calculator ChangeCalculator
}

// NewShaper - create a shaper, a nil calculator means InputChange
func NewShaper(fees Fees, encoder ScriptEncoder, calculator ChangeCalculator) *Shaper {
	if nil == calculator {
		calculator = InputChange{}
	}
	return &Shaper{
		fees:       fees,
		encoder:    encoder,
		calculator: calculator,
	}
}

// TotalRequired - satoshis the inputs must cover before any change
func TotalRequired(fees Fees, inputCount int) uint64 {
	return 2*fees.DataCarrier + fees.Dust*uint64(1+inputCount)
}

// MakeOutputs - data carrier, recipient dust and change outputs
//
// payload is the complete data carrier content (magic bytes, opcode
// and operation payload); change is the input total less
// TotalRequired, an input shortfall is an error from the calculator
func (s *Shaper) MakeOutputs(payload []byte, inputs []Input, revealAddress string, changeAddress string) ([OutputCount]Output, error) {

	outputs := [OutputCount]Output{}

	dataScript, err := s.encoder.DataCarrier(payload)
	if nil != err {
		return outputs, err
	}
	revealScript, err := s.encoder.PayToAddress(revealAddress)
	if nil != err {
		return outputs, err
	}
	changeScript, err := s.encoder.PayToAddress(changeAddress)
	if nil != err {
		return outputs, err
	}

	send := s.fees.DataCarrier + s.fees.Dust*uint64(1+len(inputs))
	change, err := s.calculator.Change(inputs, send, s.fees.DataCarrier)
	if nil != err {
		return outputs, err
	}

	outputs[DataCarrierIndex] = Output{
		Script: dataScript,
		Value:  s.fees.DataCarrier,
	}
	outputs[RecipientIndex] = Output{
		Script: revealScript,
		Value:  s.fees.Dust,
	}
	outputs[ChangeIndex] = Output{
		Script: changeScript,
		Value:  change,
	}
	return outputs, nil
}
