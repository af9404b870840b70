// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txoutput_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/txoutput"
	"github.com/blockstack/blockstore/txoutput/mocks"
)

const (
	// genesis block coinbase address
	genesisAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	genesisScript  = "76a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac"
)

func TestTotalRequired(t *testing.T) {
	tests := []struct {
		inputs   int
		expected uint64
	}{
		{0, 25500},
		{1, 31000},
		{2, 36500},
		{10, 80500},
	}

	for i, item := range tests {
		actual := txoutput.TotalRequired(txoutput.DefaultFees, item.inputs)
		if item.expected != actual {
			t.Errorf("%d: total: %d  expected: %d", i, actual, item.expected)
		}
	}
}

func TestMakeOutputs(t *testing.T) {
	shaper := txoutput.NewShaper(txoutput.DefaultFees, txoutput.NewBitcoinEncoder(&chaincfg.MainNetParams), nil)

	inputs := []txoutput.Input{
		{TxId: "aa", Vout: 0, Value: 100000},
		{TxId: "bb", Vout: 1, Value: 50000},
	}
	outputs, err := shaper.MakeOutputs([]byte("id&abc"), inputs, genesisAddress, genesisAddress)
	if nil != err {
		t.Fatalf("make outputs error: %s", err)
	}

	assert.Equal(t, "6a06"+hex.EncodeToString([]byte("id&abc")), hex.EncodeToString(outputs[0].Script), "data carrier script")
	assert.Equal(t, uint64(txoutput.DefaultDataCarrierFee), outputs[0].Value, "data carrier value")

	assert.Equal(t, genesisScript, hex.EncodeToString(outputs[1].Script), "reveal script")
	assert.Equal(t, uint64(txoutput.DefaultDustFee), outputs[1].Value, "dust value")

	assert.Equal(t, genesisScript, hex.EncodeToString(outputs[2].Script), "change script")
	assert.Equal(t, uint64(150000-(2*10000+5500*3)), outputs[2].Value, "change value")
}

func TestMakeOutputsExactAndShort(t *testing.T) {
	shaper := txoutput.NewShaper(txoutput.DefaultFees, txoutput.NewBitcoinEncoder(nil), txoutput.InputChange{})

	inputs := []txoutput.Input{{Value: 31000}}
	outputs, err := shaper.MakeOutputs([]byte("id&"), inputs, genesisAddress, genesisAddress)
	assert.Nil(t, err, "exact inputs")
	assert.Equal(t, uint64(0), outputs[txoutput.ChangeIndex].Value, "change")

	inputs[0].Value -= 1
	_, err = shaper.MakeOutputs([]byte("id&"), inputs, genesisAddress, genesisAddress)
	assert.Equal(t, fault.ErrInsufficientInputs, err, "short inputs")

	_, err = shaper.MakeOutputs([]byte("id&"), nil, genesisAddress, genesisAddress)
	assert.Equal(t, fault.ErrInsufficientInputs, err, "no inputs")
}

func TestMakeOutputsCollaborators(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	encoder := mocks.NewMockScriptEncoder(ctl)
	calculator := mocks.NewMockChangeCalculator(ctl)

	payload := []byte("id&payload")
	inputs := []txoutput.Input{{Value: 1}, {Value: 2}, {Value: 3}}

	gomock.InOrder(
		encoder.EXPECT().DataCarrier(payload).Return([]byte{0x6a}, nil),
		encoder.EXPECT().PayToAddress("reveal").Return([]byte{0x01}, nil),
		encoder.EXPECT().PayToAddress("change").Return([]byte{0x02}, nil),
		calculator.EXPECT().Change(inputs, uint64(100+7*4), uint64(100)).Return(uint64(12345), nil),
	)

	shaper := txoutput.NewShaper(txoutput.Fees{DataCarrier: 100, Dust: 7}, encoder, calculator)
	outputs, err := shaper.MakeOutputs(payload, inputs, "reveal", "change")
	assert.Nil(t, err, "make outputs error")

	expected := [txoutput.OutputCount]txoutput.Output{
		{Script: txoutput.Script{0x6a}, Value: 100},
		{Script: txoutput.Script{0x01}, Value: 7},
		{Script: txoutput.Script{0x02}, Value: 12345},
	}
	assert.Equal(t, expected, outputs, "outputs")
}

func TestMakeOutputsCalculatorError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	encoder := mocks.NewMockScriptEncoder(ctl)
	encoder.EXPECT().DataCarrier(gomock.Any()).Return([]byte{0x6a}, nil)
	encoder.EXPECT().PayToAddress(gomock.Any()).Return([]byte{0x01}, nil).Times(2)

	calculator := mocks.NewMockChangeCalculator(ctl)
	calculator.EXPECT().Change(gomock.Any(), gomock.Any(), gomock.Any()).Return(uint64(0), fault.ErrInsufficientInputs)

	shaper := txoutput.NewShaper(txoutput.DefaultFees, encoder, calculator)
	_, err := shaper.MakeOutputs([]byte("x"), nil, "r", "c")
	assert.Equal(t, fault.ErrInsufficientInputs, err, "wrong error")
}

func TestMakeOutputsEncoderError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// calculator must not be called
	calculator := mocks.NewMockChangeCalculator(ctl)

	encoder := mocks.NewMockScriptEncoder(ctl)
	encoder.EXPECT().DataCarrier(gomock.Any()).Return([]byte{0x6a}, nil)
	encoder.EXPECT().PayToAddress("bad").Return(nil, fault.ErrInvalidAddress)

	shaper := txoutput.NewShaper(txoutput.DefaultFees, encoder, calculator)
	_, err := shaper.MakeOutputs([]byte("x"), []txoutput.Input{{Value: 1000000}}, "bad", "c")
	assert.Equal(t, fault.ErrInvalidAddress, err, "wrong error")
}

func TestBitcoinEncoder(t *testing.T) {
	encoder := txoutput.NewBitcoinEncoder(&chaincfg.MainNetParams)

	_, err := encoder.DataCarrier(make([]byte, 81))
	assert.Equal(t, fault.ErrPayloadTooLarge, err, "large payload")

	script, err := encoder.DataCarrier(make([]byte, 80))
	assert.Nil(t, err, "maximum payload")
	assert.Equal(t, 83, len(script), "script length")

	_, err = encoder.PayToAddress("not-an-address")
	assert.Equal(t, fault.ErrInvalidAddress, err, "garbage address")

	testnet, err := btcutil.NewAddressPubKeyHash(make([]byte, 20), &chaincfg.TestNet3Params)
	assert.Nil(t, err, "testnet address")

	_, err = encoder.PayToAddress(testnet.EncodeAddress())
	assert.Equal(t, fault.ErrInvalidAddress, err, "wrong network")

	script, err = txoutput.NewBitcoinEncoder(&chaincfg.TestNet3Params).PayToAddress(testnet.EncodeAddress())
	assert.Nil(t, err, "testnet encoder")
	assert.Equal(t, "76a914"+hex.EncodeToString(make([]byte, 20))+"88ac", hex.EncodeToString(script), "testnet script")
}

func TestInputChange(t *testing.T) {
	tests := []struct {
		values []uint64
		send   uint64
		fee    uint64
		change uint64
		err    error
	}{
		{[]uint64{100}, 50, 10, 40, nil},
		{[]uint64{30, 30}, 50, 10, 0, nil},
		{[]uint64{30, 29}, 50, 10, 0, fault.ErrInsufficientInputs},
		{nil, 0, 0, 0, nil},
		{nil, 1, 0, 0, fault.ErrInsufficientInputs},
		{[]uint64{10}, 0xffffffffffffffff, 2, 0, fault.ErrInsufficientInputs},
		{[]uint64{0xffffffffffffffff, 1}, 0, 0, 0, fault.ErrFieldOverflow},
	}

	for i, item := range tests {
		inputs := make([]txoutput.Input, len(item.values))
		for j, v := range item.values {
			inputs[j].Value = v
		}
		change, err := txoutput.InputChange{}.Change(inputs, item.send, item.fee)
		if item.err != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, item.err)
		}
		if item.change != change {
			t.Errorf("%d: change: %d  expected: %d", i, change, item.change)
		}
	}
}

func TestOutputJSON(t *testing.T) {
	o := txoutput.Output{
		Script: txoutput.Script{0x6a, 0x01, 0xff},
		Value:  10000,
	}
	b, err := json.Marshal(o)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"script_hex":"6a01ff","value":10000}`, string(b), "json")

	var back txoutput.Output
	err = json.Unmarshal(b, &back)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, o, back, "round trip")

	err = json.Unmarshal([]byte(`{"script_hex":"zz","value":1}`), &back)
	assert.NotNil(t, err, "bad hex accepted")
}
