// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/txoutput"
)

// flags shared by several commands
var (
	dataIdFlag = cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*data `ID`",
	}
	hashFlag = cli.StringFlag{
		Name:  "hash, H",
		Value: "",
		Usage: "*data `HASH` (64 hex digits)",
	}
	urlFlag = cli.StringFlag{
		Name:  "url, u",
		Value: "",
		Usage: "*profile `URL`",
	}
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfig
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// profile name is required
func checkName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if "" == name {
		return "", ErrRequiredName
	}
	return name, nil
}

// check for a non-blank value
func checkRequired(value string, err error) (string, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return "", err
	}
	return value, nil
}

// a cost must be given, zero is a valid cost
func checkCost(c *cli.Context) (uint64, error) {
	if !c.IsSet("cost") {
		return 0, ErrRequiredCost
	}
	return c.Uint64("cost"), nil
}

// hex data is required
func checkHex(value string, err error) ([]byte, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return nil, err
	}
	return hex.DecodeString(value)
}

// inputs are a JSON array given directly or as @file
func checkInputs(value string) ([]txoutput.Input, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return nil, ErrRequiredInputs
	}

	data := []byte(value)
	if strings.HasPrefix(value, "@") {
		var err error
		data, err = ioutil.ReadFile(value[1:])
		if nil != err {
			return nil, err
		}
	}

	var inputs []txoutput.Input
	err := json.Unmarshal(data, &inputs)
	if nil != err {
		return nil, err
	}
	if 0 == len(inputs) {
		return nil, ErrRequiredInputs
	}
	return inputs, nil
}
