// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/blockstack/blockstore/fault"
)

// command errors - keep in alphabetic order
const (
	ErrDataNotFound      = fault.NotFoundError("data id not found")
	ErrRequiredAddress   = fault.InvalidError("address is required")
	ErrRequiredConfig    = fault.InvalidError("config file is required")
	ErrRequiredCost      = fault.InvalidError("cost is required")
	ErrRequiredData      = fault.InvalidError("data is required")
	ErrRequiredDataId    = fault.InvalidError("data id is required")
	ErrRequiredFileName  = fault.InvalidError("file name is required")
	ErrRequiredHash      = fault.InvalidError("hash is required")
	ErrRequiredInputs    = fault.InvalidError("inputs are required")
	ErrRequiredName      = fault.InvalidError("profile name is required")
	ErrRequiredNamespace = fault.InvalidError("namespace id is required")
	ErrRequiredPublicKey = fault.InvalidError("public key is required")
	ErrRequiredSender    = fault.InvalidError("sender script is required")
	ErrRequiredURL       = fault.InvalidError("url is required")
	ErrRulesVersion      = fault.RangeError("rules version out of range")
	ErrWrongOpcode       = fault.InvalidError("data carrier is not a namespace reveal")
)
