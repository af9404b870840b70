// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txoutput - shape the outputs of an operation transaction
//
// every operation transaction carries exactly three outputs in a
// fixed order:
//
//   [0] data carrier (OP_RETURN) holding the framed operation payload
//   [1] pay-to-address of a dust amount to the operation's recipient
//   [2] change back to the sender
//
// script construction and change arithmetic are collaborators so
// that the shaping can be tested without a real chain
package txoutput
