// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mutable - versioned routing records for mutable data
//
// a user's data info maps each mutable datum to the URI records
// where it can be fetched; in JSON the map key packs the data id and
// its version:
//
//   mutable:<base64(data id)>:<decimal version>
//
// in memory the key is a Key value and only one version of each data
// id is live: a put must carry a strictly higher version and replaces
// the previous entry
package mutable
