// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zonefile - user zonefiles and the immutable data records
// held in their TXT records
//
// a user zonefile routes to the user's profile through URI records
// and carries auxiliary data in TXT records:
//
//   name          txt
//   ------------  -------------------------------------
//   <data id>     [<url hint>]#<content hash>
//   pubkey        pubkey:data:<hex public key>
//
// the content hash of an immutable record follows the last '#' so
// that url hints may themselves contain '#'
package zonefile
