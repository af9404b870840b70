// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. name         = profile name as UTF-8 bytes
//
// Zonefiles:
//
//   Z ++ name                  - user zonefile
//                                data: zonefile JSON
//
// Mutable data:
//
//   M ++ name                  - user data info
//                                data: data info JSON (packed mutable keys)
//
// Version:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32
package storage
