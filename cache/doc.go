// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache maintains the memory data store
//
//  ***** Data Structure *****
//
//  Pool              Key               Value                   ExpiresAfter
//  |___ Zonefiles    profile name      *zonefile.Zonefile      1h
//  |___ DataInfo     profile name      *mutable.DataInfo       1h
//
//  ***** Purpose *****
//
//  Zonefiles & DataInfo:
//    read-through copies of the records held in storage, any write
//    or delete of a record must delete its cache entry
package cache
