// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package profile - persistent zonefiles and mutable data info for
// each registered name
//
// records are JSON in the storage pools and reads go through the
// in-memory cache, any write or delete drops the cached copy
package profile
