// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package profile_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/blockstack/blockstore/cache"
	"github.com/blockstack/blockstore/profile"
	"github.com/blockstack/blockstore/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = "testing/profile.leveldb"
	logCategory      = "profile"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// open storage and cache and return a store over them
func setup(t *testing.T) *profile.Store {
	setupTestLogger()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = cache.Initialise(0)
	if nil != err {
		t.Fatalf("cache initialise error: %s", err)
	}

	return profile.New(
		logger.New(logCategory),
		storage.Pool.Zonefiles,
		storage.Pool.DataInfo,
		cache.Pool.Zonefiles,
		cache.Pool.DataInfo,
	)
}

func teardown(t *testing.T) {
	_ = cache.Finalise()
	storage.Finalise()
	teardownTestLogger()
}
