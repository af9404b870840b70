// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/blockstack/blockstore/mutable"
	"github.com/blockstack/blockstore/storage"
	"github.com/blockstack/blockstore/zonefile"
)

const databaseFileName = "test.leveldb"

func removeFiles() {
	os.RemoveAll(databaseFileName)
}

func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

// close and open the same database again
func reopen(t *testing.T, readOnly bool) {
	storage.Finalise()
	err := storage.Initialise(databaseFileName, readOnly)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
}

// the encoded zonefile of a profile routed to a single url
func zonefileRecord(t *testing.T, name string) []byte {
	r, err := zonefile.URLToURIRecord("https://example.com/"+name+"/profile.json", "")
	if nil != err {
		t.Fatalf("uri record error: %s", err)
	}
	zf := zonefile.Zonefile{
		Origin: name,
		TTL:    zonefile.DefaultTTL,
		URI:    []zonefile.URIRecord{r},
	}
	b, err := json.Marshal(zf)
	if nil != err {
		t.Fatalf("zonefile encode error: %s", err)
	}
	return b
}

// the encoded data info holding one version of a data id
func dataInfoRecord(t *testing.T, dataId string, version uint64) []byte {
	links, err := mutable.MakeLinks(dataId, []string{"https://example.com/" + dataId})
	if nil != err {
		t.Fatalf("links error: %s", err)
	}
	info := mutable.NewDataInfo()
	info.Data[mutable.Key{DataId: dataId, Version: version}] = links
	b, err := json.Marshal(info)
	if nil != err {
		t.Fatalf("data info encode error: %s", err)
	}
	return b
}

func decodeZonefile(t *testing.T, b []byte) *zonefile.Zonefile {
	var zf zonefile.Zonefile
	err := json.Unmarshal(b, &zf)
	if nil != err {
		t.Fatalf("zonefile decode error: %s", err)
	}
	return &zf
}

// profile names in key order
var profileNames = []string{
	"alice.id",
	"bob.id",
	"carol.id",
	"dave.id",
	"erin.id",
}
