// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zonefile_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/zonefile"
)

func hashOf(c byte) string {
	return strings.Repeat(string(c), 64)
}

func newRegistry() *zonefile.Registry {
	return zonefile.NewRegistry(logger.New(logCategory), nil)
}

func TestPutImmutable(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := newRegistry()
	zf := newUserZonefile()

	h1 := hashOf('1')
	h2 := hashOf('2')

	err := r.PutImmutable(zf, "a", h1, "")
	assert.Nil(t, err, "first put")

	err = r.PutImmutable(zf, "a", h1, "https://other.com/a")
	assert.Nil(t, err, "same hash")
	assert.Equal(t, 1, len(zf.TXT), "idempotent put must not add")

	err = r.PutImmutable(zf, "a", h2, "")
	assert.Equal(t, fault.ErrHashMismatch, err, "different hash")

	match, err := r.GetImmutableHash(zf, "a")
	assert.Nil(t, err, "get error")
	hash, ok := match.Hash()
	assert.True(t, ok, "single match")
	assert.Equal(t, h1, hash, "stored hash remains")

	err = r.PutImmutable(zf, "b", h2, "https://b.com/data#x")
	assert.Nil(t, err, "put with url")
	assert.Equal(t, zonefile.TXTRecord{Name: "b", Txt: "https://b.com/data#x#" + h2}, zf.TXT[1], "record")

	err = r.PutImmutable(zf, "c", "not-a-hash", "")
	assert.Equal(t, fault.ErrInvalidHashFormat, err, "invalid hash")

	err = r.PutImmutable(&zonefile.Zonefile{}, "c", h1, "")
	assert.Equal(t, fault.ErrNotUserZonefile, err, "not user zonefile")
}

func TestPutImmutableSurroundingSpace(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := newRegistry()
	zf := newUserZonefile()

	h := hashOf('3')

	err := r.PutImmutable(zf, "a", " "+h, "")
	assert.Equal(t, fault.ErrInvalidHashFormat, err, "leading space")
	err = r.PutImmutable(zf, "a", h+"\n", "")
	assert.Equal(t, fault.ErrInvalidHashFormat, err, "trailing newline")
	assert.Equal(t, 0, len(zf.TXT), "nothing added")

	err = r.PutImmutable(zf, "a", h, "")
	assert.Nil(t, err, "put")
	ok, err := r.HasImmutable(zf, h)
	assert.Nil(t, err, "has error")
	assert.True(t, ok, "stored hash found")
}

func TestPutImmutableMultiple(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := newRegistry()
	zf := newUserZonefile()
	zf.TXT = []zonefile.TXTRecord{
		{Name: "a", Txt: "#" + hashOf('1')},
		{Name: "a", Txt: "#" + hashOf('2')},
	}

	match, err := r.GetImmutableHash(zf, "a")
	assert.Nil(t, err, "get error")
	assert.Equal(t, zonefile.MultipleMatch, match.Kind, "kind")
	assert.Equal(t, []string{hashOf('1'), hashOf('2')}, match.Hashes, "hashes")
	_, ok := match.Hash()
	assert.False(t, ok, "no single hash")

	err = r.PutImmutable(zf, "a", hashOf('1'), "")
	assert.Equal(t, fault.ErrHashMismatch, err, "put over multiple")
	assert.Equal(t, 2, len(zf.TXT), "unchanged")
}

func TestGetImmutableHashNone(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := newRegistry()
	zf := newUserZonefile()
	zf.TXT = []zonefile.TXTRecord{
		{Name: "a", Txt: "#bad-hash"},
		{Name: "pubkey", Txt: "pubkey:data:00"},
	}

	match, err := r.GetImmutableHash(zf, "a")
	assert.Nil(t, err, "get error")
	assert.Equal(t, zonefile.NoMatch, match.Kind, "invalid record ignored")

	ok, err := r.HasImmutableId(zf, "a")
	assert.Nil(t, err, "has id error")
	assert.False(t, ok, "invalid record is not present")
}

func TestRemoveImmutable(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := newRegistry()
	zf := newUserZonefile()
	zf.TXT = []zonefile.TXTRecord{
		{Name: "pubkey", Txt: "pubkey:data:00"},
		{Name: "x", Txt: "#broken"},
		{Name: "a", Txt: "#" + hashOf('1')},
		{Name: "b", Txt: "#" + hashOf('2')},
		{Name: "c", Txt: "#" + hashOf('1')},
	}

	removed, err := r.RemoveImmutable(zf, hashOf('1'))
	assert.Nil(t, err, "remove error")
	assert.True(t, removed, "removed")

	expected := []zonefile.TXTRecord{
		{Name: "pubkey", Txt: "pubkey:data:00"},
		{Name: "x", Txt: "#broken"},
		{Name: "b", Txt: "#" + hashOf('2')},
		{Name: "c", Txt: "#" + hashOf('1')},
	}
	assert.Equal(t, expected, zf.TXT, "only the first match removed")

	removed, err = r.RemoveImmutable(zf, hashOf('1'))
	assert.Nil(t, err, "remove error")
	assert.True(t, removed, "second match removed")

	removed, err = r.RemoveImmutable(zf, hashOf('1'))
	assert.Nil(t, err, "remove error")
	assert.False(t, removed, "nothing left")

	_, err = r.RemoveImmutable(zf, "zz")
	assert.Equal(t, fault.ErrInvalidHashFormat, err, "invalid hash")
	assert.Equal(t, 3, len(zf.TXT), "remaining records")
}

func TestHasImmutable(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := newRegistry()
	zf := newUserZonefile()

	err := r.PutImmutable(zf, "a", hashOf('1'), "https://a.com")
	assert.Nil(t, err, "put error")

	ok, err := r.HasImmutable(zf, hashOf('1'))
	assert.Nil(t, err, "has error")
	assert.True(t, ok, "has hash")

	ok, err = r.HasImmutable(zf, hashOf('2'))
	assert.Nil(t, err, "has error")
	assert.False(t, ok, "missing hash")

	_, err = r.HasImmutable(zf, "bad")
	assert.Equal(t, fault.ErrInvalidHashFormat, err, "invalid hash")

	ok, err = r.HasImmutableId(zf, "a")
	assert.Nil(t, err, "has id error")
	assert.True(t, ok, "has id")

	ok, err = r.HasImmutableId(zf, "b")
	assert.Nil(t, err, "has id error")
	assert.False(t, ok, "missing id")
}

func TestGetImmutableURL(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := newRegistry()
	zf := newUserZonefile()

	_ = r.PutImmutable(zf, "a", hashOf('1'), "https://a.com/x#y")
	_ = r.PutImmutable(zf, "b", hashOf('2'), "")

	u, ok, err := r.GetImmutableURL(zf, hashOf('1'))
	assert.Nil(t, err, "url error")
	assert.True(t, ok, "has url")
	assert.Equal(t, "https://a.com/x#y", u, "url")

	_, ok, err = r.GetImmutableURL(zf, hashOf('2'))
	assert.Nil(t, err, "url error")
	assert.False(t, ok, "no url hint")

	_, ok, err = r.GetImmutableURL(zf, hashOf('3'))
	assert.Nil(t, err, "url error")
	assert.False(t, ok, "no such hash")
}

func TestListImmutable(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	r := newRegistry()
	zf := newUserZonefile()
	zf.TXT = []zonefile.TXTRecord{
		{Name: "pubkey", Txt: "pubkey:data:00"},
		{Name: "a", Txt: "u#" + hashOf('1')},
		{Name: "x", Txt: "#short"},
		{Name: "b", Txt: "#" + hashOf('2')},
	}

	list, err := r.ListImmutable(zf)
	assert.Nil(t, err, "list error")

	expected := []zonefile.Immutable{
		{DataId: "a", Hash: hashOf('1')},
		{DataId: "b", Hash: hashOf('2')},
	}
	assert.Equal(t, expected, list, "list")

	_, err = r.ListImmutable(nil)
	assert.Equal(t, fault.ErrNotUserZonefile, err, "nil zonefile")
}

func TestRegistryValidator(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	calls := 0
	valid := func(s string) bool {
		calls += 1
		return strings.HasPrefix(s, "h-")
	}
	r := zonefile.NewRegistry(logger.New(logCategory), valid)
	zf := newUserZonefile()

	err := r.PutImmutable(zf, "a", "h-1", "")
	assert.Nil(t, err, "custom hash accepted")

	err = r.PutImmutable(zf, "b", hashOf('1'), "")
	assert.Equal(t, fault.ErrInvalidHashFormat, err, "standard hash rejected")

	ok, err := r.HasImmutable(zf, "h-1")
	assert.Nil(t, err, "has error")
	assert.True(t, ok, "has custom hash")
	assert.True(t, calls > 0, "validator used")
}

func TestHashMatchJSON(t *testing.T) {
	tests := []struct {
		match    zonefile.HashMatch
		expected string
	}{
		{zonefile.HashMatch{Kind: zonefile.NoMatch}, `null`},
		{zonefile.HashMatch{Kind: zonefile.SingleMatch, Hashes: []string{"a"}}, `"a"`},
		{zonefile.HashMatch{Kind: zonefile.MultipleMatch, Hashes: []string{"a", "b"}}, `["a","b"]`},
	}

	for i, item := range tests {
		b, err := json.Marshal(item.match)
		if nil != err {
			t.Fatalf("%d: marshal error: %s", i, err)
		}
		if item.expected != string(b) {
			t.Errorf("%d: json: %s  expected: %s", i, b, item.expected)
		}
	}
}
