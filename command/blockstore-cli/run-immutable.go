// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/zonefile"
)

type immutableResult struct {
	DataId string             `json:"data_id"`
	Hash   zonefile.HashMatch `json:"hash"`
	URL    string             `json:"url,omitempty"`
}

type removedResult struct {
	Removed bool `json:"removed"`
}

func runImmutablePut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	dataId, err := checkRequired(c.String("id"), ErrRequiredDataId)
	if nil != err {
		return err
	}
	hash, err := checkRequired(c.String("hash"), ErrRequiredHash)
	if nil != err {
		return err
	}
	url := c.String("url")

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	err = m.immutable.PutImmutable(zf, dataId, hash, url)
	if nil != err {
		return err
	}

	err = m.store.StoreZonefile(name, zf)
	if nil != err {
		return err
	}

	return printJson(m.w, zonefile.Immutable{DataId: dataId, Hash: hash})
}

func runImmutableGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	dataId, err := checkRequired(c.String("id"), ErrRequiredDataId)
	if nil != err {
		return err
	}

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	match, err := m.immutable.GetImmutableHash(zf, dataId)
	if nil != err {
		return err
	}

	result := immutableResult{
		DataId: dataId,
		Hash:   match,
	}
	if hash, ok := match.Hash(); ok {
		url, _, err := m.immutable.GetImmutableURL(zf, hash)
		if nil != err {
			return err
		}
		result.URL = url
	}
	return printJson(m.w, result)
}

func runImmutableRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	hash, err := checkRequired(c.String("hash"), ErrRequiredHash)
	if nil != err {
		return err
	}

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	removed, err := m.immutable.RemoveImmutable(zf, hash)
	if nil != err {
		return err
	}
	if removed {
		err = m.store.StoreZonefile(name, zf)
		if nil != err {
			return err
		}
	}
	return printJson(m.w, removedResult{Removed: removed})
}

func runImmutableList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	list, err := m.immutable.ListImmutable(zf)
	if nil != err {
		return err
	}
	return printJson(m.w, list)
}
