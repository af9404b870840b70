// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/mutable"
)

type mutableResult struct {
	DataId  string   `json:"data_id"`
	Key     string   `json:"key"`
	Version uint64   `json:"version"`
	URLs    []string `json:"urls,omitempty"`
}

type versionResult struct {
	DataId  string `json:"data_id"`
	Version uint64 `json:"version"`
}

func runMutablePut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	dataId, err := checkRequired(c.String("id"), ErrRequiredDataId)
	if nil != err {
		return err
	}
	urls := c.StringSlice("url")
	if 0 == len(urls) {
		return ErrRequiredURL
	}

	info, err := m.store.LoadDataInfo(name)
	if nil != err {
		return err
	}

	version := c.Uint64("version")
	if 0 == version {
		version = m.mutable.Version(info, dataId) + 1
	}

	links, err := mutable.MakeLinks(dataId, urls)
	if nil != err {
		return err
	}

	err = m.mutable.Put(info, dataId, version, links)
	if nil != err {
		return err
	}

	err = m.store.StoreDataInfo(name, info)
	if nil != err {
		return err
	}

	key := mutable.Key{DataId: dataId, Version: version}
	m.verbosef("key: %s\n", key)

	result := mutableResult{
		DataId:  dataId,
		Key:     key.Pack(),
		Version: version,
		URLs:    links.URLs(),
	}
	return printJson(m.w, result)
}

func runMutableGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	dataId, err := checkRequired(c.String("id"), ErrRequiredDataId)
	if nil != err {
		return err
	}

	info, err := m.store.LoadDataInfo(name)
	if nil != err {
		return err
	}

	links, key, ok := m.mutable.GetEx(info, dataId)
	if !ok {
		return ErrDataNotFound
	}

	result := mutableResult{
		DataId:  dataId,
		Key:     key.Pack(),
		Version: key.Version,
		URLs:    links.URLs(),
	}
	return printJson(m.w, result)
}

func runMutableRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	dataId, err := checkRequired(c.String("id"), ErrRequiredDataId)
	if nil != err {
		return err
	}

	info, err := m.store.LoadDataInfo(name)
	if nil != err {
		return err
	}

	removed := m.mutable.Remove(info, dataId)
	if removed {
		err = m.store.StoreDataInfo(name, info)
		if nil != err {
			return err
		}
	}
	return printJson(m.w, removedResult{Removed: removed})
}

func runMutableList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}

	info, err := m.store.LoadDataInfo(name)
	if nil != err {
		return err
	}

	keys := m.mutable.List(info)
	result := make([]versionResult, 0, len(keys))
	for _, k := range keys {
		result = append(result, versionResult{DataId: k.DataId, Version: k.Version})
	}
	return printJson(m.w, result)
}

func runMutableVersion(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	dataId, err := checkRequired(c.String("id"), ErrRequiredDataId)
	if nil != err {
		return err
	}

	info, err := m.store.LoadDataInfo(name)
	if nil != err {
		return err
	}

	result := versionResult{
		DataId:  dataId,
		Version: m.mutable.Version(info, dataId),
	}
	return printJson(m.w, result)
}
