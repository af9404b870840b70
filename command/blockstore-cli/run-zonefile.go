// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/zonefile"
)

func runZonefile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	text, err := zf.Text()
	if nil != err {
		return err
	}
	_, err = fmt.Fprint(m.w, text)
	return err
}

func runZonefileImport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	fileName, err := checkRequired(c.String("file"), ErrRequiredFileName)
	if nil != err {
		return err
	}

	text, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	zf, err := zonefile.ParseText(string(text))
	if nil != err {
		return err
	}
	if "" == zf.Origin {
		zf.Origin = name
	}
	if !zonefile.IsUserZonefile(zf) {
		m.log.Warnf("imported zonefile for: %q has no URI records", name)
		m.verbosef("warning: zonefile has no url hints\n")
	}

	err = m.store.StoreZonefile(name, zf)
	if nil != err {
		return err
	}
	return printJson(m.w, zf)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}

	err = m.store.Delete(name)
	if nil != err {
		return err
	}
	m.log.Infof("deleted profile: %q", name)
	return printJson(m.w, removedResult{Removed: true})
}

func runNames(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start := strings.TrimSpace(c.String("start"))
	count := c.Int("count")

	m.verbosef("start: %q\n", start)
	m.verbosef("count: %d\n", count)

	names, err := m.store.Names(start, count)
	if nil != err {
		return err
	}
	return printJson(m.w, names)
}
