// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/zonefile"
)

type pubkeyResult struct {
	Pubkey string `json:"pubkey"`
}

func runURLAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	url, err := checkRequired(c.String("url"), ErrRequiredURL)
	if nil != err {
		return err
	}

	zf, err := m.store.LoadZonefile(name)
	if fault.ErrProfileNotFound == err {

		// the first url makes a new user zonefile
		m.verbosef("new zonefile: %s\n", name)
		r, err := zonefile.URLToURIRecord(url, "")
		if nil != err {
			return err
		}
		zf = &zonefile.Zonefile{
			Origin: name,
			TTL:    zonefile.DefaultTTL,
			URI:    []zonefile.URIRecord{r},
		}

	} else if nil != err {
		return err
	} else if err := zonefile.AddURL(zf, url); nil != err {
		return err
	}

	err = m.store.StoreZonefile(name, zf)
	if nil != err {
		return err
	}

	urls, err := zonefile.URLs(zf)
	if nil != err {
		return err
	}
	return printJson(m.w, urls)
}

func runURLRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	url, err := checkRequired(c.String("url"), ErrRequiredURL)
	if nil != err {
		return err
	}

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	removed, err := zonefile.RemoveURL(zf, url)
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

func runURLs(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	urls, err := zonefile.URLs(zf)
	if nil != err {
		return err
	}
	return printJson(m.w, urls)
}

func runPubkeyGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	pubkey, err := zonefile.DataPubkey(zf)
	if nil != err {
		return err
	}
	return printJson(m.w, pubkeyResult{Pubkey: pubkey})
}

func runPubkeySet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("name"))
	if nil != err {
		return err
	}
	key, err := checkHex(c.String("key"), ErrRequiredPublicKey)
	if nil != err {
		return err
	}
	pubkey := hex.EncodeToString(key)

	zf, err := m.store.LoadZonefile(name)
	if nil != err {
		return err
	}

	m.verbosef("public key: %d bytes\n", len(key))
	err = zonefile.SetDataPubkey(zf, pubkey)
	if nil != err {
		return err
	}

	err = m.store.StoreZonefile(name, zf)
	if nil != err {
		return err
	}
	return printJson(m.w, pubkeyResult{Pubkey: pubkey})
}
