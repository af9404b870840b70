// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/urfave/cli"

	"github.com/blockstack/blockstore/cache"
	"github.com/blockstack/blockstore/chain"
	"github.com/blockstack/blockstore/configuration"
	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/mutable"
	"github.com/blockstack/blockstore/profile"
	"github.com/blockstack/blockstore/storage"
	"github.com/blockstack/blockstore/txoutput"
	"github.com/blockstack/blockstore/zonefile"
)

type metadata struct {
	config    *configuration.Configuration
	params    *chaincfg.Params
	testset   bool
	verbose   bool
	log       *logger.L
	store     *profile.Store
	immutable *zonefile.Registry
	mutable   *mutable.Registry
	shaper    *txoutput.Shaper
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "blockstore-cli"
	app.Usage = "namespace operations and zonefile data records"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "config, c",
			Value:  "blockstore.conf",
			EnvVar: "BLOCKSTORE_CONFIG",
			Usage:  " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "name, N",
			Value: "",
			Usage: " profile `NAME` for zonefile and data commands",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "reveal",
			Usage:     "build a NAMESPACE_REVEAL payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "namespace, i",
					Value: "",
					Usage: "*namespace `ID`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " reveal `ADDRESS`",
				},
				cli.Int64Flag{
					Name:  "lifetime, l",
					Value: -1,
					Usage: " name lifetime in `BLOCKS` [default infinite]",
				},
				cli.Uint64Flag{
					Name:  "cost, s",
					Value: 0,
					Usage: "*one character name cost in `SATOSHIS`",
				},
				cli.Float64Flag{
					Name:  "decay, d",
					Value: 1.0,
					Usage: " price decay `RATE` per character",
				},
				cli.UintFlag{
					Name:  "rules, r",
					Value: 1,
					Usage: " rules `VERSION`",
				},
			},
			Action: runReveal,
		},
		{
			Name:      "parse",
			Usage:     "decode a NAMESPACE_REVEAL data carrier",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*data carrier `HEX` including magic bytes",
				},
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*sender script `HEX`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
			},
			Action: runParse,
		},
		{
			Name:      "outputs",
			Usage:     "make the transaction outputs for a payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*data carrier `HEX`",
				},
				cli.StringFlag{
					Name:  "inputs, i",
					Value: "",
					Usage: "*unspent inputs `JSON` array, or @FILE",
				},
				cli.StringFlag{
					Name:  "reveal, r",
					Value: "",
					Usage: "*reveal `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "change, c",
					Value: "",
					Usage: "*change `ADDRESS`",
				},
			},
			Action: runOutputs,
		},
		{
			Name:      "immutable-put",
			Usage:     "add an immutable data record to a zonefile",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				dataIdFlag,
				hashFlag,
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: " url hint `URL`",
				},
			},
			Action: runImmutablePut,
		},
		{
			Name:      "immutable-get",
			Usage:     "hash and url of an immutable data record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{dataIdFlag},
			Action:    runImmutableGet,
		},
		{
			Name:      "immutable-remove",
			Usage:     "remove an immutable data record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{hashFlag},
			Action:    runImmutableRemove,
		},
		{
			Name:   "immutable-list",
			Usage:  "list immutable data records",
			Action: runImmutableList,
		},
		{
			Name:      "mutable-put",
			Usage:     "add or replace a mutable data entry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				dataIdFlag,
				cli.Uint64Flag{
					Name:  "version, V",
					Value: 0,
					Usage: " `VERSION` [default one more than current]",
				},
				cli.StringSliceFlag{
					Name:  "url, u",
					Usage: "*data `URL` (may be repeated)",
				},
			},
			Action: runMutablePut,
		},
		{
			Name:      "mutable-get",
			Usage:     "urls and version of a mutable data entry",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{dataIdFlag},
			Action:    runMutableGet,
		},
		{
			Name:      "mutable-remove",
			Usage:     "remove a mutable data entry",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{dataIdFlag},
			Action:    runMutableRemove,
		},
		{
			Name:   "mutable-list",
			Usage:  "list mutable data keys",
			Action: runMutableList,
		},
		{
			Name:      "mutable-version",
			Usage:     "current version of a mutable data entry",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{dataIdFlag},
			Action:    runMutableVersion,
		},
		{
			Name:      "url-add",
			Usage:     "add a profile url hint, creates the zonefile if needed",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{urlFlag},
			Action:    runURLAdd,
		},
		{
			Name:      "url-remove",
			Usage:     "remove a profile url hint",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{urlFlag},
			Action:    runURLRemove,
		},
		{
			Name:   "urls",
			Usage:  "list profile url hints",
			Action: runURLs,
		},
		{
			Name:   "pubkey-get",
			Usage:  "show the data public key",
			Action: runPubkeyGet,
		},
		{
			Name:      "pubkey-set",
			Usage:     "set the data public key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*public key `HEX`",
				},
			},
			Action: runPubkeySet,
		},
		{
			Name:   "zonefile",
			Usage:  "print the zonefile in DNS master file form",
			Action: runZonefile,
		},
		{
			Name:      "zonefile-import",
			Usage:     "store a zonefile from a DNS master file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*zonefile `FILE`",
				},
			},
			Action: runZonefileImport,
		},
		{
			Name:   "delete",
			Usage:  "delete the zonefile and data info of a profile",
			Action: runDelete,
		},
		{
			Name:  "names",
			Usage: "list stored profile names",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first `NAME` to list",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " list at most `COUNT` names [default all]",
				},
			},
			Action: runNames,
		},
		{
			Name:   "version",
			Usage:  "display blockstore-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		params, err := chain.Params(config.Chain)
		if nil != err {
			return err
		}

		expiry, err := config.CacheExpiry()
		if nil != err {
			return err
		}

		// start logging
		if err = logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err = fault.Initialise(); nil != err {
			return err
		}
		if err = storage.Initialise(config.DatabasePath(), storage.ReadWrite); nil != err {
			return err
		}
		if err = cache.Initialise(expiry); nil != err {
			return err
		}

		log := logger.New("cli")
		log.Infof("chain: %s  database: %s", config.Chain, config.DatabasePath())

		c.App.Metadata["config"] = &metadata{
			config:  config,
			params:  params,
			testset: config.Testset(),
			verbose: verbose,
			log:     log,
			store: profile.New(
				logger.New("profile"),
				storage.Pool.Zonefiles,
				storage.Pool.DataInfo,
				cache.Pool.Zonefiles,
				cache.Pool.DataInfo,
			),
			immutable: zonefile.NewRegistry(logger.New("zonefile"), nil),
			mutable:   mutable.NewRegistry(logger.New("mutable")),
			shaper:    txoutput.NewShaper(config.Fees, txoutput.NewBitcoinEncoder(params), nil),
			e:         e,
			w:         w,
		}

		return nil
	}

	// release everything started by Before
	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); !ok {
			return nil
		}
		_ = cache.Finalise()
		storage.Finalise()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
