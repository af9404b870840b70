// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/syndtr/goleveldb/leveldb"
	dbutil "github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/blockstack/blockstore/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// table prefixes and their contents
var tables = map[string]string{
	"Z": "zonefiles",
	"M": "mutable data info",
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] leveldb-file table name-prefix", program)
	}

	if len(arguments) < 2 {
		exitwithstatus.Message("%s: at least 2 arguments are required", program)
	}

	verbose := len(options["verbose"]) > 0

	// ------------------
	// start of real main
	// ------------------

	database := arguments[0]
	table := strings.ToUpper(arguments[1])
	namePrefix := ""
	if len(arguments) > 2 {
		namePrefix = arguments[2]
	}

	if !util.EnsureFileExists(database) {
		exitwithstatus.Message("%s: missing file: %q", program, database)
	}

	description, ok := tables[table]
	if !ok {
		exitwithstatus.Message("%s: invalid table: %q  expected one of: Z M", program, table)
	}
	if verbose {
		fmt.Printf("table: %s (%s)  prefix: %q\n", table, description, namePrefix)
	}

	ttyFd, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if err != nil {
		exitwithstatus.Message("%s: tty open error: %s", program, err)
	}
	defer ttyFd.Close()
	oldState, err := terminal.MakeRaw(int(ttyFd.Fd()))

	if err != nil {
		exitwithstatus.Message("%s: tty open error: %s", program, err)
	}
	defer terminal.Restore(int(ttyFd.Fd()), oldState)

	console := terminal.NewTerminal(ttyFd, "DB Delete [y/d/n/q]: ")

	db, err := leveldb.OpenFile(database, nil)
	if err != nil {
		exitwithstatus.Message("%s: open database: %q  error: %s", program, database, err)
	}
	defer db.Close()

	prefix := append([]byte(table), namePrefix...)
	iter := db.NewIterator(dbutil.BytesPrefix(prefix), nil)

	deleted := 0
loop:
	for iter.Next() {

		key := iter.Key()
		value := iter.Value()

		fmt.Printf("%s → %s\r\n", key[1:], value)
		cmd, err := console.ReadLine()
		if err != nil {
			exitwithstatus.Message("%s: terminal read error: %s", program, err)
		}
		switch strings.ToLower(cmd) {
		case "d", "y":
			err = db.Delete(key, nil)
			if err != nil {
				exitwithstatus.Message("%s: delete: %q  error: %s", program, key[1:], err)
			}
			deleted += 1
		case "q":
			break loop
		case "", "n":
		default:
			fmt.Printf("invalid command\r\n")
		}
	}
	iter.Release()
	err = iter.Error()
	if err != nil {
		exitwithstatus.Message("%s: iteration error: %s", program, err)
	}

	if verbose {
		fmt.Printf("deleted: %d\r\n", deleted)
	}
}
