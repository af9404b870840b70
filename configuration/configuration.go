// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/blockstack/blockstore/chain"
	"github.com/blockstack/blockstore/fault"
	"github.com/blockstack/blockstore/txoutput"
	"github.com/blockstack/blockstore/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabaseSuffix   = ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "blockstore.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - location of the leveldb database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// CacheType - in-memory cache settings
//
// an empty expiry keeps the default expiry of each cache pool
type CacheType struct {
	Expiry string `gluamapper:"expiry" json:"expiry"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Fees          txoutput.Fees        `gluamapper:"fees" json:"fees"`
	Cache         CacheType            `gluamapper:"cache" json:"cache"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// CacheExpiry - the cache expiry as a duration, zero if not set
func (c *Configuration) CacheExpiry() (time.Duration, error) {
	if "" == c.Cache.Expiry {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.Expiry)
	if nil != err || d < 0 {
		return 0, fault.ErrInvalidExpiry
	}
	return d, nil
}

// Testset - true if operations must use the testset magic bytes
func (c *Configuration) Testset() bool {
	return chain.IsTestset(c.Chain)
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	if "" == configurationFileName {
		return nil, fault.ErrMissingConfiguration
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Mainnet,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},

		Fees: txoutput.DefaultFees,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}

	// database name follows the chain unless set
	if "" == options.Database.Name {
		options.Database.Name = options.Chain + defaultDatabaseSuffix
	}

	if 0 == options.Fees.DataCarrier || 0 == options.Fees.Dust {
		return nil, fault.ErrInvalidFees
	}

	if _, err := options.CacheExpiry(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	for _, f := range []string{
		options.Database.Name,
		options.Logging.File,
	} {
		switch filepath.Dir(f) {
		case "", ".":
		default:
			return nil, fault.ErrInvalidFileName
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// DatabasePath - full path of the leveldb database
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}
