// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/argentite/argentd/chain"
	"github.com/argentite/argentd/configuration"
	"github.com/argentite/argentd/prover"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory  = "data"
	defaultArgentiteDatabase = chain.Argentite + ".leveldb"
	defaultTestingDatabase   = chain.Testing + ".leveldb"
	defaultLocalDatabase     = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "argentd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the LevelDB lives
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Prover        prover.Configuration `gluamapper:"prover" json:"prover"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Argentite,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultArgentiteDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if the chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultArgentiteDatabase {
		switch options.Chain {
		case chain.Argentite:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("chain: %s no default database setting", options.Chain)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	if err := options.resolvePaths(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// force every configured path to be absolute; a relative entry is
// taken as relative to the data directory, a blank optional entry
// stays blank
func (options *Configuration) resolvePaths() error {

	resolve := func(p *string) {
		if "" == *p {
			return
		}
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(options.DataDirectory, *p)
		}
		*p = filepath.Clean(*p)
	}

	resolve(&options.Database.Directory)
	resolve(&options.Logging.Directory)
	resolve(&options.PidFile)

	// the database and log file entries must be simple file names
	// i.e. must not contain a path separator; they live inside their
	// configured directories
	if strings.ContainsRune(options.Database.Name, os.PathSeparator) {
		return fmt.Errorf("database name: %q is not a simple name", options.Database.Name)
	}
	options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)

	if strings.ContainsRune(options.Logging.File, os.PathSeparator) {
		return fmt.Errorf("log file: %q is not a simple name", options.Logging.File)
	}

	// the log directory is created on demand
	return os.MkdirAll(options.Logging.Directory, 0700)
}
