// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockonomicsd/blockonomics"
	"github.com/bitmark-inc/blockonomicsd/configuration"
	"github.com/bitmark-inc/blockonomicsd/gateway"
	"github.com/bitmark-inc/blockonomicsd/poller"
	"github.com/bitmark-inc/blockonomicsd/server"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "blockonomicsd.key"
	defaultCertificateFile = "blockonomicsd.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "blockonomicsd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "blockonomicsd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the ledger
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Processor blockonomics.Configuration `gluamapper:"processor" json:"processor"`
	Gateway   gateway.Configuration      `gluamapper:"gateway" json:"gateway"`
	Server    server.Configuration       `gluamapper:"server" json:"server"`
	Poller    poller.Configuration       `gluamapper:"poller" json:"poller"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
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

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Processor: blockonomics.Configuration{
			URL: blockonomics.DefaultURL,
		},

		Server: server.Configuration{
			Certificate: defaultCertificateFile,
			PrivateKey:  defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"data_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if 0 == len(options.Server.Listen) {
		return nil, fmt.Errorf("server: no listen addresses")
	}

	// blank certificate and key select plain HTTP
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Server.Certificate,
		&options.Server.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.AbsolutePath(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = configuration.AbsolutePath(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = configuration.AbsolutePath(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// done
	return options, nil
}
