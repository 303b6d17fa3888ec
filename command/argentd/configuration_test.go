// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConfigurationScript = `
local M = {}

M.data_directory = "."
M.pidfile = "argentd.pid"
M.chain = "testing"

M.database = {
    directory = "data",
}

M.logging = {
    directory = "log",
    file = "argentd.log",
}

return M
`

func writeTestConfiguration(t *testing.T, script string) (string, func()) {
	directory, err := ioutil.TempDir("", "argentd-configuration")
	assert.Nil(t, err, "temp directory error")

	fileName := filepath.Join(directory, "argentd.conf")
	err = ioutil.WriteFile(fileName, []byte(script), 0600)
	assert.Nil(t, err, "write error")

	return fileName, func() { os.RemoveAll(directory) }
}

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeTestConfiguration(t, testConfigurationScript)
	defer cleanup()

	directory := filepath.Dir(fileName)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, "testing", options.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(directory, "argentd.pid"), options.PidFile, "pid file not resolved")
	assert.Equal(t, filepath.Join(directory, "data", "testing.leveldb"), options.Database.Name, "database not resolved")
	assert.Equal(t, filepath.Join(directory, "log"), options.Logging.Directory, "log directory not resolved")

	info, err := os.Stat(options.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestResolvePaths(t *testing.T) {
	directory, err := ioutil.TempDir("", "argentd-paths")
	assert.Nil(t, err, "temp directory error")
	defer os.RemoveAll(directory)

	logDirectory := filepath.Join(directory, "absolute-log")

	options := &Configuration{
		DataDirectory: directory,
		Database: DatabaseType{
			Directory: "db",
			Name:      "testing.leveldb",
		},
	}
	options.Logging.Directory = logDirectory
	options.Logging.File = "argentd.log"

	err = options.resolvePaths()
	assert.Nil(t, err, "resolve error")

	assert.Equal(t, filepath.Join(directory, "db", "testing.leveldb"), options.Database.Name, "relative not joined")
	assert.Equal(t, logDirectory, options.Logging.Directory, "absolute modified")
	assert.Equal(t, "", options.PidFile, "blank pid file modified")
}

func TestResolvePathsRejectsNestedNames(t *testing.T) {
	options := &Configuration{
		DataDirectory: "/data",
		Database: DatabaseType{
			Directory: "db",
			Name:      filepath.Join("sub", "testing.leveldb"),
		},
	}
	options.Logging.File = "argentd.log"

	err := options.resolvePaths()
	assert.NotNil(t, err, "nested database name accepted")
}
