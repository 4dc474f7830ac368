// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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

const testConfiguration = `
local M = {}
M.data_directory = "."
M.gateway = {
    company = "Example Hosting",
    currency = "usd",
    meta = {
        api_key = "key-from-file",
        parent_uid = { USD = "parent-usd" },
    },
}
M.server = {
    listen = { "127.0.0.1:2180" },
    certificate = "",
    private_key = "",
}
M.poller = { interval = 60 }
return M
`

func writeConfiguration(t *testing.T, source string) (string, string) {
	dir, err := ioutil.TempDir("", "blockonomicsd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "blockonomicsd.conf")
	if err := ioutil.WriteFile(fileName, []byte(source), 0600); nil != err {
		t.Fatalf("write config error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong error")

	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultDatabase), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, "Example Hosting", options.Gateway.Company, "wrong company")
	assert.Equal(t, "key-from-file", options.Gateway.Meta.APIKey, "wrong api key")
	assert.Equal(t, "parent-usd", options.Gateway.Meta.ParentUIDs["USD"], "wrong parent uid")
	assert.Equal(t, []string{"127.0.0.1:2180"}, options.Server.Listen, "wrong listen")
	assert.Equal(t, "", options.Server.Certificate, "blank certificate not kept")
	assert.Equal(t, 60, options.Poller.Interval, "wrong interval")

	_, err = os.Stat(options.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []string{
		`return { data_directory = "" }`,
		`return { data_directory = "/no/such/directory/exists" }`,
		`return { data_directory = "." }`,
		`return { data_directory = ".", server = { listen = { "127.0.0.1:1" } }, database = { name = "sub/db" } }`,
		`return 5`,
	}

	for i, source := range items {
		dir, fileName := writeConfiguration(t, source)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "%d: expected error", i)
		os.RemoveAll(dir)
	}
}

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "x.crt", getFilenameWithDirectory(nil, "x.crt"), "wrong default")
	assert.Equal(t, filepath.Join("/tmp", "x.crt"), getFilenameWithDirectory([]string{"/tmp", "127.0.0.1"}, "x.crt"), "wrong directory")
}
