// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argentite/argentd/configuration"
)

type testConfiguration struct {
	Chain  string `gluamapper:"chain"`
	Prover struct {
		Miner     bool   `gluamapper:"miner"`
		Recipient string `gluamapper:"recipient"`
	} `gluamapper:"prover"`
}

const testScript = `
local M = {}

M.chain = "testing"

M.prover = {
    miner = true,
    recipient = os.getenv("TEST_RECIPIENT") or "none",
}

return M
`

func TestParseConfigurationFile(t *testing.T) {
	file, err := ioutil.TempFile("", "configuration-*.lua")
	assert.Nil(t, err, "temp file error")
	fileName := file.Name()
	defer os.Remove(fileName)

	_, err = file.WriteString(testScript)
	assert.Nil(t, err, "write error")
	file.Close()

	os.Setenv("TEST_RECIPIENT", "abcdef")
	defer os.Unsetenv("TEST_RECIPIENT")

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "testing", config.Chain, "wrong chain")
	assert.True(t, config.Prover.Miner, "wrong miner flag")
	assert.Equal(t, "abcdef", config.Prover.Recipient, "wrong recipient")
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("no-such-file.lua", config)
	assert.NotNil(t, err, "missing file not reported")
}
