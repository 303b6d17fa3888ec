// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argentite/argentd/chain"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/mode"
	"github.com/argentite/argentd/testing/fixtures"
)

func TestModeTransitions(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise(chain.Testing)
	assert.NoError(t, err, "initialise failed")
	defer mode.Finalise()

	// double initialise must fail
	err = mode.Initialise(chain.Testing)
	assert.Equal(t, fault.AlreadyInitialised, err, "double initialise")

	// node starts in peering mode
	assert.True(t, mode.Is(mode.Peering), "initial mode not Peering")
	assert.True(t, mode.IsNot(mode.Ready), "initial mode is Ready")
	assert.True(t, mode.IsTesting(), "testing chain not detected")
	assert.Equal(t, chain.Testing, mode.ChainName(), "wrong chain name")

	mode.Set(mode.Ready)
	assert.True(t, mode.Is(mode.Ready), "mode not Ready")

	mode.Set(mode.Mining)
	assert.True(t, mode.Is(mode.Mining), "mode not Mining")
	assert.Equal(t, "Mining", mode.String(), "wrong mode string")

	mode.Set(mode.Ready)
	assert.True(t, mode.Is(mode.Ready), "mode not restored to Ready")
}

func TestModeInvalidChain(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise("no-such-chain")
	assert.Equal(t, fault.InvalidChain, err, "invalid chain accepted")
}
