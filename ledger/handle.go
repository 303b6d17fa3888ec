// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math/rand"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/merkle"
	"github.com/argentite/argentd/terminator"
	"github.com/argentite/argentd/transactionrecord"
)

// Handle - value adapter over the package functions so callers can
// hold the ledger as an interface and substitute it in tests
type Handle struct{}

// ContainsTransaction - see the package function
func (Handle) ContainsTransaction(txId merkle.Digest) (bool, error) {
	return ContainsTransaction(txId)
}

// MineNextBlock - see the package function
func (Handle) MineNextBlock(recipient *account.Address, transactions []transactionrecord.Packed, stop *terminator.Flag, rng *rand.Rand) (*blockrecord.Block, error) {
	return MineNextBlock(recipient, transactions, stop, rng)
}
