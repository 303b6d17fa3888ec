// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/difficulty"
	"github.com/argentite/argentd/merkle"
	"github.com/argentite/argentd/mode"
	"github.com/argentite/argentd/transactionrecord"
)

// 2019-01-01T00:00:00Z - all chains start here
const genesisTimestamp = 1546300800

// the unspendable key that owns the genesis reward
var genesisOwnerKey = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// create and store block one
//
// the genesis block carries no proof-of-work; it is fixed by
// construction and every node derives the same record
func storeGenesisBlock() error {

	owner, err := account.NewAddress(genesisOwnerKey, mode.IsTesting())
	if nil != err {
		return err
	}

	reward := transactionrecord.NewBaseReward(owner, blockrecord.GenesisBlockNumber)
	packedReward, err := reward.Pack()
	if nil != err {
		return err
	}

	header := &blockrecord.Header{
		Version:          blockrecord.Version,
		TransactionCount: 1,
		Number:           blockrecord.GenesisBlockNumber,
		PreviousBlock:    blockdigestZero,
		MerkleRoot:       merkle.Root([]merkle.Digest{packedReward.TxId()}),
		Timestamp:        genesisTimestamp,
		Difficulty:       difficulty.Current,
		Nonce:            0,
	}

	block := &blockrecord.Block{
		Header:       header,
		Transactions: []transactionrecord.Packed{packedReward},
	}

	return storeBlock(block)
}
