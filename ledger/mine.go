// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math/rand"
	"time"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/difficulty"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/merkle"
	"github.com/argentite/argentd/mode"
	"github.com/argentite/argentd/terminator"
	"github.com/argentite/argentd/transactionrecord"
)

// MineNextBlock - assemble a candidate on the current tip and search
// for a nonce that satisfies the current difficulty
//
// the base reward for the recipient is placed first, ahead of the
// supplied transactions; the stop flag is polled between hash
// attempts and aborts with a mining terminated error
//
// the rng seeds the nonce search so parallel miners cover different
// ranges; it must not be shared between concurrent attempts
func MineNextBlock(recipient *account.Address, transactions []transactionrecord.Packed, stop *terminator.Flag, rng *rand.Rand) (*blockrecord.Block, error) {

	if nil == recipient {
		return nil, fault.InvalidRecipient
	}
	if recipient.Test != mode.IsTesting() {
		return nil, fault.WrongNetworkForRecipient
	}
	if len(transactions) >= blockrecord.MaximumTransactions {
		return nil, fault.InvalidCount
	}

	globalData.RLock()
	if !globalData.initialised {
		globalData.RUnlock()
		return nil, fault.NotInitialised
	}
	number := globalData.height + 1
	previousBlock := globalData.previousBlock
	globalData.RUnlock()

	reward := transactionrecord.NewBaseReward(recipient, number)
	reward.Nonce = rng.Uint64()
	packedReward, err := reward.Pack()
	if nil != err {
		return nil, err
	}

	blockTransactions := make([]transactionrecord.Packed, 0, len(transactions)+1)
	blockTransactions = append(blockTransactions, packedReward)
	blockTransactions = append(blockTransactions, transactions...)

	txIds := make([]merkle.Digest, len(blockTransactions))
	for i, packed := range blockTransactions {
		txIds[i] = packed.TxId()
	}

	header := &blockrecord.Header{
		Version:          blockrecord.Version,
		TransactionCount: uint16(len(blockTransactions)),
		Number:           number,
		PreviousBlock:    previousBlock,
		MerkleRoot:       merkle.Root(txIds),
		Timestamp:        uint64(time.Now().Unix()),
		Difficulty:       difficulty.Current,
		Nonce:            blockrecord.NonceType(rng.Uint64()),
	}

	target := difficulty.Current.BigInt()

	// nonce search; each argon2 digest is expensive so the stop
	// flag is checked on every attempt
	for {
		if stop.IsSet() {
			return nil, fault.MiningTerminated
		}

		packedHeader := header.Pack()
		if packedHeader.Digest().Cmp(target) <= 0 {
			break
		}

		header.Nonce += 1
	}

	return &blockrecord.Block{
		Header:       header,
		Transactions: blockTransactions,
	}, nil
}
