// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/argentite/argentd/blockdigest"
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/merkle"
	"github.com/argentite/argentd/storage"
)

// ContainsTransaction - check if a transaction is already confirmed
func ContainsTransaction(txId merkle.Digest) (bool, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false, fault.NotInitialised
	}

	return storage.Pool.Transactions.Has(txId[:]), nil
}

// TransactionBlockNumber - the block that confirmed a transaction
func TransactionBlockNumber(txId merkle.Digest) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	number, found := storage.Pool.Transactions.GetN(txId[:])
	if !found {
		return 0, fault.TransactionIsNotConfirmed
	}
	return number, nil
}

// Height - the number of the block at the tip
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.height
}

// DigestForBlock - the proof-of-work digest of a stored block
func DigestForBlock(number uint64) (blockdigest.Digest, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return blockdigest.Digest{}, fault.NotInitialised
	}

	value := storage.Pool.BlockHeaderHash.Get(blockKey(number))
	if nil == value {
		return blockdigest.Digest{}, fault.BlockNotFound
	}

	var digest blockdigest.Digest
	err := blockdigest.DigestFromBytes(&digest, value)
	return digest, err
}

// Block - fetch and unpack a stored block
func Block(number uint64) (*blockrecord.Block, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	value := storage.Pool.Blocks.Get(blockKey(number))
	if nil == value {
		return nil, fault.BlockNotFound
	}

	return blockrecord.PackedBlock(value).Unpack()
}
