// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/argentite/argentd/blockdigest"
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/storage"
)

// all zero digest marks the block before genesis
var blockdigestZero = blockdigest.Digest{}

// big endian block number for use as a database key
func blockKey(number uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, number)
	return key
}

// commit a verified block and advance the tip
//
// callers must hold the write lock; the transactions are stored as:
//
//	block number ++ packed transaction
//
// keyed by transaction id, so confirmation lookups also yield the
// confirming block
func storeBlock(block *blockrecord.Block) error {

	packedBlock, err := block.Pack()
	if nil != err {
		return err
	}

	packedHeader := block.Header.Pack()
	digest := packedHeader.Digest()
	key := blockKey(block.Header.Number)

	storage.Pool.Blocks.Put(key, packedBlock)
	storage.Pool.BlockHeaderHash.Put(key, digest[:])

	for _, packed := range block.Transactions {
		txId := packed.TxId()
		record := make([]byte, 8, 8+len(packed))
		binary.BigEndian.PutUint64(record, block.Header.Number)
		record = append(record, packed...)
		storage.Pool.Transactions.Put(txId[:], record)
	}

	globalData.height = block.Header.Number
	globalData.previousBlock = digest

	return nil
}
