// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/difficulty"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/merkle"
	"github.com/argentite/argentd/transactionrecord"
)

func makeTransactions(t *testing.T, count int) []transactionrecord.Packed {

	key := make([]byte, 32)
	for i := range key {
		key[i] = 0x99
	}
	owner, err := account.NewAddress(key, true)
	assert.NoError(t, err, "new address failed")

	txs := make([]transactionrecord.Packed, 0, count)

	reward := transactionrecord.NewBaseReward(owner, 2)
	packed, err := reward.Pack()
	assert.NoError(t, err, "pack reward failed")
	txs = append(txs, packed)

	for i := 1; i < count; i += 1 {
		tx := &transactionrecord.Transaction{
			Tag:     transactionrecord.TransferTag,
			Owner:   owner,
			Payload: []byte{byte(i)},
			Nonce:   uint64(i),
		}
		packed, err := tx.Pack()
		assert.NoError(t, err, "pack failed")
		txs = append(txs, packed)
	}
	return txs
}

func makeBlock(t *testing.T, count int) *blockrecord.Block {

	txs := makeTransactions(t, count)

	ids := make([]merkle.Digest, len(txs))
	for i, tx := range txs {
		ids[i] = tx.TxId()
	}

	header := &blockrecord.Header{
		Version:          blockrecord.Version,
		TransactionCount: uint16(len(txs)),
		Number:           2,
		MerkleRoot:       merkle.Root(ids),
		Timestamp:        0x5dc94880,
		Difficulty:       difficulty.New(),
		Nonce:            0x1f2e3d4c,
	}
	return &blockrecord.Block{
		Header:       header,
		Transactions: txs,
	}
}

func TestHeaderRoundTrip(t *testing.T) {

	block := makeBlock(t, 3)
	packed := block.Header.Pack()

	header, err := packed.Unpack()
	assert.NoError(t, err, "unpack failed")
	assert.Equal(t, block.Header.Version, header.Version, "version mismatch")
	assert.Equal(t, block.Header.TransactionCount, header.TransactionCount, "count mismatch")
	assert.Equal(t, block.Header.Number, header.Number, "number mismatch")
	assert.Equal(t, block.Header.MerkleRoot, header.MerkleRoot, "merkle root mismatch")
	assert.Equal(t, block.Header.Timestamp, header.Timestamp, "timestamp mismatch")
	assert.Equal(t, block.Header.Difficulty.Bits(), header.Difficulty.Bits(), "difficulty mismatch")
	assert.Equal(t, block.Header.Nonce, header.Nonce, "nonce mismatch")
}

func TestHeaderUnpackRejectsOtherVersions(t *testing.T) {

	block := makeBlock(t, 2)

	for _, version := range []uint16{0, blockrecord.Version + 1, 7} {
		block.Header.Version = version
		_, err := block.Header.Pack().Unpack()
		assert.Equal(t, fault.InvalidBlockHeader, err, "version %d accepted", version)
	}
}

func TestHeaderDigestDependsOnNonce(t *testing.T) {

	block := makeBlock(t, 2)
	d1 := block.Header.Pack().Digest()

	block.Header.Nonce += 1
	d2 := block.Header.Pack().Digest()

	assert.NotEqual(t, d1, d2, "digest ignores nonce")
}

func TestBlockRoundTrip(t *testing.T) {

	block := makeBlock(t, 4)

	packed, err := block.Pack()
	assert.NoError(t, err, "pack failed")

	back, err := packed.Unpack()
	assert.NoError(t, err, "unpack failed")
	assert.Equal(t, block.Header.Number, back.Header.Number, "number mismatch")
	assert.Equal(t, len(block.Transactions), len(back.Transactions), "tx count mismatch")
	assert.Equal(t, block.TxIds(), back.TxIds(), "tx ids mismatch")
}

func TestBlockPackCountMismatch(t *testing.T) {

	block := makeBlock(t, 3)
	block.Header.TransactionCount = 2

	_, err := block.Pack()
	assert.Error(t, err, "count mismatch accepted")
}

func TestBlockUnpackTruncated(t *testing.T) {

	block := makeBlock(t, 2)
	packed, err := block.Pack()
	assert.NoError(t, err, "pack failed")

	_, err = packed[:len(packed)-3].Unpack()
	assert.Error(t, err, "truncated block accepted")
}
