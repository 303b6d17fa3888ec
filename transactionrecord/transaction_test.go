// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/transactionrecord"
)

func makeOwner(t *testing.T, fill byte) *account.Address {
	key := make([]byte, 32)
	for i := range key {
		key[i] = fill
	}
	owner, err := account.NewAddress(key, true)
	assert.NoError(t, err, "new address failed")
	return owner
}

func TestTransferRoundTrip(t *testing.T) {

	tx := &transactionrecord.Transaction{
		Tag:     transactionrecord.TransferTag,
		Owner:   makeOwner(t, 0x11),
		Payload: []byte("pay 5 to somebody"),
		Nonce:   42,
	}

	packed, err := tx.Pack()
	assert.NoError(t, err, "pack failed")

	back, err := packed.Unpack()
	assert.NoError(t, err, "unpack failed")
	assert.Equal(t, tx.Tag, back.Tag, "tag mismatch")
	assert.Equal(t, tx.Owner.PublicKey, back.Owner.PublicKey, "owner mismatch")
	assert.Equal(t, tx.Payload, back.Payload, "payload mismatch")
	assert.Equal(t, tx.Nonce, back.Nonce, "nonce mismatch")
}

func TestTxIdStable(t *testing.T) {

	tx := &transactionrecord.Transaction{
		Tag:     transactionrecord.TransferTag,
		Owner:   makeOwner(t, 0x22),
		Payload: []byte("payload"),
		Nonce:   1,
	}

	id1, err := tx.TxId()
	assert.NoError(t, err, "txid failed")
	id2, err := tx.TxId()
	assert.NoError(t, err, "txid failed")
	assert.Equal(t, id1, id2, "txid not stable")

	// a different nonce must give a different id
	tx2 := &transactionrecord.Transaction{
		Tag:     transactionrecord.TransferTag,
		Owner:   tx.Owner,
		Payload: tx.Payload,
		Nonce:   2,
	}
	id3, err := tx2.TxId()
	assert.NoError(t, err, "txid failed")
	assert.NotEqual(t, id1, id3, "distinct transactions share an id")
}

func TestBaseReward(t *testing.T) {

	owner := makeOwner(t, 0x33)
	tx := transactionrecord.NewBaseReward(owner, 7)
	assert.Equal(t, transactionrecord.BaseRewardTag, tx.Tag, "wrong tag")
	assert.Equal(t, uint64(7), tx.Nonce, "wrong block number")

	packed, err := tx.Pack()
	assert.NoError(t, err, "pack failed")

	back, err := packed.Unpack()
	assert.NoError(t, err, "unpack failed")
	assert.Equal(t, transactionrecord.BaseRewardTag, back.Tag, "tag lost")
	assert.Nil(t, back.Payload, "reward has a payload")
}

func TestPackInvalid(t *testing.T) {

	// missing owner
	tx := &transactionrecord.Transaction{
		Tag:   transactionrecord.TransferTag,
		Nonce: 1,
	}
	_, err := tx.Pack()
	assert.Equal(t, fault.MissingOwner, err, "missing owner accepted")

	// bad tag
	tx = &transactionrecord.Transaction{
		Tag:   transactionrecord.InvalidTag,
		Owner: makeOwner(t, 0x44),
	}
	_, err = tx.Pack()
	assert.Equal(t, fault.InvalidTransactionPayload, err, "invalid tag accepted")
}

func TestUnpackTrailingBytes(t *testing.T) {

	tx := &transactionrecord.Transaction{
		Tag:     transactionrecord.TransferTag,
		Owner:   makeOwner(t, 0x55),
		Payload: []byte("x"),
		Nonce:   3,
	}
	packed, err := tx.Pack()
	assert.NoError(t, err, "pack failed")

	_, err = transactionrecord.Packed(append(packed, 0xde, 0xad)).Unpack()
	assert.Error(t, err, "trailing bytes accepted")
}
