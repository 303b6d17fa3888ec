// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - transaction records and their canonical
// packed form
//
// The transaction identifier is the SHA3 digest of the packed record,
// so a record must never be modified after construction.
package transactionrecord

import (
	"encoding/binary"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/merkle"
)

// TagType - type code for transactions
// encoded as a Uvarint at the start of the packed form
type TagType uint64

// enumerate the possible transaction record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	BaseRewardTag = TagType(iota) // first tx in every block, pays the miner
	TransferTag   = TagType(iota) // ordinary value transfer

	// this item must be last
	InvalidTag = TagType(iota)
)

// byte size limits for various fields
const (
	maxPayloadLength = 2048
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - a transfer of value to an owner
//
// records are immutable once constructed; the zero Nonce is valid
// and distinct payloads under the same owner give distinct ids
type Transaction struct {
	Tag     TagType          `json:"tag"`
	Owner   *account.Address `json:"owner"` // base58
	Payload []byte           `json:"payload"`
	Nonce   uint64           `json:"nonce,string"`
}

// NewBaseReward - the miner reward transaction placed first in a
// candidate block
func NewBaseReward(owner *account.Address, blockNumber uint64) *Transaction {
	return &Transaction{
		Tag:     BaseRewardTag,
		Owner:   owner,
		Payload: nil,
		Nonce:   blockNumber,
	}
}

// Pack - create the canonical byte form of a transaction
func (tx *Transaction) Pack() (Packed, error) {

	if tx.Tag <= NullTag || tx.Tag >= InvalidTag {
		return nil, fault.InvalidTransactionPayload
	}
	if nil == tx.Owner {
		return nil, fault.MissingOwner
	}
	if len(tx.Payload) > maxPayloadLength {
		return nil, fault.InvalidTransactionPayload
	}

	ownerBytes := tx.Owner.Bytes()

	buffer := make([]byte, 0, 2*binary.MaxVarintLen64+len(ownerBytes)+len(tx.Payload)+8)
	buffer = appendUvarint(buffer, uint64(tx.Tag))
	buffer = appendUvarint(buffer, uint64(len(ownerBytes)))
	buffer = append(buffer, ownerBytes...)
	buffer = appendUvarint(buffer, uint64(len(tx.Payload)))
	buffer = append(buffer, tx.Payload...)
	buffer = appendUvarint(buffer, tx.Nonce)

	return Packed(buffer), nil
}

// TxId - the unique identifier of a transaction
func (tx *Transaction) TxId() (merkle.Digest, error) {
	packed, err := tx.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	return packed.TxId(), nil
}

// TxId - the identifier of an already packed transaction
func (p Packed) TxId() merkle.Digest {
	return merkle.NewDigest(p)
}

// Bytes - for sending on the message bus
func (p Packed) Bytes() []byte {
	return p
}

// appendUvarint - append a Uvarint encoded value
func appendUvarint(buffer []byte, value uint64) []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, value)
	return append(buffer, scratch[:n]...)
}
