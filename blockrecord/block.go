// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/merkle"
	"github.com/argentite/argentd/transactionrecord"
)

// PackedBlock - packed blocks are just a byte slice
type PackedBlock []byte

// Block - a block and its transactions in packed form
//
// the first transaction is always the base reward record created by
// the miner; Transactions order fixes the merkle root so it must be
// preserved
type Block struct {
	Header       *Header
	Transactions []transactionrecord.Packed
}

// TxIds - the ids of all transactions in the block, in block order
func (block *Block) TxIds() []merkle.Digest {
	ids := make([]merkle.Digest, len(block.Transactions))
	for i, tx := range block.Transactions {
		ids[i] = tx.TxId()
	}
	return ids
}

// Pack - create the canonical byte form of a whole block
func (block *Block) Pack() (PackedBlock, error) {

	if nil == block.Header {
		return nil, fault.InvalidBlockHeader
	}
	if len(block.Transactions) != int(block.Header.TransactionCount) {
		return nil, fault.InvalidBlockHeader
	}

	packedHeader := block.Header.Pack()
	buffer := append([]byte{}, packedHeader[:]...)

	scratch := make([]byte, binary.MaxVarintLen64)
	for _, tx := range block.Transactions {
		n := binary.PutUvarint(scratch, uint64(len(tx)))
		buffer = append(buffer, scratch[:n]...)
		buffer = append(buffer, tx...)
	}

	return PackedBlock(buffer), nil
}

// Unpack - decode a packed block
func (p PackedBlock) Unpack() (*Block, error) {

	if len(p) < totalHeaderSize {
		return nil, fault.InvalidBlockHeader
	}

	packedHeader := PackedHeader{}
	copy(packedHeader[:], p[:totalHeaderSize])
	header, err := packedHeader.Unpack()
	if nil != err {
		return nil, err
	}

	offset := totalHeaderSize
	transactions := make([]transactionrecord.Packed, 0, header.TransactionCount)
	for i := 0; i < int(header.TransactionCount); i += 1 {
		length, n := binary.Uvarint(p[offset:])
		if n <= 0 {
			return nil, fault.InvalidBlockHeader
		}
		offset += n
		if offset+int(length) > len(p) {
			return nil, fault.InvalidBlockHeader
		}
		tx := make(transactionrecord.Packed, length)
		copy(tx, p[offset:offset+int(length)])

		// every record must decode cleanly
		if _, err := tx.Unpack(); nil != err {
			return nil, err
		}

		transactions = append(transactions, tx)
		offset += int(length)
	}

	if offset != len(p) {
		return nil, fault.InvalidBlockHeader
	}

	return &Block{
		Header:       header,
		Transactions: transactions,
	}, nil
}
