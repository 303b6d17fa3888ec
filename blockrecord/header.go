// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockrecord - block headers and whole blocks in their
// canonical packed form
//
// The proof-of-work digest is computed over the packed header only;
// transactions are bound to it through the merkle root.
package blockrecord

import (
	"encoding/binary"

	"github.com/argentite/argentd/blockdigest"
	"github.com/argentite/argentd/difficulty"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/merkle"
)

// PackedHeader - use fixed size array to simplify validation
type PackedHeader [totalHeaderSize]byte

// currently supported block version
const (
	Version            = 1
	GenesisBlockNumber = 1
	MinimumBlockNumber = 2 // 1 => genesis block
)

// MaximumTransactions - maximum transactions in a block
// limited by the uint16 count field; includes the base reward record
const MaximumTransactions = 10000

// byte sizes for the header fields
const (
	versionSize          = 2                   // block version number
	transactionCountSize = 2                   // count of transactions
	numberSize           = 8                   // this block's number
	previousBlockSize    = blockdigest.Length  // argon2d digest of the previous block header
	merkleRootSize       = merkle.DigestLength // SHA3 digest over all transaction ids
	timestampSize        = 8                   // seconds since 1970-01-01T00:00 UTC
	difficultySize       = 8                   // difficulty in compact form
	NonceSize            = 8                   // 64 bit number (starts at 0)
)

// offsets of the fields
const (
	versionOffset          = 0
	transactionCountOffset = versionOffset + versionSize
	numberOffset           = transactionCountOffset + transactionCountSize
	previousBlockOffset    = numberOffset + numberSize
	merkleRootOffset       = previousBlockOffset + previousBlockSize
	timestampOffset        = merkleRootOffset + merkleRootSize
	difficultyOffset       = timestampOffset + timestampSize
	nonceOffset            = difficultyOffset + difficultySize

	totalHeaderSize = nonceOffset + NonceSize // total bytes in the header
)

// Header - the unpacked header structure
type Header struct {
	Version          uint16                 `json:"version"`
	TransactionCount uint16                 `json:"transactionCount"`
	Number           uint64                 `json:"number,string"`
	PreviousBlock    blockdigest.Digest     `json:"previousBlock"`
	MerkleRoot       merkle.Digest          `json:"merkleRoot"`
	Timestamp        uint64                 `json:"timestamp,string"`
	Difficulty       *difficulty.Difficulty `json:"difficulty"`
	Nonce            NonceType              `json:"nonce"`
}

// Pack - turn a header into an array of bytes
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint16(buffer[versionOffset:], header.Version)
	binary.LittleEndian.PutUint16(buffer[transactionCountOffset:], header.TransactionCount)
	binary.LittleEndian.PutUint64(buffer[numberOffset:], header.Number)

	// digests are already little endian so just copy
	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])

	binary.LittleEndian.PutUint64(buffer[timestampOffset:], header.Timestamp)
	binary.LittleEndian.PutUint64(buffer[difficultyOffset:], uint64(header.Difficulty.Bits()))
	binary.LittleEndian.PutUint64(buffer[nonceOffset:], uint64(header.Nonce))

	return buffer
}

// Unpack - turn a byte array back into a header
func (record PackedHeader) Unpack() (*Header, error) {

	header := &Header{
		Difficulty: difficulty.New(),
	}

	header.Version = binary.LittleEndian.Uint16(record[versionOffset:])
	header.TransactionCount = binary.LittleEndian.Uint16(record[transactionCountOffset:])
	header.Number = binary.LittleEndian.Uint64(record[numberOffset:])

	if header.Version != Version {
		return nil, fault.InvalidBlockHeader
	}
	if 0 == header.TransactionCount || header.TransactionCount > MaximumTransactions {
		return nil, fault.InvalidBlockHeader
	}

	err := blockdigest.DigestFromBytes(&header.PreviousBlock, record[previousBlockOffset:merkleRootOffset])
	if nil != err {
		return nil, err
	}
	err = merkle.DigestFromBytes(&header.MerkleRoot, record[merkleRootOffset:timestampOffset])
	if nil != err {
		return nil, err
	}

	header.Timestamp = binary.LittleEndian.Uint64(record[timestampOffset:difficultyOffset])

	bits := binary.LittleEndian.Uint64(record[difficultyOffset:nonceOffset])
	if bits > 0xffffffff || !difficulty.ValidBits(uint32(bits)) {
		return nil, fault.InvalidDifficulty
	}
	header.Difficulty.SetBits(uint32(bits))

	header.Nonce = NonceType(binary.LittleEndian.Uint64(record[nonceOffset:]))

	return header, nil
}

// Digest - the proof-of-work digest of a packed header
func (record PackedHeader) Digest() blockdigest.Digest {
	return blockdigest.NewDigest(record[:])
}
