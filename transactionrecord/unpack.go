// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/fault"
)

// Unpack - decode a packed transaction
//
// the entire buffer must be consumed, trailing bytes are an error
func (p Packed) Unpack() (*Transaction, error) {

	tx, used, err := p.unpack()
	if nil != err {
		return nil, err
	}
	if used != len(p) {
		return nil, fault.InvalidTransactionPayload
	}
	return tx, nil
}

// internal decode, returns bytes consumed
func (p Packed) unpack() (*Transaction, int, error) {

	offset := 0

	tag, n := binary.Uvarint(p[offset:])
	if n <= 0 || TagType(tag) <= NullTag || TagType(tag) >= InvalidTag {
		return nil, 0, fault.InvalidTransactionPayload
	}
	offset += n

	ownerLength, n := binary.Uvarint(p[offset:])
	if n <= 0 {
		return nil, 0, fault.InvalidTransactionPayload
	}
	offset += n
	if offset+int(ownerLength) > len(p) {
		return nil, 0, fault.InvalidTransactionPayload
	}
	owner, err := account.AddressFromBytes(p[offset : offset+int(ownerLength)])
	if nil != err {
		return nil, 0, err
	}
	offset += int(ownerLength)

	payloadLength, n := binary.Uvarint(p[offset:])
	if n <= 0 || payloadLength > maxPayloadLength {
		return nil, 0, fault.InvalidTransactionPayload
	}
	offset += n
	if offset+int(payloadLength) > len(p) {
		return nil, 0, fault.InvalidTransactionPayload
	}
	var payload []byte
	if payloadLength > 0 {
		payload = make([]byte, payloadLength)
		copy(payload, p[offset:offset+int(payloadLength)])
	}
	offset += int(payloadLength)

	nonce, n := binary.Uvarint(p[offset:])
	if n <= 0 {
		return nil, 0, fault.InvalidTransactionPayload
	}
	offset += n

	tx := &Transaction{
		Tag:     TagType(tag),
		Owner:   owner,
		Payload: payload,
		Nonce:   nonce,
	}
	return tx, offset, nil
}
