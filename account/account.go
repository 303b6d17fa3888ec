// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - addresses that can own mined coins
//
// An address is the Base58 form of: key variant byte, 32 byte public
// key, 4 byte SHA3-256 checksum.  The variant byte carries the
// public key marker and the test network bit.
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/argentite/argentd/fault"
)

// miscellaneous constants
const (
	checksumLength  = 4
	publicKeyLength = 32

	// bits in the key variant byte starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02
)

// Address - an account address that can receive mining rewards
type Address struct {
	Test      bool
	PublicKey []byte
}

// NewAddress - create an address from a raw public key
func NewAddress(publicKey []byte, test bool) (*Address, error) {
	if publicKeyLength != len(publicKey) {
		return nil, fault.InvalidRecipient
	}
	k := make([]byte, publicKeyLength)
	copy(k, publicKey)
	return &Address{
		Test:      test,
		PublicKey: k,
	}, nil
}

// AddressFromBase58 - decode and validate a Base58 encoded address
func AddressFromBase58(addressBase58Encoded string) (*Address, error) {

	decoded, err := base58.Decode(addressBase58Encoded)
	if nil != err {
		return nil, fault.InvalidRecipient
	}
	return AddressFromBytes(decoded)
}

// AddressFromBytes - decode and validate the binary form
func AddressFromBytes(buffer []byte) (*Address, error) {

	if 1+publicKeyLength+checksumLength != len(buffer) {
		return nil, fault.InvalidRecipient
	}

	keyVariant := buffer[0]
	if publicKeyCode != keyVariant&publicKeyCode {
		return nil, fault.InvalidRecipient
	}

	checksumStart := len(buffer) - checksumLength
	checksum := sha3.Sum256(buffer[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], buffer[checksumStart:]) {
		return nil, fault.InvalidRecipient
	}

	k := make([]byte, publicKeyLength)
	copy(k, buffer[1:checksumStart])
	return &Address{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: k,
	}, nil
}

// Bytes - the binary form: variant, key, checksum
func (address *Address) Bytes() []byte {
	keyVariant := byte(publicKeyCode)
	if address.Test {
		keyVariant |= testKeyCode
	}
	buffer := make([]byte, 0, 1+publicKeyLength+checksumLength)
	buffer = append(buffer, keyVariant)
	buffer = append(buffer, address.PublicKey...)
	checksum := sha3.Sum256(buffer)
	return append(buffer, checksum[:checksumLength]...)
}

// String - the Base58 form for display and configuration files
func (address *Address) String() string {
	return base58.Encode(address.Bytes())
}

// MarshalText - for JSON encoding
func (address *Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}
