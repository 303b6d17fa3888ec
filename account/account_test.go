// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/fault"
)

func makeKey(fill byte) []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = fill
	}
	return key
}

func TestAddressRoundTrip(t *testing.T) {

	for _, test := range []bool{false, true} {
		address, err := account.NewAddress(makeKey(0x5a), test)
		assert.NoError(t, err, "new address failed")
		assert.Equal(t, test, address.Test, "wrong network bit")

		decoded, err := account.AddressFromBase58(address.String())
		assert.NoError(t, err, "decode failed")
		assert.Equal(t, address.Test, decoded.Test, "network bit lost")
		assert.Equal(t, address.PublicKey, decoded.PublicKey, "public key lost")
	}
}

func TestAddressBadKeyLength(t *testing.T) {
	_, err := account.NewAddress([]byte{1, 2, 3}, false)
	assert.Equal(t, fault.InvalidRecipient, err, "short key accepted")
}

func TestAddressBadChecksum(t *testing.T) {

	address, err := account.NewAddress(makeKey(0x33), true)
	assert.NoError(t, err, "new address failed")

	// flipping a leading base58 character breaks the checksum
	text := address.String()
	corrupt := "2" + text[1:]
	if corrupt == text {
		corrupt = "3" + text[1:]
	}
	_, err = account.AddressFromBase58(corrupt)
	assert.Error(t, err, "corrupt address accepted")
}

func TestAddressFromBase58Invalid(t *testing.T) {
	_, err := account.AddressFromBase58("")
	assert.Error(t, err, "empty address accepted")

	_, err = account.AddressFromBase58("0OIl")
	assert.Error(t, err, "non-base58 text accepted")

	_, err = account.AddressFromBase58("abc")
	assert.Error(t, err, "short address accepted")
}
