// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - compact difficulty representation
//
// The short packed form is the familiar exponent/mantissa encoding:
// the high byte is a base 256 exponent, the low three bytes the
// mantissa.  The expanded form is the 256 bit threshold a block
// digest must not exceed.
package difficulty

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/bitmark-inc/logger"
)

// DefaultUint32 - the difficulty of the genesis block
const DefaultUint32 = 0x1d00ffff

// TestingUint32 - an always-satisfiable difficulty for the test and
// local chains so blocks can be mined instantly
const TestingUint32 = 0x217fffff

// Difficulty - current difficulty with its expanded threshold
type Difficulty struct {
	sync.RWMutex

	big  big.Int // master value: 256 bit threshold
	bits uint32  // cache: short packed form
}

// Current - the difficulty in effect for mining and validation
var Current = New()

// New - create a difficulty with the default value
func New() *Difficulty {
	d := new(Difficulty)
	return d.SetBits(DefaultUint32)
}

// Bits - difficulty as short packed value
func (difficulty *Difficulty) Bits() uint32 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.bits
}

// BigInt - difficulty as the 256 bit threshold
func (difficulty *Difficulty) BigInt() *big.Int {
	difficulty.RLock()
	defer difficulty.RUnlock()
	d := new(big.Int)
	return d.Set(&difficulty.big)
}

// String - the big endian hex encoded short packed value
func (difficulty *Difficulty) String() string {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return fmt.Sprintf("%08x", difficulty.bits)
}

// GoString - for the %#v format use the 256 bit value
func (difficulty *Difficulty) GoString() string {
	return fmt.Sprintf("%064x", difficulty.BigInt())
}

// ValidBits - check that a short packed value is in range
func ValidBits(u uint32) bool {
	exponent := 8 * (int(u>>24)&0xff - 3)
	mantissa := int64(u & 0x00ffffff)
	return mantissa <= 0x7fffff && mantissa >= 0x008000 && exponent >= 0 && exponent <= 240
}

// SetBits - set from the short packed form
func (difficulty *Difficulty) SetBits(u uint32) *Difficulty {

	if !ValidBits(u) {
		logger.Panicf("difficulty.SetBits(0x%08x) invalid value", u)
	}

	exponent := 8 * (int(u>>24)&0xff - 3)
	mantissa := int64(u & 0x00ffffff)
	d := big.NewInt(mantissa)
	d.Lsh(d, uint(exponent))

	// modify cache
	difficulty.Lock()
	defer difficulty.Unlock()

	difficulty.big.Set(d)
	difficulty.bits = u

	return difficulty
}
