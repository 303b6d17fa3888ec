// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prover

import (
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/transactionrecord"
)

// Request - a command for the prover's router
//
// requests are processed one at a time in submission order
type Request interface {
	request()
}

// MemoryPoolClear - drop the transactions confirmed by a block, or
// every pool entry when Block is nil
type MemoryPoolClear struct {
	Block *blockrecord.Block
}

// UnconfirmedTransaction - a candidate transaction for admission
//
// Peer names the connection it arrived on and is excluded from
// propagation; it is empty for locally submitted transactions
type UnconfirmedTransaction struct {
	Peer        string
	Transaction transactionrecord.Packed
}

func (MemoryPoolClear) request() {}

func (UnconfirmedTransaction) request() {}
