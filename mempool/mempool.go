// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool - the set of verified but unconfirmed transactions
//
// the pool itself is not locked; the owner is responsible for
// serialising access
package mempool

import (
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/merkle"
	"github.com/argentite/argentd/transactionrecord"
)

// Pool - map of transaction id to its packed record
type Pool struct {
	entries map[merkle.Digest]transactionrecord.Packed
}

// New - create an empty pool
func New() *Pool {
	return &Pool{
		entries: make(map[merkle.Digest]transactionrecord.Packed),
	}
}

// Add - insert a packed transaction keyed by its id
func (pool *Pool) Add(packed transactionrecord.Packed) error {
	txId := packed.TxId()
	if _, ok := pool.entries[txId]; ok {
		return fault.TransactionAlreadyExists
	}
	pool.entries[txId] = packed
	return nil
}

// Has - check if a transaction id is present
func (pool *Pool) Has(txId merkle.Digest) bool {
	_, ok := pool.entries[txId]
	return ok
}

// Remove - drop a set of transaction ids, ignoring any that are absent
func (pool *Pool) Remove(txIds ...merkle.Digest) {
	for _, txId := range txIds {
		delete(pool.entries, txId)
	}
}

// Clear - drop every entry
func (pool *Pool) Clear() {
	pool.entries = make(map[merkle.Digest]transactionrecord.Packed)
}

// Transactions - copy out the current contents
//
// map iteration order is not stable so neither is the snapshot order
func (pool *Pool) Transactions() []transactionrecord.Packed {
	transactions := make([]transactionrecord.Packed, 0, len(pool.entries))
	for _, packed := range pool.entries {
		transactions = append(transactions, packed)
	}
	return transactions
}

// Size - number of entries in the pool
func (pool *Pool) Size() int {
	return len(pool.entries)
}
