// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the confirmed chain of blocks
//
// tracks the current tip, answers transaction confirmation queries,
// assembles and mines candidate blocks, and stores mined blocks
// arriving on the blockstore queue
//
// the genesis block is created on first start so the ledger is never
// empty after Initialise
package ledger
