// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prover - the mining subsystem
//
// holds the memory pool of unconfirmed transactions and drives the
// proof-of-work attempts
//
// all pool changes flow through a single command router consuming a
// bounded request queue, so they apply in submission order; the node
// mode and the terminator flag are read directly and are not
// serialised through the queue
//
// a scheduler wakes every two seconds and, when the node is ready
// and not terminating, hands one mining attempt to a dedicated
// worker pool; the ready/mining mode transition is the only guard
// against concurrent attempts
package prover
