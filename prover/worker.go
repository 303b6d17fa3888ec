// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prover

import (
	"fmt"
	"math/rand"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/messagebus"
	"github.com/argentite/argentd/mode"
	"github.com/argentite/argentd/transactionrecord"
)

// one mining attempt handed from the scheduler to a worker
type miningJob struct {
	recipient    *account.Address
	transactions []transactionrecord.Packed
	rng          *rand.Rand
}

// size of the worker pool
//
// a quarter of the machine's cores, since a proof attempt saturates
// the cores it gets; never less than one
func workerCount() int {
	n := runtime.NumCPU() / 8 * 2
	if n < 1 {
		n = 1
	}
	return n
}

// worker - background process performing mining attempts
type worker struct {
	number int
	log    *logger.L
}

// Run - take jobs until shutdown
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {

	w.log = logger.New(fmt.Sprintf("worker-%d", w.number))
	log := w.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case job := <-globalData.jobs:
			w.attempt(job)
		}
	}

	log.Info("shutting down…")
}

// run one mining attempt to completion
func (w *worker) attempt(job *miningJob) {

	block, err := globalData.ledger.MineNextBlock(job.recipient, job.transactions, globalData.stop, job.rng)

	// reopen the scheduler's gate however the attempt ended
	mode.Set(mode.Ready)

	if nil != err {
		w.log.Debugf("attempt abandoned: %s", err)
		return
	}

	packed, err := block.Pack()
	if nil != err {
		w.log.Errorf("pack mined block: %d  error: %s", block.Header.Number, err)
		return
	}

	w.log.Infof("mined block: %d  transactions: %d", block.Header.Number, len(block.Transactions))

	err = messagebus.Bus.Blockstore.TrySend("block", packed)
	if nil != err {
		w.log.Warnf("submit mined block: %d  error: %s", block.Header.Number, err)
	}
}
