// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prover

import (
	"github.com/bitmark-inc/logger"

	"github.com/argentite/argentd/messagebus"
	"github.com/argentite/argentd/mode"
)

// commandRouter - background process serialising pool updates
type commandRouter struct {
	log *logger.L
}

// Run - consume the request queue until shutdown
func (r *commandRouter) Run(args interface{}, shutdown <-chan struct{}) {

	r.log = logger.New("router")
	log := r.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case request := <-globalData.requests:
			r.process(request)
		}
	}

	log.Info("shutting down…")
}

// dispatch one request
func (r *commandRouter) process(request Request) {
	switch request := request.(type) {

	case MemoryPoolClear:
		globalData.Lock()
		if nil == request.Block {
			globalData.pool.Clear()
			r.log.Debug("memory pool cleared")
		} else {
			globalData.pool.Remove(request.Block.TxIds()...)
			r.log.Debugf("dropped transactions of block: %d", request.Block.Header.Number)
		}
		globalData.Unlock()

	case UnconfirmedTransaction:
		// the pool only accumulates on a synchronised node
		if mode.Is(mode.Peering) {
			r.log.Debug("drop transaction: still peering")
			return
		}
		r.admit(request)

	default:
		r.log.Warnf("ignore unexpected request: %v", request)
	}
}

// admission control for one unconfirmed transaction
//
// only a definite "not confirmed" answer admits; a confirmed
// transaction or a failed ledger query skips the transaction without
// reporting back to the submitter
func (r *commandRouter) admit(request UnconfirmedTransaction) {

	txId := request.Transaction.TxId()

	confirmed, err := globalData.ledger.ContainsTransaction(txId)
	if nil != err {
		r.log.Debugf("skip transaction: %v  ledger error: %s", txId, err)
		return
	}
	if confirmed {
		r.log.Debugf("skip transaction: %v  already confirmed", txId)
		return
	}

	globalData.Lock()
	err = globalData.pool.Add(request.Transaction)
	globalData.Unlock()
	if nil != err {
		r.log.Debugf("pool add: %v  error: %s", txId, err)
		return
	}

	r.log.Infof("accepted transaction: %v", txId)

	// propagate to everyone except the origin peer; a full queue
	// does not undo the admission
	err = messagebus.Bus.Broadcast.TrySend("transaction", request.Transaction.Bytes(), []byte(request.Peer))
	if nil != err {
		r.log.Warnf("propagate transaction: %v  error: %s", txId, err)
	}
}
