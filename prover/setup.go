// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prover

import (
	"math/rand"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/argentite/argentd/account"
	"github.com/argentite/argentd/background"
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/mempool"
	"github.com/argentite/argentd/merkle"
	"github.com/argentite/argentd/mode"
	"github.com/argentite/argentd/terminator"
	"github.com/argentite/argentd/transactionrecord"
)

// Ledger - the chain operations the prover depends on
type Ledger interface {
	ContainsTransaction(txId merkle.Digest) (bool, error)
	MineNextBlock(recipient *account.Address, transactions []transactionrecord.Packed, stop *terminator.Flag, rng *rand.Rand) (*blockrecord.Block, error)
}

// Configuration - prover settings from the configuration file
type Configuration struct {
	Miner     bool   `gluamapper:"miner" json:"miner"`
	Recipient string `gluamapper:"recipient" json:"recipient"`
}

// incoming request queue size
const requestQueueSize = 1024

// globals for this module
type proverData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	ledger    Ledger
	stop      *terminator.Flag
	recipient *account.Address

	pool     *mempool.Pool
	requests chan Request
	jobs     chan *miningJob

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

var globalData proverData

// Initialise - start the prover
//
// the router and the worker pool always run; the mining scheduler
// runs only when the miner role is enabled and a recipient address
// is configured
func Initialise(configuration *Configuration, ld Ledger, stop *terminator.Flag) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("prover")
	globalData.log = log
	log.Info("starting…")

	globalData.ledger = ld
	globalData.stop = stop
	globalData.recipient = nil
	globalData.pool = mempool.New()
	globalData.requests = make(chan Request, requestQueueSize)
	globalData.jobs = make(chan *miningJob)

	processes := background.Processes{
		&commandRouter{},
	}
	for i := 0; i < workerCount(); i += 1 {
		processes = append(processes, &worker{number: i + 1})
	}

	if configuration.Miner {
		if "" == configuration.Recipient {
			log.Error("miner enabled but no recipient address is configured")
		} else {
			recipient, err := account.AddressFromBase58(configuration.Recipient)
			if nil != err {
				return err
			}
			if recipient.Test != mode.IsTesting() {
				return fault.WrongNetworkForRecipient
			}
			globalData.recipient = recipient
			processes = append(processes, &miningScheduler{})
			log.Infof("mining to recipient: %s", recipient)
		}
	}

	globalData.initialised = true

	// start background processes
	log.Info("start background…")
	globalData.background = background.Start(processes, log)

	return nil
}

// Finalise - stop all prover processes
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.Lock()
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Submit - enqueue a request for the router
//
// blocks while the queue is full to apply backpressure to callers
func Submit(request Request) error {
	globalData.RLock()
	if !globalData.initialised {
		globalData.RUnlock()
		return fault.NotInitialised
	}
	queue := globalData.requests
	globalData.RUnlock()

	queue <- request
	return nil
}

// MempoolSize - number of unconfirmed transactions currently held
func MempoolSize() int {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == globalData.pool {
		return 0
	}
	return globalData.pool.Size()
}

// InMempool - check if an unconfirmed transaction is currently held
func InMempool(txId merkle.Digest) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == globalData.pool {
		return false
	}
	return globalData.pool.Has(txId)
}
