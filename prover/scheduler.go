// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prover

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/argentite/argentd/mode"
)

// time between mining attempts
const miningInterval = 2 * time.Second

// miningScheduler - background process starting mining attempts
type miningScheduler struct {
	log *logger.L
}

// Run - tick until shutdown
func (s *miningScheduler) Run(args interface{}, shutdown <-chan struct{}) {

	s.log = logger.New("scheduler")
	log := s.log

	log.Info("starting…")

	ticker := time.NewTicker(miningInterval)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-ticker.C:
			s.tick(shutdown)
		}
	}

	ticker.Stop()
	log.Info("shutting down…")
}

// start one mining attempt when the node is idle
//
// setting Mining closes the gate; the worker reopens it when the
// attempt settles, so at most one attempt is in flight
func (s *miningScheduler) tick(shutdown <-chan struct{}) {

	if globalData.stop.IsSet() {
		s.log.Debug("skip attempt: terminating")
		return
	}
	if mode.IsNot(mode.Ready) {
		return
	}

	mode.Set(mode.Mining)

	globalData.RLock()
	snapshot := globalData.pool.Transactions()
	recipient := globalData.recipient
	globalData.RUnlock()

	s.log.Debugf("start attempt: transactions: %d", len(snapshot))

	job := &miningJob{
		recipient:    recipient,
		transactions: snapshot,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// workers may already be draining at shutdown
	select {
	case globalData.jobs <- job:
	case <-shutdown:
	}
}
