// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/difficulty"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/messagebus"
)

// blockstore - background process to store incoming mined blocks
type blockstore struct {
	log *logger.L
}

// Run - consume the blockstore queue until shutdown
func (b *blockstore) Run(args interface{}, shutdown <-chan struct{}) {

	b.log = logger.New("blockstore")
	log := b.log

	log.Info("starting…")

	queue := messagebus.Bus.Blockstore.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item := <-queue:
			switch item.Command {
			case "block":
				if 1 != len(item.Parameters) {
					log.Warnf("block with wrong parameter count: %d", len(item.Parameters))
					continue loop
				}
				err := storeIncomingBlock(item.Parameters[0])
				if nil != err {
					log.Warnf("block rejected: error: %s", err)
				}
			default:
				log.Warnf("ignore unexpected command: %q", item.Command)
			}
		}
	}

	log.Info("shutting down…")
}

// verify an incoming block against the tip and commit it
func storeIncomingBlock(packed []byte) error {

	block, err := blockrecord.PackedBlock(packed).Unpack()
	if nil != err {
		return err
	}

	err = verifyAndStore(block)
	if nil != err {
		return err
	}

	// notify outside the lock; the handler may feed a request back
	// through a queue whose consumer queries the ledger
	if nil != globalData.blockStored {
		globalData.blockStored(block)
	}

	return nil
}

func verifyAndStore(block *blockrecord.Block) error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	header := block.Header

	if header.Number != globalData.height+1 {
		return fault.InvalidBlockHeader
	}
	if header.PreviousBlock != globalData.previousBlock {
		return fault.MissingLink
	}
	if header.Difficulty.Bits() != difficulty.Current.Bits() {
		return fault.InvalidDifficulty
	}

	packedHeader := header.Pack()
	if packedHeader.Digest().Cmp(header.Difficulty.BigInt()) > 0 {
		return fault.DifficultyNotMet
	}

	err := storeBlock(block)
	if nil != err {
		return err
	}

	globalData.log.Infof("stored block: %d  transactions: %d", header.Number, len(block.Transactions))

	return nil
}
