// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/argentite/argentd/background"
	"github.com/argentite/argentd/blockdigest"
	"github.com/argentite/argentd/blockrecord"
	"github.com/argentite/argentd/difficulty"
	"github.com/argentite/argentd/fault"
	"github.com/argentite/argentd/mode"
	"github.com/argentite/argentd/storage"
)

// BlockStoredHandler - called after a block is verified and stored
// so the owner of the memory pool can drop its transactions
type BlockStoredHandler func(block *blockrecord.Block)

// globals for this module
type ledgerData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	height        uint64             // number of the block at the tip
	previousBlock blockdigest.Digest // digest of the block at the tip

	blockStored BlockStoredHandler

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

var globalData ledgerData

// Initialise - open the ledger
//
// storage and mode must already be initialised; blockStored may be
// nil when no memory pool needs notification
func Initialise(blockStored BlockStoredHandler) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.blockStored = blockStored

	// network-wide difficulty for this chain
	if mode.IsTesting() {
		difficulty.Current.SetBits(difficulty.TestingUint32)
	} else {
		difficulty.Current.SetBits(difficulty.DefaultUint32)
	}

	// recover the tip from the store, or create the chain
	last, found := storage.Pool.Blocks.LastElement()
	if found {
		header, err := unpackHeader(last.Value)
		if nil != err {
			return err
		}
		number := binary.BigEndian.Uint64(last.Key)
		if number != header.Number {
			globalData.log.Criticalf("block store corrupt: key: %d  header: %d", number, header.Number)
			return fault.InvalidBlockHeader
		}
		globalData.height = header.Number
		packedHeader := header.Pack()
		globalData.previousBlock = packedHeader.Digest()
		globalData.log.Infof("tip recovered: block: %d  digest: %v", globalData.height, globalData.previousBlock)
	} else {
		err := storeGenesisBlock()
		if nil != err {
			return err
		}
		globalData.log.Infof("genesis block created: digest: %v", globalData.previousBlock)
	}

	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&blockstore{},
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - shutdown the ledger
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

// extract just the header from a packed block
func unpackHeader(packedBlock []byte) (*blockrecord.Header, error) {
	block, err := blockrecord.PackedBlock(packedBlock).Unpack()
	if nil != err {
		return nil, err
	}
	return block.Header, nil
}
