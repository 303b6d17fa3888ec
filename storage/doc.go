// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database containing prefixed keys so
// that several logical tables can share one file store
//
// e.g. a transaction record has a key of the form:
//
//	'T' ++ txId
//
// and a block record:
//
//	'B' ++ blockNumber
//
// all access is through the handles in the Pool structure which are
// created by Initialise; the handles are nil before that call and
// after Finalise
package storage
