// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package terminator - level-triggered cancellation flag
//
// A single flag is shared by the whole node.  Setting it stops new
// mining attempts from starting and is polled by an in-progress
// attempt so it can abort early; the worker is never killed.
// Clearing the flag re-enables mining on the next scheduler tick.
package terminator

import (
	"sync/atomic"
)

// Flag - a one-bit level signal safe for concurrent use
type Flag uint32

// Set - raise the flag
func (f *Flag) Set() {
	atomic.StoreUint32((*uint32)(f), 1)
}

// Clear - lower the flag
func (f *Flag) Clear() {
	atomic.StoreUint32((*uint32)(f), 0)
}

// IsSet - check the flag
func (f *Flag) IsSet() bool {
	return 0 != atomic.LoadUint32((*uint32)(f))
}
