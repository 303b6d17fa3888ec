// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Argentite = "argentite"
	Testing   = "testing"
	Local     = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Argentite, Testing, Local:
		return true
	default:
		return false
	}
}
