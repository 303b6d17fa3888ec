// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package terminator_test

import (
	"sync"
	"testing"

	"github.com/argentite/argentd/terminator"
)

func TestFlag(t *testing.T) {

	flag := new(terminator.Flag)

	if flag.IsSet() {
		t.Fatal("new flag must be clear")
	}

	flag.Set()
	if !flag.IsSet() {
		t.Fatal("flag not set")
	}

	// setting twice stays set
	flag.Set()
	if !flag.IsSet() {
		t.Fatal("flag not set after second set")
	}

	flag.Clear()
	if flag.IsSet() {
		t.Fatal("flag not cleared")
	}
}

func TestFlagConcurrent(t *testing.T) {

	flag := new(terminator.Flag)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				flag.Set()
				_ = flag.IsSet()
				flag.Clear()
			}
		}()
	}
	wg.Wait()

	if flag.IsSet() {
		t.Fatal("flag must end clear")
	}
}
