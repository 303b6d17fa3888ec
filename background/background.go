// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - registry for the node's long-running tasks
//
// Each process is started in its own goroutine and is handed a
// shutdown channel; the process must return promptly after the
// channel is closed.
package background

// T - handle to a set of started background processes
type T struct {
	finished chan struct{}
	shutdown chan struct{}
	count    int
}

// Process - interface to define a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finished: make(chan struct{}),
		shutdown: make(chan struct{}),
		count:    len(processes),
	}

	// start each background
	for _, p := range processes {
		go func(p Process) {
			// pass the shutdown to the Run loop
			// to allow shutdown of long-running processes,
			// flag the finished when the Run exits
			p.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(p)
	}

	return register
}

// Stop - stop a set of background processes
// and wait for them all to terminate
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.shutdown)

	// wait for them all to finish
	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
