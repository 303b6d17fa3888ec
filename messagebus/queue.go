// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/argentite/argentd/fault"
)

// Message - the messages to be sent on a queue
type Message struct {
	Command    string   // name of the action to perform
	Parameters [][]byte // list of arbitrary data
}

// Queue - a 1:1 bounded queue
type Queue struct {
	c    chan Message
	size int
}

// the named queues
//
// the size tag sets the queue depth; adjust here when a consumer
// needs more buffering
type busses struct {
	Broadcast  *Queue `size:"1000"` // to propagate transactions to peers
	Blockstore *Queue `size:"50"`   // to store mined blocks in the ledger
	TestQueue  *Queue `size:"50"`   // for testing use
}

// Bus - all of the queues
var Bus busses

// on startup: create all queues with their tagged sizes
func init() {
	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)
		sizeTag := fieldInfo.Tag.Get("size")

		size, err := strconv.Atoi(sizeTag)
		if nil != err || size <= 0 {
			m := fmt.Sprintf("queue: %s has invalid size tag: %q", fieldInfo.Name, sizeTag)
			panic(m)
		}

		q := &Queue{
			c:    make(chan Message, size),
			size: size,
		}
		busValue.Field(i).Set(reflect.ValueOf(q))
	}
}

// Send - block until the queue accepts the message
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// TrySend - queue a message without blocking
//
// returns fault.QueueIsFull if the consumer has fallen behind; the
// caller decides whether that is fatal
func (queue *Queue) TrySend(command string, parameters ...[]byte) error {
	select {
	case queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}:
		return nil
	default:
		return fault.QueueIsFull
	}
}

// Chan - channel to read from the queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Size - the queue depth
func (queue *Queue) Size() int {
	return queue.size
}

// Release - discard all pending messages
//
// only for use by tests to reset the bus between cases
func (queue *Queue) Release() {
	for {
		select {
		case <-queue.c:
		default:
			return
		}
	}
}
