// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - this class of error is returned when adding a
	// duplicate item
	ExistsError GenericError

	// InvalidError - this class of error is returned for invalid
	// parameters or data
	InvalidError GenericError

	// NotFoundError - this class of error is returned when an item
	// is not found
	NotFoundError GenericError

	// ProcessError - this class of error is returned when processing
	// a valid item fails
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised         = ProcessError("already initialised")
	BlockNotFound              = NotFoundError("block not found")
	DifficultyNotMet           = InvalidError("difficulty not met")
	InvalidBlockHeader         = InvalidError("invalid block header")
	InvalidChain               = InvalidError("invalid chain")
	InvalidCount               = InvalidError("invalid count")
	InvalidDifficulty          = InvalidError("invalid difficulty")
	InvalidRecipient           = InvalidError("invalid recipient address")
	InvalidTransactionPayload  = InvalidError("invalid transaction payload")
	MiningTerminated           = ProcessError("mining terminated")
	MissingLink                = InvalidError("missing link to previous block")
	MissingOwner               = InvalidError("missing transaction owner")
	NotInitialised             = ProcessError("not initialised")
	QueueIsFull                = ProcessError("queue is full")
	TransactionAlreadyExists   = ExistsError("transaction already exists")
	TransactionIsConfirmed     = ExistsError("transaction is confirmed")
	TransactionIsNotConfirmed  = NotFoundError("transaction is not confirmed")
	WrongNetworkForRecipient   = InvalidError("wrong network for recipient")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string { return string(e) }

// Error - the error interface methods
func (e InvalidError) Error() string { return string(e) }

// Error - the error interface methods
func (e NotFoundError) Error() string { return string(e) }

// Error - the error interface methods
func (e ProcessError) Error() string { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
