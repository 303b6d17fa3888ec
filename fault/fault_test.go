// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Argentite Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/argentite/argentd/fault"
)

var (
	errExistsOne   = fault.ExistsError("exists one")
	errExistsTwo   = fault.ExistsError("exists two")
	errInvalidOne  = fault.InvalidError("invalid one")
	errInvalidTwo  = fault.InvalidError("invalid two")
	errNotFoundOne = fault.NotFoundError("not found one")
	errNotFoundTwo = fault.NotFoundError("not found two")
	errProcessOne  = fault.ProcessError("process one")
	errProcessTwo  = fault.ProcessError("process two")
)

// test that the various error classes can be distinguished
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{errExistsOne, true, false, false, false},
		{errExistsTwo, true, false, false, false},
		{errInvalidOne, false, true, false, false},
		{errInvalidTwo, false, true, false, false},
		{errNotFoundOne, false, false, true, false},
		{errNotFoundTwo, false, false, true, false},
		{errProcessOne, false, false, false, true},
		{errProcessTwo, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}
