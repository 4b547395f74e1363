// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fserr

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

func NewExecutionError(providerName string, err error) *ExecutionError {
	if err == nil {
		err = fmt.Errorf("initial execution error")
	}
	baseError := newBaseError(err, EXECUTION_ERROR, codes.Internal)
	baseError.AddDetail("provider", providerName)

	return &ExecutionError{
		baseError,
	}
}

type ExecutionError struct {
	baseError
}
