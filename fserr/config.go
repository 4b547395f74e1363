// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fserr

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

func NewMissingConfigOption(option string) *InvalidConfigError {
	return NewInvalidConfigf("Option %s must be set", option)
}

func NewInvalidConfigf(format string, a ...any) *InvalidConfigError {
	err := fmt.Errorf("Failed to Parse Config: "+format, a...)
	baseError := newBaseError(err, INVALID_ARGUMENT, codes.InvalidArgument)
	return &InvalidConfigError{
		baseError,
	}
}

func NewInvalidConfigError(err error) *InvalidConfigError {
	if err == nil {
		err = fmt.Errorf("invalid config")
	}
	baseError := newBaseError(err, INVALID_ARGUMENT, codes.InvalidArgument)
	return &InvalidConfigError{
		baseError,
	}
}

type InvalidConfigError struct {
	baseError
}
