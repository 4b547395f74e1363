// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fserr

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

func NewDataTypeNotFoundError(valueType string, err error) *DataTypeNotFoundError {
	if err == nil {
		err = fmt.Errorf("datatype not found")
	}
	baseError := newBaseError(err, DATATYPE_NOT_FOUND, codes.NotFound)
	baseError.AddDetail("value_type", valueType)

	return &DataTypeNotFoundError{
		baseError,
	}
}

type DataTypeNotFoundError struct {
	baseError
}
