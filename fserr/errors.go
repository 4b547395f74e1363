// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fserr

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// PROVIDERS:
	EXECUTION_ERROR = "Execution Error"

	// DATA:
	DATATYPE_NOT_FOUND = "Datatype Not Found"

	// MISCELLANEOUS:
	INTERNAL_ERROR   = "Internal Error"
	INVALID_ARGUMENT = "Invalid Argument"
)

type JSONStackTrace map[string]interface{}

type Error interface {
	GetCode() codes.Code
	GetType() string
	ToErr() error
	AddDetail(key, value string)
	Error() string
}

func newBaseError(err error, errorType string, code codes.Code) baseError {
	if err == nil {
		err = fmt.Errorf("initial error")
	}
	genericError := NewGenericError(err)

	return baseError{
		code:         code,
		errorType:    errorType,
		GenericError: genericError,
	}
}

type baseError struct {
	code      codes.Code
	errorType string
	GenericError
}

func (e *baseError) GetCode() codes.Code {
	return e.code
}

func (e *baseError) GetType() string {
	return e.errorType
}

func (e *baseError) ToErr() error {
	st := status.New(e.code, e.msg)
	ef := &errdetails.ErrorInfo{
		Reason:   e.errorType,
		Metadata: e.details,
	}
	statusWithDetails, err := st.WithDetails(ef)
	if err == nil {
		return statusWithDetails.Err()
	}
	return st.Err()
}

func (e *baseError) GRPCStatus() *status.Status {
	return status.New(e.code, e.Error())
}

func (e *baseError) AddDetail(key, value string) {
	e.GenericError.AddDetail(key, value)
}

func (e *baseError) Error() string {
	return e.GenericError.Error()
}
