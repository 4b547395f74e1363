// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fserr

import (
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name      string
		err       Error
		errorType string
		errorCode codes.Code
	}{
		{"Execution Error", NewExecutionError("bigquery", fmt.Errorf("test error")), EXECUTION_ERROR, codes.Internal},
		{"Datatype Not Found Error", NewDataTypeNotFoundError("decimal", fmt.Errorf("test error")), DATATYPE_NOT_FOUND, codes.NotFound},
		{"Internal Error", NewInternalError(fmt.Errorf("test error")), INTERNAL_ERROR, codes.Internal},
		{"Invalid Argument Error", NewInvalidArgumentError(fmt.Errorf("test error")), INVALID_ARGUMENT, codes.InvalidArgument},
		{"Invalid Config Error", NewInvalidConfigError(fmt.Errorf("test error")), INVALID_ARGUMENT, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.GetType() != tt.errorType {
				t.Errorf("GetType() = %v, want %v", tt.err.GetType(), tt.errorType)
			}
			if tt.err.GetCode() != tt.errorCode {
				t.Errorf("GetCode() = %v, want %v", tt.err.GetCode(), tt.errorCode)
			}
		})
	}
}

func TestAddDetail(t *testing.T) {
	err := NewInvalidArgumentError(fmt.Errorf("test error"))
	err.AddDetail("Feature Name", "test_feature")
	if err.Details()["feature_name"] != "test_feature" {
		t.Errorf("AddDetail() did not normalize key, details = %v", err.Details())
	}
}

func TestToErrCarriesDetails(t *testing.T) {
	execErr := NewExecutionError("bigquery", fmt.Errorf("quota exceeded"))
	grpcErr := execErr.ToErr()

	st, ok := status.FromError(grpcErr)
	if !ok {
		t.Fatalf("ToErr() did not produce a grpc status error")
	}
	if st.Code() != codes.Internal {
		t.Errorf("status code = %v, want %v", st.Code(), codes.Internal)
	}
	found := false
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			found = true
			if info.Reason != EXECUTION_ERROR {
				t.Errorf("reason = %v, want %v", info.Reason, EXECUTION_ERROR)
			}
			if info.Metadata["provider"] != "bigquery" {
				t.Errorf("metadata = %v, want provider=bigquery", info.Metadata)
			}
		}
	}
	if !found {
		t.Errorf("ErrorInfo detail missing from status")
	}
}

func TestNilInnerError(t *testing.T) {
	err := NewInternalError(nil)
	if err.Error() == "" {
		t.Errorf("expected a default message for nil inner error")
	}
}

func TestMissingConfigOption(t *testing.T) {
	err := NewMissingConfigOption("datasetId")
	if err.GetCode() != codes.InvalidArgument {
		t.Errorf("GetCode() = %v, want %v", err.GetCode(), codes.InvalidArgument)
	}
}
