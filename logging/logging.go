// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Logger struct {
	*zap.SugaredLogger
	values map[string]interface{}
}

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.New().String())
}

func (logger Logger) WithRequestID(id RequestID) Logger {
	return logger.with("request-id", string(id))
}

func (logger Logger) WithProvider(providerType, providerName string) Logger {
	return logger.with("provider-type", providerType).with("provider-name", providerName)
}

func (logger Logger) WithEntity(entityName string) Logger {
	return logger.with("entity-name", entityName)
}

func (logger Logger) WithDestination(projectID, datasetID, tableID string) Logger {
	return logger.with("project-id", projectID).with("dataset-id", datasetID).with("table-id", tableID)
}

func (logger Logger) GetValue(key string) interface{} {
	return logger.values[key]
}

func (logger Logger) with(key string, value interface{}) Logger {
	values := make(map[string]interface{}, len(logger.values)+1)
	for k, v := range logger.values {
		values[k] = v
	}
	values[key] = value
	return Logger{
		SugaredLogger: logger.With(key, value),
		values:        values,
	}
}

func NewLogger(service string) Logger {
	baseLogger, err := zap.NewDevelopment(
		zap.AddStacktrace(zap.ErrorLevel),
	)
	if err != nil {
		panic(err)
	}
	logger := baseLogger.Sugar().Named(service)
	return Logger{
		SugaredLogger: logger,
		values:        map[string]interface{}{},
	}
}

func NewTestLogger() Logger {
	return Logger{
		SugaredLogger: zap.NewNop().Sugar(),
		values:        map[string]interface{}{},
	}
}
