// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package provider_config

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"

	"github.com/featsink/featsink/fserr"
)

// Storage spec option keys recognized by the BigQuery destination.
const (
	DatasetIdOption = "datasetId"
	ProjectIdOption = "projectId"
)

type BigQueryConfig struct {
	ProjectId   string
	DatasetId   string
	Credentials map[string]interface{}
}

func (bq *BigQueryConfig) Deserialize(config SerializedConfig) error {
	err := json.Unmarshal(config, bq)
	if err != nil {
		return fserr.NewInvalidConfigError(err)
	}
	return nil
}

func (bq *BigQueryConfig) Serialize() ([]byte, error) {
	conf, err := json.Marshal(bq)
	if err != nil {
		return nil, fserr.NewInternalError(err)
	}
	return conf, nil
}

// BigQueryConfigFromOptions decodes the string-keyed storage spec options into
// a typed config. Validation happens here, once, so the provisioner never does
// late-bound option lookups.
func BigQueryConfigFromOptions(options map[string]string) (BigQueryConfig, error) {
	var config BigQueryConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &config,
	})
	if err != nil {
		return BigQueryConfig{}, fserr.NewInternalError(err)
	}
	if err := decoder.Decode(options); err != nil {
		return BigQueryConfig{}, fserr.NewInvalidConfigError(err)
	}
	if err := config.Validate(); err != nil {
		return BigQueryConfig{}, err
	}
	return config, nil
}

func (bq *BigQueryConfig) Validate() error {
	if bq.DatasetId == "" {
		return fserr.NewMissingConfigOption(DatasetIdOption)
	}
	return nil
}
