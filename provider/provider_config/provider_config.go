// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package provider_config

type StorageType string

const (
	BigQuery StorageType = "BIGQUERY"
)

type SerializedConfig []byte

type ProviderConfig interface {
	Serialize() ([]byte, error)
	Deserialize(config SerializedConfig) error
}
