// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package specs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFeatures(t *testing.T) {
	entity := EntitySpec{Name: "driver"}

	tests := []struct {
		name     string
		features []FeatureSpec
		wantErr  bool
	}{
		{
			"All Matching",
			[]FeatureSpec{
				{Name: "trips_today", Entity: "driver", ValueType: Int64},
				{Name: "rating", Entity: "driver", ValueType: Double},
			},
			false,
		},
		{
			"Empty Features",
			nil,
			false,
		},
		{
			"Foreign Entity",
			[]FeatureSpec{
				{Name: "trips_today", Entity: "driver", ValueType: Int64},
				{Name: "order_total", Entity: "order", ValueType: Double},
			},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeatures(entity, tt.features)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseValueType(t *testing.T) {
	tests := []struct {
		raw     string
		want    ValueType
		wantErr bool
	}{
		{"int64", Int64, false},
		{"STRING", String, false},
		{"Timestamp", Timestamp, false},
		{"decimal", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseValueType(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSpecs(t *testing.T) {
	dir := t.TempDir()

	entityPath := filepath.Join(dir, "entity.yaml")
	writeFile(t, entityPath, "name: driver\ndescription: driver of a ride\n")

	featuresPath := filepath.Join(dir, "features.yaml")
	writeFile(t, featuresPath, `
- name: trips_today
  entity: driver
  valueType: int64
- name: rating
  entity: driver
  valueType: double
  description: average driver rating
`)

	storagePath := filepath.Join(dir, "storage.yaml")
	writeFile(t, storagePath, `
type: BIGQUERY
options:
  datasetId: feature_warehouse
  projectId: my-gcp-project
`)

	entity, err := LoadEntitySpec(entityPath)
	require.NoError(t, err)
	assert.Equal(t, "driver", entity.Name)

	features, err := LoadFeatureSpecs(featuresPath)
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, Int64, features[0].ValueType)
	assert.Equal(t, "average driver rating", features[1].Description)

	storage, err := LoadStorageSpec(storagePath)
	require.NoError(t, err)
	assert.Equal(t, "BIGQUERY", storage.Type)
	assert.Equal(t, "feature_warehouse", storage.Option("datasetId"))
}

func TestLoadSpecErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadEntitySpec(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badTypePath := filepath.Join(dir, "bad_type.yaml")
	writeFile(t, badTypePath, "- name: f\n  entity: e\n  valueType: decimal\n")
	_, err = LoadFeatureSpecs(badTypePath)
	assert.Error(t, err)

	unnamedPath := filepath.Join(dir, "unnamed.yaml")
	writeFile(t, unnamedPath, "description: nameless\n")
	_, err = LoadEntitySpec(unnamedPath)
	assert.Error(t, err)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
