// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package specs holds the entity, feature, and storage descriptors that drive
// warehouse provisioning for a feature-ingestion run.
package specs

import (
	"github.com/featsink/featsink/fserr"
)

type EntitySpec struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type FeatureSpec struct {
	Name        string    `yaml:"name" json:"name"`
	Entity      string    `yaml:"entity" json:"entity"`
	ValueType   ValueType `yaml:"valueType" json:"valueType"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
}

type StorageSpec struct {
	Type    string            `yaml:"type" json:"type"`
	Options map[string]string `yaml:"options" json:"options"`
}

func (s StorageSpec) Option(key string) string {
	return s.Options[key]
}

// ValidateFeatures checks that every feature belongs to the given entity.
// Features for a foreign entity cannot land in the entity's table.
func ValidateFeatures(entity EntitySpec, features []FeatureSpec) error {
	for _, feature := range features {
		if feature.Entity != entity.Name {
			err := fserr.NewInvalidArgumentErrorf(
				"entity specified in %s: %s is different from entity name: %s",
				feature.Name, feature.Entity, entity.Name,
			)
			err.AddDetail("feature_name", feature.Name)
			return err
		}
	}
	return nil
}
