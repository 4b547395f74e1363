// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package specs

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/featsink/featsink/fserr"
)

func LoadEntitySpec(path string) (EntitySpec, error) {
	var spec EntitySpec
	if err := loadYAML(path, &spec); err != nil {
		return EntitySpec{}, err
	}
	if spec.Name == "" {
		return EntitySpec{}, fserr.NewInvalidConfigf("entity spec %s has no name", path)
	}
	return spec, nil
}

// LoadFeatureSpecs reads a YAML file containing a list of feature specs.
func LoadFeatureSpecs(path string) ([]FeatureSpec, error) {
	var specList []FeatureSpec
	if err := loadYAML(path, &specList); err != nil {
		return nil, err
	}
	for _, spec := range specList {
		if spec.Name == "" {
			return nil, fserr.NewInvalidConfigf("feature spec in %s has no name", path)
		}
	}
	return specList, nil
}

func LoadStorageSpec(path string) (StorageSpec, error) {
	var spec StorageSpec
	if err := loadYAML(path, &spec); err != nil {
		return StorageSpec{}, err
	}
	if spec.Options == nil {
		spec.Options = map[string]string{}
	}
	return spec, nil
}

func loadYAML(path string, out interface{}) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fserr.NewInvalidConfigError(err)
	}
	if err := yaml.Unmarshal(contents, out); err != nil {
		return fserr.NewInvalidConfigError(err)
	}
	return nil
}
