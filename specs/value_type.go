// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package specs

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/featsink/featsink/fserr"
)

type ValueType string

const (
	Bytes     ValueType = "bytes"
	String    ValueType = "string"
	Int32     ValueType = "int32"
	Int64     ValueType = "int64"
	Double    ValueType = "double"
	Float     ValueType = "float"
	Bool      ValueType = "bool"
	Timestamp ValueType = "timestamp"
)

var ValueTypes = map[ValueType]bool{
	Bytes:     true,
	String:    true,
	Int32:     true,
	Int64:     true,
	Double:    true,
	Float:     true,
	Bool:      true,
	Timestamp: true,
}

func (t ValueType) String() string {
	return string(t)
}

func ParseValueType(raw string) (ValueType, error) {
	t := ValueType(strings.ToLower(raw))
	if !ValueTypes[t] {
		return "", fserr.NewDataTypeNotFoundError(raw, nil)
	}
	return t, nil
}

func (t *ValueType) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseValueType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
