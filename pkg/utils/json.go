package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata structs ou JSON bruto com indentação por tabs
func PrettyJson(in any) string {
	value := in
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		value = decoded
	}

	out, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return err.Error()
	}

	return string(out)
}
