package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ImageList ensures the images field can be decoded whether stored as a
// single string or an array of strings.
type ImageList []string

// UnmarshalJSON accepts both string and array values, allowing legacy
// product documents that only carried a single image to be decoded without
// failing the entire collection.
func (l *ImageList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*l = values
		return nil
	}

	if strings.HasPrefix(trimmed, "\"") {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}

		value = strings.TrimSpace(value)
		if value == "" {
			*l = []string{}
			return nil
		}

		*l = []string{value}
		return nil
	}

	return fmt.Errorf("cannot decode %s into ImageList", trimmed)
}
