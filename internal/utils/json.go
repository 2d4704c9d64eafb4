package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeJSON строго разбирает data в dst: неизвестные поля считаются ошибкой.
func DecodeJSON(data []byte, dst interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
