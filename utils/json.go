package utils

import (
	"encoding/json"
	"fmt"
)

// FormatJSON renders v as indented JSON for terminal display.
func FormatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
