// Package serialize renders operation results for CLI output.
package serialize

import "encoding/json"

// MarshalResult renders a value as indented JSON, used by the demo
// binary to print operation summaries (status, path, warnings).
func MarshalResult(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
