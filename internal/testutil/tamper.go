package testutil

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// TamperField rewrites one field of an exported payload in place without
// touching the embedded checksum, simulating in-transit corruption or
// tampering. The path uses gjson syntax, e.g. "entries.project_name".
func TamperField(payload, path string, value any) (string, error) {
	return sjson.Set(payload, path, value)
}

// DeleteField removes one field of an exported payload in place.
func DeleteField(payload, path string) (string, error) {
	return sjson.Delete(payload, path)
}

// Field reads one field of an exported payload, e.g. "checksum" or
// "entries.vendor".
func Field(payload, path string) gjson.Result {
	return gjson.Get(payload, path)
}
