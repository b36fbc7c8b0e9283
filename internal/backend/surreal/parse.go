package surreal

import (
	"fmt"
	"regexp"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// validIdent reports whether s is safe to splice into a query as a table or
// field name. All record values go through query parameters; identifiers
// cannot, so they are restricted instead.
func validIdent(s string) bool {
	return identPattern.MatchString(s)
}

// recordIDString converts a SurrealDB record id (which may be a RecordID, a
// map, or already a string) to its table:id string form.
func recordIDString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		tb, _ := v["tb"].(string)
		if tb == "" {
			tb, _ = v["Table"].(string)
		}
		inner := ""
		if idVal, ok := v["id"]; ok {
			inner = recordIDString(idVal)
		} else if idVal, ok := v["ID"]; ok {
			inner = recordIDString(idVal)
		}
		if tb != "" && inner != "" {
			return tb + ":" + inner
		}
		if inner != "" {
			return inner
		}
	}
	return fmt.Sprintf("%v", id)
}

// bareID strips the table prefix from a table:id string, if present.
func bareID(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == ':' {
			return id[i+1:]
		}
	}
	return id
}

// parseTime parses a timestamp from the formats the driver hands back.
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// asRecord converts a row to its field map.
func asRecord(row interface{}) (map[string]interface{}, bool) {
	m, ok := row.(map[string]interface{})
	return m, ok
}

// getString extracts a string field from a record.
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
