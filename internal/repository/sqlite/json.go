package sqlite

import (
	"database/sql"
	"encoding/json"
)

// decodeStringList decodes a JSON array column (specialties, equipment, ...)
// stored as text. NULL or malformed values decode to an empty slice so API
// consumers always see a list.
func decodeStringList(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return []string{}
	}
	return out
}
