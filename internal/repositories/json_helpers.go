package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"
)

// decodeStringList unmarshals a JSON column holding an array of strings
// (offer photos, facility tags). A NULL or empty column yields nil.
func decodeStringList(column sql.NullString) ([]string, error) {
	if !column.Valid {
		return nil, nil
	}

	data := strings.TrimSpace(column.String)
	if data == "" {
		return nil, nil
	}

	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, err
	}
	return values, nil
}

func encodeStringList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
