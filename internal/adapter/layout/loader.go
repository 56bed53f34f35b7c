// Package layout loads board layouts from JSON files. A layout file is
// a JSON array of rows, each row an array of cell code strings.
package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([][]string, error) {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse layout json: %w", err)
	}
	return rows, nil
}
