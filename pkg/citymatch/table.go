package citymatch

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed networks.yaml
var networksDocument []byte

// Table holds the exact network lookups and the per-country fallbacks
type Table struct {
	Networks map[string]string `yaml:"networks"`
	Fallback map[string]string `yaml:"fallback"`
}

func LoadTable(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode network table: %w", err)
	}

	if table.Networks == nil {
		table.Networks = map[string]string{}
	}
	if table.Fallback == nil {
		table.Fallback = map[string]string{}
	}

	return &table, nil
}

// DefaultTable is the table shipped with the binary
func DefaultTable() *Table {
	table, err := LoadTable(networksDocument)
	if err != nil {
		panic(err)
	}

	return table
}
