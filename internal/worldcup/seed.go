package worldcup

import (
	_ "embed"
	"fmt"

	"sigs.k8s.io/yaml"
)

//go:embed teams.yaml
var seedYAML []byte

// DecodeRecords parses a YAML list of seed rows.
func DecodeRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.UnmarshalStrict(data, &records); err != nil {
		return nil, fmt.Errorf("decoding team records: %w", err)
	}
	return records, nil
}

// LoadEmbedded builds the Store from the table compiled into the binary.
func LoadEmbedded() (*Store, error) {
	records, err := DecodeRecords(seedYAML)
	if err != nil {
		return nil, err
	}
	s, err := NewStore(records)
	if err != nil {
		return nil, fmt.Errorf("building team store: %w", err)
	}
	return s, nil
}
