package model

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encode serializes the configuration back to YAML. Every key-value pair the
// parser retained is written out, and the order of details, files, and all
// other sequences matches the in-memory order.
func Encode(cfg RunConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("model: encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("model: close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
