package authentic

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseConfig decodes and shape-checks a persisted photography document.
// Anything that is not a JSON object carrying a categories array fails with
// a wrapped ErrInvalidInput; the substitute-default policy belongs to the
// caller, not here.
func ParseConfig(data []byte) (*PhotographyConfig, error) {
	var probe struct {
		Categories json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse config: %w: %v", ErrInvalidInput, err)
	}
	if len(probe.Categories) == 0 || !bytes.HasPrefix(bytes.TrimSpace(probe.Categories), []byte("[")) {
		return nil, fmt.Errorf("parse config: %w: categories must be an array", ErrInvalidInput)
	}

	var cfg PhotographyConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w: %v", ErrInvalidInput, err)
	}
	if cfg.Categories == nil {
		cfg.Categories = []Category{}
	}
	return &cfg, nil
}

// EncodeConfig serializes a document with stable 2-space indentation, the
// format the admin UI diffs against.
func EncodeConfig(cfg *PhotographyConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
