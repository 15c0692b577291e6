package pursuit

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a YAML document over the defaults. Fields absent from
// the document keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode pursuit config: %w", err)
	}
	if len(cfg.Grid) > 0 {
		if _, err := ParseLayout("custom", cfg.Grid); err != nil {
			return Config{}, fmt.Errorf("pursuit config grid: %w", err)
		}
	} else if _, ok := builtinLayouts[cfg.Layout]; !ok {
		return Config{}, fmt.Errorf("pursuit config: %w: %q", ErrUnknownLayout, cfg.Layout)
	}
	return cfg.Normalize(), nil
}

// LoadConfig reads and decodes a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read pursuit config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML.
func MarshalConfig(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode pursuit config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode pursuit config: %w", err)
	}
	return buf.Bytes(), nil
}
