package rules

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/keyremap/internal/logger"
	"github.com/joshuapare/keyremap/pkg/types"
)

// Format identifies a replacement config syntax.
type Format string

const (
	// FormatJSON is a top-level array of {"key", "replacement", "add_modifiers"} objects.
	FormatJSON Format = "json"
	// FormatYAML is a top-level sequence of mappings with the same fields.
	FormatYAML Format = "yaml"
	// FormatTOML is a [[rule]] array of tables with the same fields.
	FormatTOML Format = "toml"
)

// FormatFromPath picks a format by file extension. Unknown extensions are
// treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// tomlConfig is the TOML document layout.
type tomlConfig struct {
	Rule []Spec `toml:"rule"`
}

// ParseSpecs decodes replacement specs without validating them.
func ParseSpecs(data []byte, format Format) ([]Spec, error) {
	var specs []Spec
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("%w: decoding json: %w", types.ErrInvalidConfig, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("%w: decoding yaml: %w", types.ErrInvalidConfig, err)
		}
	case FormatTOML:
		var cfg tomlConfig
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: decoding toml: %w", types.ErrInvalidConfig, err)
		}
		specs = cfg.Rule
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", types.ErrInvalidConfig, format)
	}
	return specs, nil
}

// Parse decodes and builds a table.
func Parse(data []byte, format Format) (*Table, error) {
	specs, err := ParseSpecs(data, format)
	if err != nil {
		return nil, err
	}
	return Build(specs)
}

// Load reads a whole config from r and builds a table.
func Load(r io.Reader, format Format) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading config: %w", types.ErrInvalidConfig, err)
	}
	return Parse(data, format)
}

// LoadFile reads the config at path, choosing the format by extension.
func LoadFile(path string) (*Table, error) {
	logger.Info("parsing replacement config", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidConfig, err)
	}

	t, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("replacement table built", "path", path, "rules", t.Len())
	return t, nil
}
