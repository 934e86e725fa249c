package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/rustresult/pkg/rop"
)

type Mode string

const (
	ModeExternal Mode = "external"
	ModeAdjacent Mode = "adjacent"
)

var ErrInvalidConfig = errors.New("codec: invalid config")

// Config names the layout of an encoded Result. Tag and Content only apply
// to adjacent mode and default to "type" and "value". A non-empty Field
// nests the tagged object under that member of a containing record.
type Config struct {
	Mode    Mode   `yaml:"mode" json:"mode"`
	Field   string `yaml:"field,omitempty" json:"field,omitempty"`
	Tag     string `yaml:"tag,omitempty" json:"tag,omitempty"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
}

func DefaultConfig() Config {
	return Config{Mode: ModeExternal}
}

// AdjacentConfig returns an adjacent layout with the default member names,
// nested under field when it is not empty.
func AdjacentConfig(field string) Config {
	return Config{
		Mode:    ModeAdjacent,
		Field:   field,
		Tag:     rop.DefaultTagKey,
		Content: rop.DefaultContentKey,
	}
}

func (c Config) withDefaults() Config {
	if c.Mode == "" {
		c.Mode = ModeExternal
	}
	if c.Mode == ModeAdjacent {
		if c.Tag == "" {
			c.Tag = rop.DefaultTagKey
		}
		if c.Content == "" {
			c.Content = rop.DefaultContentKey
		}
	}
	return c
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeExternal:
	case ModeAdjacent:
		if c.Tag == "" || c.Content == "" {
			return fmt.Errorf("%w: adjacent mode needs tag and content names", ErrInvalidConfig)
		}
		if c.Tag == c.Content {
			return fmt.Errorf("%w: tag and content share the name %q", ErrInvalidConfig, c.Tag)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	return nil
}

func (c Config) tagging() rop.Tagging {
	if c.Mode == ModeAdjacent {
		return rop.Adjacently(c.Tag, c.Content)
	}
	return rop.External
}

// LoadConfig reads a Config from a .yaml, .yml, .json or .jsonc file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("codec: read config: %w", err)
	}
	cfg, err := ParseConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("codec: load %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data in the given format ("yaml", "yml", "json" or
// "jsonc"), fills defaults and validates the result. JSON input may carry
// comments and trailing commas. Unknown members are rejected.
func ParseConfig(data []byte, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse yaml config: %w", err)
		}
	case "json", "jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg, json.RejectUnknownMembers(true)); err != nil {
			return Config{}, fmt.Errorf("parse json config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, format)
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
