package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/owldoc/errors"
)

// maxConfigBytes bounds config file reads.
const maxConfigBytes = 1 << 20

// Config holds the extraction settings.
type Config struct {
	// PrimaryLanguage is the language tag preferred when resolving labels
	// and comments.
	PrimaryLanguage string `json:"primary_language" yaml:"primary_language"`

	// Languages lists additional language tags to extract separate
	// documents for. Empty means the primary language only.
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`

	// LabelPredicates are probed in order when resolving display labels.
	LabelPredicates []string `json:"label_predicates,omitempty" yaml:"label_predicates,omitempty"`

	// CommentPredicates are probed in order when resolving descriptions.
	CommentPredicates []string `json:"comment_predicates,omitempty" yaml:"comment_predicates,omitempty"`

	// MaxListNodes bounds RDF list traversal.
	MaxListNodes int `json:"max_list_nodes,omitempty" yaml:"max_list_nodes,omitempty"`

	// Reasoning enables the pre-extraction reasoner hook when one is
	// configured on the pipeline.
	Reasoning bool `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		PrimaryLanguage: "en",
		LabelPredicates: []string{
			"http://www.w3.org/2000/01/rdf-schema#label",
			"http://www.w3.org/2004/02/skos/core#prefLabel",
			"http://purl.org/dc/terms/title",
		},
		CommentPredicates: []string{
			"http://www.w3.org/2000/01/rdf-schema#comment",
			"http://www.w3.org/2004/02/skos/core#definition",
			"http://purl.org/dc/terms/description",
		},
		MaxListNodes: 1000,
	}
}

// Load reads settings from a JSON or YAML file, chosen by extension, and
// fills unset fields from Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.WrapFatal(err, "config", "Load", "open file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxConfigBytes))
	if err != nil {
		return Config{}, errors.WrapFatal(err, "config", "Load", "read file")
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.WrapInvalid(err, "config", "Load", "parse json")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.WrapInvalid(err, "config", "Load", "parse yaml")
		}
	default:
		return Config{}, errors.WrapInvalid(
			fmt.Errorf("%w: unsupported extension %q", errors.ErrInvalidConfig, ext),
			"config", "Load", "detect format")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.PrimaryLanguage == "" {
		c.PrimaryLanguage = def.PrimaryLanguage
	}
	if len(c.LabelPredicates) == 0 {
		c.LabelPredicates = def.LabelPredicates
	}
	if len(c.CommentPredicates) == 0 {
		c.CommentPredicates = def.CommentPredicates
	}
	if c.MaxListNodes == 0 {
		c.MaxListNodes = def.MaxListNodes
	}
}

// Validate checks the settings for internal consistency.
func (c Config) Validate() error {
	if c.PrimaryLanguage == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: primary_language is empty", errors.ErrMissingConfig),
			"config", "Validate", "check primary language")
	}
	if c.MaxListNodes < 1 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: max_list_nodes must be positive, got %d",
				errors.ErrInvalidConfig, c.MaxListNodes),
			"config", "Validate", "check list budget")
	}
	for _, p := range c.LabelPredicates {
		if p == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: empty label predicate", errors.ErrInvalidConfig),
				"config", "Validate", "check label predicates")
		}
	}
	for _, p := range c.CommentPredicates {
		if p == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: empty comment predicate", errors.ErrInvalidConfig),
				"config", "Validate", "check comment predicates")
		}
	}
	for _, lang := range c.Languages {
		if lang == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: empty language tag", errors.ErrInvalidConfig),
				"config", "Validate", "check languages")
		}
	}
	return nil
}

// ToJSON serializes the settings for logging and debugging.
func (c Config) ToJSON() string {
	data, err := json.Marshal(c)
	if err != nil {
		return "{}"
	}
	return string(data)
}
