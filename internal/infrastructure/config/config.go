// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
)

const (
	// DefaultConfigDir is the directory name for altergeist configuration.
	DefaultConfigDir = ".altergeist"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultOntologyPath is the ontology loaded when none is configured.
	DefaultOntologyPath = "data/philosophers.ttl"
	// DefaultArchiveFile is the response archive file name inside the config dir.
	DefaultArchiveFile = "responses.db"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Ontology OntologyConfig `yaml:"ontology,omitempty"`
	Reasoner ReasonerConfig `yaml:"reasoner,omitempty"`
	Regions  []RegionConfig `yaml:"regions,omitempty"`
	LLM      LLMConfig      `yaml:"llm,omitempty"`
	Archive  SQLiteConfig   `yaml:"archive,omitempty"`
}

// OntologyConfig controls how the ontology source is read.
type OntologyConfig struct {
	Path      string `yaml:"path,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
	// Strict rejects statements with blank nodes instead of dropping them.
	Strict bool `yaml:"strict,omitempty"`
}

// ReasonerConfig controls deductive closure.
type ReasonerConfig struct {
	Closure bool `yaml:"closure"`
}

// RegionConfig is one row of the ordered region keyword table.
type RegionConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LLMConfig holds configuration for the generation service.
type LLMConfig struct {
	Provider    string        `yaml:"provider,omitempty"`
	Model       string        `yaml:"model,omitempty"`
	APIKey      string        `yaml:"api_key,omitempty"`
	BaseURL     string        `yaml:"base_url,omitempty"`
	Temperature float32       `yaml:"temperature,omitempty"`
	MaxTokens   int           `yaml:"max_tokens,omitempty"`
	TopP        float32       `yaml:"top_p,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite response archive.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database. Empty means
	// ArchivePath under the config directory.
	Path string `yaml:"path,omitempty"`
}

// DefaultRegions is the built-in region keyword table. Order matters: the
// first region with a matching keyword wins.
var DefaultRegions = []RegionConfig{
	{Name: "Greece", Keywords: []string{"greece", "greek", "athens", "athenian", "hellenistic", "ionia"}},
	{Name: "Rome", Keywords: []string{"rome", "roman", "latin"}},
	{Name: "China", Keywords: []string{"china", "chinese", "zhou", "han dynasty", "song dynasty"}},
	{Name: "India", Keywords: []string{"india", "indian", "vedic", "maurya", "gupta"}},
	{Name: "Persia", Keywords: []string{"persia", "persian", "achaemenid", "sasanian"}},
	{Name: "Islamic World", Keywords: []string{"islamic", "abbasid", "caliphate", "andalus"}},
	{Name: "Britain", Keywords: []string{"britain", "british", "england", "english", "scotland", "scottish"}},
	{Name: "France", Keywords: []string{"france", "french", "paris"}},
	{Name: "Germany", Keywords: []string{"germany", "german", "prussia", "prussian"}},
}

// Default returns a Config with default values.
func Default() *Config {
	regions := make([]RegionConfig, len(DefaultRegions))
	copy(regions, DefaultRegions)

	return &Config{
		Ontology: OntologyConfig{
			Path:      DefaultOntologyPath,
			Namespace: vocabulary.DefaultNamespace,
		},
		Reasoner: ReasonerConfig{
			Closure: true,
		},
		Regions: regions,
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   500,
			TopP:        0.9,
			Timeout:     60 * time.Second,
		},
	}
}

// Load loads configuration from the .altergeist directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	cfg := Default()

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if c.LLM.APIKey == "" {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			c.LLM.APIKey = key
		} else if key := os.Getenv("HUGGINGFACE_TOKEN"); key != "" {
			c.LLM.APIKey = key
		}
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if raw := os.Getenv("LLM_TEMPERATURE"); raw != "" {
		if temp, err := strconv.ParseFloat(raw, 32); err == nil {
			c.LLM.Temperature = float32(temp)
		}
	}
}

// ConfigDir returns the path to the .altergeist config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// ArchivePath returns the response archive path, honoring an explicit
// archive.path setting.
func (c *Config) ArchivePath(basePath string) string {
	if c.Archive.Path != "" {
		return c.Archive.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultArchiveFile)
}

// OntologyPath resolves the ontology path relative to basePath.
func (c *Config) OntologyPath(basePath string) string {
	if filepath.IsAbs(c.Ontology.Path) {
		return c.Ontology.Path
	}
	return filepath.Join(basePath, c.Ontology.Path)
}

// Exists checks if an altergeist config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
