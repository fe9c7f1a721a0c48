package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Altergeist Configuration

ontology:
  path: data/philosophers.ttl
  namespace: http://example.org/philosophy/
  # strict: true rejects statements with blank nodes

reasoner:
  closure: true

# regions: ordered keyword table for region inference (first match wins)
# regions:
#   - name: Greece
#     keywords: [greece, greek, athens]

llm:
  provider: openai
  model: gpt-4o-mini
  temperature: 0.7
  max_tokens: 500
  top_p: 0.9
  timeout: 60s
  # base_url: https://router.huggingface.co/v1 (any OpenAI-compatible endpoint)
  # api_key: your-api-key (or set OPENAI_API_KEY / HUGGINGFACE_TOKEN env var)

# archive:
#   path: .altergeist/responses.db
`

// WriteDefault creates the .altergeist directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := filepath.Join(basePath, DefaultConfigDir)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	configDir := filepath.Join(basePath, DefaultConfigDir)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
