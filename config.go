package movies

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults match the public Neo4j movies demo database.
const (
	DefaultDialect  = "cypher"
	DefaultURI      = "neo4j+s://demo.neo4jlabs.com"
	DefaultUsername = "movies"
	DefaultPassword = "movies"
	DefaultDatabase = "movies"
	DefaultVersion  = "4"
	DefaultPort     = 8080
	DefaultLogLevel = "info"
	DefaultLimit    = 100
)

// Config represents the movies.yaml configuration file.
type Config struct {
	// Store dialect ("cypher" or "memory")
	Dialect string `yaml:"dialect,omitempty"`

	// Connection config for the dialect
	Connection DialectConfig `yaml:"connection,omitempty"`

	// Dataset file loaded by the memory dialect
	Dataset string `yaml:"dataset,omitempty"`

	// HTTP listening port
	Port int `yaml:"port,omitempty"`

	// Log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{"movies.yaml", "movies.yml", ".movies.yaml", ".movies.yml"}

// DefaultConfig returns a config pointing at the public demo database.
func DefaultConfig() *Config {
	return &Config{
		Dialect: DefaultDialect,
		Connection: DialectConfig{
			URI:      DefaultURI,
			Username: DefaultUsername,
			Password: DefaultPassword,
			Database: DefaultDatabase,
			Version:  DefaultVersion,
		},
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
	}
}

// LoadConfig finds and loads the nearest movies.yaml walking up from dir.
// When none exists the defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}

	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path. Keys absent from the
// file keep their default values.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	// A relative dataset path is relative to the config file.
	if cfg.Dataset != "" && !filepath.IsAbs(cfg.Dataset) {
		cfg.Dataset = filepath.Join(filepath.Dir(path), cfg.Dataset)
	}

	return cfg, nil
}
