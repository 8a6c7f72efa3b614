package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Type string `yaml:"type"` // "sqlite" or "postgres"
		Path string `yaml:"path"` // SQLite file path
		URL  string `yaml:"url"`  // PostgreSQL connection URL
	} `yaml:"database"`

	Model struct {
		VectorizerPath string `yaml:"vectorizer_path"`
		ClassifierPath string `yaml:"classifier_path"`
	} `yaml:"model"`
}

// LoadConfig loads configuration from YAML file
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	// Set defaults
	if config.Server.Port == "" {
		config.Server.Port = "8000"
	}

	if config.Database.Type == "" {
		config.Database.Type = "sqlite"
	}

	if config.Database.Path == "" {
		config.Database.Path = "./data/tweets.db"
	}

	if config.Model.VectorizerPath == "" {
		config.Model.VectorizerPath = "./models/vectorizer.json"
	}

	if config.Model.ClassifierPath == "" {
		config.Model.ClassifierPath = "./models/classifier.json"
	}

	// Expand environment variables in the database URL
	config.Database.URL = os.ExpandEnv(config.Database.URL)

	return config, nil
}
