// Package identify cross-references spreadsheet metabolite identifiers
// against EcoCyc and HMDB and classifies each row by how well the two
// databases reconcile.
package identify

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EcoCycConfig configures the BioCyc web service client.
type EcoCycConfig struct {
	Endpoint       string `yaml:"endpoint"`
	Organism       string `yaml:"organism"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured request timeout.
func (c EcoCycConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// HMDBConfig configures the local HMDB dump source.
type HMDBConfig struct {
	File string `yaml:"file"`
}

// Config is the run configuration. Defaults match the essential
// metabolite screen; a YAML file overrides individual fields.
type Config struct {
	// SkipSheets lists workbook sheets that carry no metabolite tables.
	SkipSheets []string `yaml:"skip_sheets"`
	// InvalidIDs lists identifier tokens discarded during parsing.
	InvalidIDs []string `yaml:"invalid_ids"`

	EcoCyc EcoCycConfig `yaml:"ecocyc"`
	HMDB   HMDBConfig   `yaml:"hmdb"`
}

// DefaultConfig returns the built-in run configuration.
func DefaultConfig() Config {
	return Config{
		SkipSheets: []string{"Samplelist of essential", "TFs"},
		InvalidIDs: []string{"NA", "multiple charge", "neg", "nan"},
		EcoCyc: EcoCycConfig{
			Endpoint:       "https://websvc.biocyc.org/getxml",
			Organism:       "ECOLI",
			TimeoutSeconds: 30,
		},
		HMDB: HMDBConfig{File: "hmdb_metabolites.zip"},
	}
}

// LoadConfig reads a YAML file over the defaults, so omitted keys keep
// their built-in values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
