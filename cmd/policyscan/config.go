package main

import (
	_ "embed"
	"os"

	"github.com/fwojciec/policyscan"
	"gopkg.in/yaml.v3"
)

// defaultTargetsYAML is the predefined section set shipped with the binary.
// It is configuration data: a custom file passed via --targets replaces it
// wholesale.
//
//go:embed targets.yaml
var defaultTargetsYAML []byte

// Config is the on-disk targets configuration.
type Config struct {
	// OverviewURL is the optional overview page fetched before the sections.
	OverviewURL string `yaml:"overview_url"`

	// Targets is the ordered list of named sections.
	Targets []policyscan.Target `yaml:"targets"`
}

// LoadConfig reads the targets configuration from path, or the embedded
// default set when path is empty.
func LoadConfig(path string) (*Config, error) {
	data := defaultTargetsYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, policyscan.Errorf(policyscan.EINVALID, "cannot read targets file: %v", err)
		}
		data = b
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, policyscan.Errorf(policyscan.EINVALID, "cannot parse targets file: %v", err)
	}
	if len(cfg.Targets) == 0 {
		return nil, policyscan.Errorf(policyscan.EINVALID, "targets file defines no targets")
	}
	return &cfg, nil
}

// TargetSet builds the ordered target set from the configuration.
func (c *Config) TargetSet() (*policyscan.TargetSet, error) {
	return policyscan.NewTargetSet(c.Targets)
}
