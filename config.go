package banksim

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Savings struct {
		InterestRate float64 `yaml:"interest_rate"`
	} `yaml:"savings"`
	Current struct {
		OverdraftLimit float64 `yaml:"overdraft_limit"`
	} `yaml:"current"`
	Loan struct {
		FeatureEnabled bool `yaml:"feature_enabled"`
	} `yaml:"loan"`
	Statements struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"statements"`
}

func DefaultConfig() Config {
	var cfg Config
	cfg.Savings.InterestRate = 3
	cfg.Current.OverdraftLimit = 500
	cfg.Statements.OutputDir = "."
	return cfg
}

// LoadConfig reads the YAML configuration at path over the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
