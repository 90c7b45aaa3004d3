// Config loading for the lineage CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ancestral-tools/lineage/internal/rules"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
	cfgKeyVerify  = "verify"

	defaultBackend = "sqlite"
)

// defaultConfigYAML is written to config.yaml on first run. The verify
// section mirrors the stock thresholds so they are discoverable and
// editable in place.
const defaultConfigYAML = `# Lineage CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Verification thresholds. Ages and gaps are whole years.
verify:
  max_age: 90
  max_spouses: 3
  max_age_unmarried: 99
  max_children_mother: 12
  max_children_father: 15
  max_husband_wife_gap: 30
  max_children_span: 25
  max_children_gap: 8
  min_marriage_age: 17
  max_marriage_age: 50
  min_mother_age: 17
  max_mother_age: 48
  min_father_age: 18
  max_father_age: 65
  max_widowhood: 30
  estimate_dates: false
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	setThresholdDefaults(v, rules.DefaultThresholds())
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// setThresholdDefaults registers every verify.* key so partial config files
// fall back to stock values per key rather than zeroing the rest.
func setThresholdDefaults(v *viper.Viper, th rules.Thresholds) {
	v.SetDefault(cfgKeyVerify+".max_age", th.MaxAge)
	v.SetDefault(cfgKeyVerify+".max_spouses", th.MaxSpouses)
	v.SetDefault(cfgKeyVerify+".max_age_unmarried", th.MaxAgeUnmarried)
	v.SetDefault(cfgKeyVerify+".max_children_mother", th.MaxChildrenMother)
	v.SetDefault(cfgKeyVerify+".max_children_father", th.MaxChildrenFather)
	v.SetDefault(cfgKeyVerify+".max_husband_wife_gap", th.MaxHusbandWifeGap)
	v.SetDefault(cfgKeyVerify+".max_children_span", th.MaxChildrenSpan)
	v.SetDefault(cfgKeyVerify+".max_children_gap", th.MaxChildrenGap)
	v.SetDefault(cfgKeyVerify+".min_marriage_age", th.MinMarriageAge)
	v.SetDefault(cfgKeyVerify+".max_marriage_age", th.MaxMarriageAge)
	v.SetDefault(cfgKeyVerify+".min_mother_age", th.MinMotherAge)
	v.SetDefault(cfgKeyVerify+".max_mother_age", th.MaxMotherAge)
	v.SetDefault(cfgKeyVerify+".min_father_age", th.MinFatherAge)
	v.SetDefault(cfgKeyVerify+".max_father_age", th.MaxFatherAge)
	v.SetDefault(cfgKeyVerify+".max_widowhood", th.MaxWidowhood)
	v.SetDefault(cfgKeyVerify+".estimate_dates", th.EstimateDates)
}

// loadThresholds decodes and validates the verify section.
func loadThresholds(v *viper.Viper) (rules.Thresholds, error) {
	var th rules.Thresholds
	if err := v.UnmarshalKey(cfgKeyVerify, &th); err != nil {
		return th, fmt.Errorf("decode verify config: %w", err)
	}
	if err := th.Validate(); err != nil {
		return th, fmt.Errorf("verify config: %w", err)
	}
	return th, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
