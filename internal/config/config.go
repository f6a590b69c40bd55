package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// CoverageOverride raises the required staff count on dates matching an RRULE.
// DTSTART is ignored; the rule is evaluated over the period being generated.
type CoverageOverride struct {
	RRule       string `yaml:"rrule" validate:"required"`
	MinRequired int    `yaml:"minRequired" validate:"min=0"`
}

// GeneratorConfig overrides generator parameters; unset fields keep their defaults
type GeneratorConfig struct {
	BaseOffTarget            *int     `yaml:"baseOffTarget,omitempty" validate:"omitempty,min=0"`
	NightSpecialistOffTarget *int     `yaml:"nightSpecialistOffTarget,omitempty" validate:"omitempty,min=0"`
	MaxConsecutiveWorkDays   *int     `yaml:"maxConsecutiveWorkDays,omitempty" validate:"omitempty,min=1"`
	NewbornsPerStaff         *int     `yaml:"newbornsPerStaff,omitempty" validate:"omitempty,min=1"`
	WeightWorkDays           *float64 `yaml:"weightWorkDays,omitempty" validate:"omitempty,min=0"`
	WeightConsecutive        *float64 `yaml:"weightConsecutive,omitempty" validate:"omitempty,min=0"`
	WeightShiftLoad          *float64 `yaml:"weightShiftLoad,omitempty" validate:"omitempty,min=0"`
	WeightOffUrgency         *float64 `yaml:"weightOffUrgency,omitempty" validate:"omitempty,min=0"`
	NightBias                *float64 `yaml:"nightBias,omitempty" validate:"omitempty,min=0"`
}

// Config represents the application configuration
type Config struct {
	WardName          string             `yaml:"wardName" validate:"required"`
	RosterSheetID     string             `yaml:"rosterSheetID,omitempty"`
	GmailUserID       string             `yaml:"gmailUserID,omitempty" validate:"omitempty,email"`
	AlertRecipients   []string           `yaml:"alertRecipients,omitempty" validate:"dive,email"`
	Generator         GeneratorConfig    `yaml:"generator,omitempty"`
	CoverageOverrides []CoverageOverride `yaml:"coverageOverrides,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from roster_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return loadNamed("roster_config.yaml")
}

// LoadWithEnv loads the configuration for an environment
// For example, env="test" will look for "roster_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	return loadNamed(fmt.Sprintf("roster_config.%s.yaml", env))
}

func loadNamed(fileName string) (*Config, error) {
	configPath, err := findConfigFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, override := range cfg.CoverageOverrides {
		if _, err := rrule.StrToROption(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in coverageOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the named file in the current directory and home directory
func findConfigFile(configFileName string) (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
