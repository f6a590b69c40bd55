package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	maxRun := 4
	cfg := &Config{
		WardName:        "Maternity Ward 3",
		RosterSheetID:   "sheet123",
		GmailUserID:     "rota@example.com",
		AlertRecipients: []string{"charge.nurse@example.com"},
		Generator: GeneratorConfig{
			MaxConsecutiveWorkDays: &maxRun,
		},
		CoverageOverrides: []CoverageOverride{
			{RRule: "FREQ=WEEKLY;BYDAY=SA,SU", MinRequired: 2},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{WardName: "Ward"}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := &Config{RosterSheetID: "sheet123"}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidAlertRecipient(t *testing.T) {
	cfg := &Config{
		WardName:        "Ward",
		AlertRecipients: []string{"not-an-email"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_GeneratorBounds(t *testing.T) {
	zero := 0
	cfg := &Config{
		WardName: "Ward",
		Generator: GeneratorConfig{
			NewbornsPerStaff: &zero,
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := &Config{
		WardName: "Ward",
		CoverageOverrides: []CoverageOverride{
			{RRule: "FREQ=WEEKLY;BYDAY=SU", MinRequired: 1},
			{RRule: "INVALID_RRULE_SYNTAX", MinRequired: 1},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule in coverageOverrides[1]")
}

func TestValidate_EmptyRRule(t *testing.T) {
	cfg := &Config{
		WardName: "Ward",
		CoverageOverrides: []CoverageOverride{
			{RRule: "", MinRequired: 1},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "roster_config.test.yaml")

	validConfig := `
wardName: "Maternity Ward 3"
rosterSheetID: "sheet123"
gmailUserID: "rota@example.com"
alertRecipients:
  - "charge.nurse@example.com"
generator:
  maxConsecutiveWorkDays: 4
  nightBias: 8
coverageOverrides:
  - rrule: "FREQ=WEEKLY;BYDAY=SA,SU"
    minRequired: 2
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "Maternity Ward 3", cfg.WardName)
	assert.Equal(t, "sheet123", cfg.RosterSheetID)
	assert.Equal(t, "rota@example.com", cfg.GmailUserID)
	assert.Equal(t, []string{"charge.nurse@example.com"}, cfg.AlertRecipients)

	require.NotNil(t, cfg.Generator.MaxConsecutiveWorkDays)
	assert.Equal(t, 4, *cfg.Generator.MaxConsecutiveWorkDays)
	require.NotNil(t, cfg.Generator.NightBias)
	assert.Equal(t, 8.0, *cfg.Generator.NightBias)
	assert.Nil(t, cfg.Generator.BaseOffTarget)

	require.Len(t, cfg.CoverageOverrides, 1)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SA,SU", cfg.CoverageOverrides[0].RRule)
	assert.Equal(t, 2, cfg.CoverageOverrides[0].MinRequired)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_rrule.yaml")

	invalidConfig := `
wardName: "Ward"
coverageOverrides:
  - rrule: "INVALID_RRULE_SYNTAX"
    minRequired: 1
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
wardName: "Ward"
  invalid indentation
rosterSheetID: "sheet123"
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestFindConfigFile_CurrentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	err := os.WriteFile("roster_config.unit.yaml", []byte(`wardName: "Ward"`), 0644)
	require.NoError(t, err)

	cfg, err := LoadWithEnv("unit")
	require.NoError(t, err)
	assert.Equal(t, "Ward", cfg.WardName)

	_, err = LoadWithEnv("missing-env-name")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find config file")
}
