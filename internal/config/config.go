// =============================================================================
// 13F to XLSX Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the main application configuration.
//
// CONFIGURATION FILE:
//   config.yaml: directories, logging, archival, output naming, and optional
//   extensions to the keyword lists used by the column splitter.
//
// The tool must run with no configuration file at all: every field has a
// default, and a missing file simply yields the default configuration. The
// only sanctioned tuning knob for split quality is the pair of extra word
// lists - the built-in lists and their order are fixed.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for 13F PDF files when no --file
	// flag is given.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated XLSX workbooks are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where processed PDF files are moved.
	// Files are only moved here after successful conversion.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the format for generated output file names.
	// Placeholders:
	//   {name}      - Input file name without extension
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	// Default: "{name}.xlsx"
	OutputNameFormat string `yaml:"output_name_format"`

	// KeepInputs leaves processed PDFs in the input directory instead of
	// moving them to the archive after a successful conversion.
	// Default: false (inputs are archived)
	KeepInputs bool `yaml:"keep_inputs"`

	// =========================================================================
	// SPLITTER SETTINGS
	// =========================================================================

	// ExtraStarterWords are appended to the END of the built-in issue
	// starter-word list. Earlier entries win, so additions can never shadow
	// the built-in precedence order.
	ExtraStarterWords []string `yaml:"extra_starter_words"`

	// ExtraEndWords are appended to the END of the built-in issuer end-word
	// list, under the same precedence rule.
	ExtraEndWords []string `yaml:"extra_end_words"`
}

// LoadMainConfig loads the main configuration from a YAML file.
//
// A missing file is not an error: the tool is usable with zero configuration,
// so the defaults are returned instead. Any other read or parse failure is
// reported.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			config := defaultConfig()
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() *MainConfig {
	config := &MainConfig{}
	applyDefaults(config)
	return config
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{name}.xlsx"
	}
}

// validate rejects configurations the pipeline cannot run with.
func validate(config *MainConfig) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	for _, word := range append(append([]string{}, config.ExtraStarterWords...), config.ExtraEndWords...) {
		if word == "" {
			return fmt.Errorf("extra word lists must not contain empty entries")
		}
	}

	return nil
}
