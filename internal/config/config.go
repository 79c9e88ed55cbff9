package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "odooseed/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Export    ExportConfig    `yaml:"export" envconfig:"EXPORT"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// ExportConfig controls where the import sheets are written and how the
// generated rows are produced
type ExportConfig struct {
	OutputDir     string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"." validate:"required"`
	ClientsFile   string `yaml:"clients_file" envconfig:"CLIENTS_FILE" default:"odoo_clients.xlsx" validate:"required"`
	ProductsFile  string `yaml:"products_file" envconfig:"PRODUCTS_FILE" default:"pharmaceutical_products.xlsx" validate:"required"`
	MinClientRows int    `yaml:"min_client_rows" envconfig:"MIN_CLIENT_ROWS" default:"20" validate:"min=0,max=100000"`
	BarcodeSeed   uint64 `yaml:"barcode_seed" envconfig:"BARCODE_SEED" default:"0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/odooseed.log"`
}

// TelemetryConfig enables the optional trace and metrics sinks. Empty paths
// disable the corresponding sink.
type TelemetryConfig struct {
	TraceFile   string `yaml:"trace_file" envconfig:"TRACE_FILE"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
	Environment string `yaml:"environment" envconfig:"ENVIRONMENT" default:"development"`
}

// Load loads configuration from environment variables and the first config
// file found in the default locations
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom loads configuration from environment variables and the given YAML
// file. An empty path skips the file.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	// Defaults and environment first
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if configFile != "" {
		fileConfig, numeric, err := loadFromFile(configFile)
		if err != nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config file %s", configFile), err)
		}
		cfg = mergeConfigs(*fileConfig, numeric, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// numericSettings records which numeric keys a config file sets, since zero
// is a valid value for them
type numericSettings struct {
	Export struct {
		MinClientRows *int    `yaml:"min_client_rows"`
		BarcodeSeed   *uint64 `yaml:"barcode_seed"`
	} `yaml:"export"`
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, numericSettings, error) {
	var numeric numericSettings

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, numeric, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, numeric, err
	}
	if err := yaml.Unmarshal(data, &numeric); err != nil {
		return nil, numeric, err
	}

	return &cfg, numeric, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// A file value is used only when the matching variable is not set.
func mergeConfigs(fileConfig Config, numeric numericSettings, envConfig Config) Config {
	pick := func(key string, dst *string, src string) {
		if src != "" && !envSet(key) {
			*dst = src
		}
	}

	pick("EXPORT_OUTPUT_DIR", &envConfig.Export.OutputDir, fileConfig.Export.OutputDir)
	pick("EXPORT_CLIENTS_FILE", &envConfig.Export.ClientsFile, fileConfig.Export.ClientsFile)
	pick("EXPORT_PRODUCTS_FILE", &envConfig.Export.ProductsFile, fileConfig.Export.ProductsFile)
	if numeric.Export.MinClientRows != nil && !envSet("EXPORT_MIN_CLIENT_ROWS") {
		envConfig.Export.MinClientRows = *numeric.Export.MinClientRows
	}
	if numeric.Export.BarcodeSeed != nil && !envSet("EXPORT_BARCODE_SEED") {
		envConfig.Export.BarcodeSeed = *numeric.Export.BarcodeSeed
	}

	pick("LOGGING_LEVEL", &envConfig.Logging.Level, fileConfig.Logging.Level)
	pick("LOGGING_OUTPUT", &envConfig.Logging.Output, fileConfig.Logging.Output)
	pick("LOGGING_FILE_PATH", &envConfig.Logging.FilePath, fileConfig.Logging.FilePath)

	pick("TELEMETRY_TRACE_FILE", &envConfig.Telemetry.TraceFile, fileConfig.Telemetry.TraceFile)
	pick("TELEMETRY_METRICS_FILE", &envConfig.Telemetry.MetricsFile, fileConfig.Telemetry.MetricsFile)
	pick("TELEMETRY_ENVIRONMENT", &envConfig.Telemetry.Environment, fileConfig.Telemetry.Environment)

	return envConfig
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(EnvPrefix + "_" + key)
	return ok
}

// Validate checks field ranges and fills the log file path when file
// logging is enabled. Call it again after applying command-line overrides.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return path
	}

	locations := []string{
		"odooseed.yaml",
		"configs/odooseed.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			OutputDir:     ".",
			ClientsFile:   DefaultClientsFile,
			ProductsFile:  DefaultProductsFile,
			MinClientRows: DefaultMinClientRows,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Telemetry: TelemetryConfig{
			Environment: "development",
		},
	}
}
