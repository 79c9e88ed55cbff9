// Package config loads the settings shared by the odooseed commands.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML file (odooseed.yaml, configs/odooseed.yaml or $ODOOSEED_CONFIG)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern ODOOSEED_*:
//
//	ODOOSEED_EXPORT_OUTPUT_DIR=out
//	ODOOSEED_EXPORT_MIN_CLIENT_ROWS=20
//	ODOOSEED_EXPORT_BARCODE_SEED=42
//	ODOOSEED_LOGGING_LEVEL=debug
//	ODOOSEED_TELEMETRY_METRICS_FILE=metrics.prom
//
// # Path Management
//
// Paths resolves the output and log locations against the working directory:
//
//	paths, _ := config.GetPaths(cfg)
//	out := paths.OutputPath(cfg.Export.ClientsFile)
//
// # Testing
//
// Use config.Default() for a configuration that needs no environment.
package config
