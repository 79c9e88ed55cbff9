// Package app wires configuration, logging, telemetry and the exporter
// together and runs the odooseed exports.
//
// # Initialization Flow
//
//	1. Load a .env file if present, then configuration from the environment
//	   and the optional YAML file
//	2. Initialize the process logger and OpenTelemetry providers
//	3. Resolve the output directory and build the exporter
//
// # Usage
//
//	cfg, err := app.LoadConfig()
//	...
//	application, err := app.NewApplication(cfg)
//	...
//	defer application.Shutdown(context.Background())
//	result, err := application.ExportClients(ctx)
//	fmt.Println(result.Message())
//
// ExportAll writes the client and product files concurrently and stops the
// remaining export once one fails.
package app
