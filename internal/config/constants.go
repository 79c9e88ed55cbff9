package config

import "odooseed/pkg/contracts"

// Application constants
const (
	AppName    = "odooseed"
	AppVersion = contracts.Version

	// EnvPrefix namespaces every environment variable, e.g. ODOOSEED_EXPORT_OUTPUT_DIR
	EnvPrefix = "ODOOSEED"

	DefaultClientsFile   = "odoo_clients.xlsx"
	DefaultProductsFile  = "pharmaceutical_products.xlsx"
	DefaultMinClientRows = 20
	DefaultLogFile       = "logs/odooseed.log"

	DirPermission  = 0755
	FilePermission = 0644
)
