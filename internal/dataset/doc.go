// Package dataset builds the sample records written by the odooseed
// commands: the literal contact list padded with filler companies, and the
// pharmaceutical catalog with generated barcodes. It turns them into
// exporter Tables whose columns follow the Odoo import templates.
package dataset
