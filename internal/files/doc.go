// Package files finds spreadsheets and leftover temporary files in the
// export directory.
//
// Exports are written to a hidden temporary file next to the destination and
// renamed into place. A run killed mid-write leaves that temporary file
// behind; Discovery finds such files and removes the stale ones.
//
// Example usage:
//
//	discovery := files.NewDiscovery(outputDir)
//	removed, err := discovery.RemoveStaleTempFiles(".", time.Hour)
package files
