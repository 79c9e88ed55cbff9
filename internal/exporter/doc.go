// Package exporter turns in-memory tables into spreadsheet files.
//
// A Table is a header plus ordered records of scalar Values. Exporter writes
// it to .xlsx (excelize, one sheet, bold header) or .csv (UTF-8 with BOM),
// picking the format from the destination extension. Files are written through
// a temporary file and renamed into place, so a failed export never leaves a
// partial file behind.
//
// Example usage:
//
//	table := exporter.NewTable("Name", "Price")
//	_ = table.Append(exporter.Text("Aspirin 100mg"), exporter.Float(4.0))
//
//	result, err := exporter.New().Export(ctx, "products", table, "products.xlsx")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Message())
//
// ReadTable reads an exported file back as text values, which is how the
// tests check the round trip.
package exporter
