package dataset

import (
	"fmt"

	"odooseed/internal/exporter"
	"odooseed/pkg/contracts/domain"
)

// CatalogItem is a product before it is given an external ID and barcode
type CatalogItem struct {
	Name        string
	Reference   string
	Price       float64
	Cost        float64
	Weight      float64
	Description string
}

// Catalog returns the pharmaceutical catalog. Each call returns a fresh slice.
func Catalog() []CatalogItem {
	return []CatalogItem{
		{Name: "Paracetamol 500mg", Reference: "MED-001", Price: 3.5, Cost: 2.0, Weight: 0.05, Description: "Used to treat pain and fever."},
		{Name: "Ibuprofen 400mg", Reference: "MED-002", Price: 5.0, Cost: 3.2, Weight: 0.06, Description: "Nonsteroidal anti-inflammatory drug (NSAID)."},
		{Name: "Amoxicillin 500mg", Reference: "MED-003", Price: 10.0, Cost: 6.5, Weight: 0.08, Description: "Antibiotic used to treat bacterial infections."},
		{Name: "Omeprazole 20mg", Reference: "MED-004", Price: 8.0, Cost: 5.0, Weight: 0.07, Description: "Proton pump inhibitor for acid reflux."},
		{Name: "Cetirizine 10mg", Reference: "MED-005", Price: 4.5, Cost: 2.8, Weight: 0.04, Description: "Antihistamine for allergies."},
		{Name: "Metformin 850mg", Reference: "MED-006", Price: 6.0, Cost: 4.0, Weight: 0.09, Description: "Used to control high blood sugar in type 2 diabetes."},
		{Name: "Atorvastatin 20mg", Reference: "MED-007", Price: 12.0, Cost: 7.5, Weight: 0.06, Description: "Lowers cholesterol levels."},
		{Name: "Salbutamol Inhaler", Reference: "MED-008", Price: 15.0, Cost: 10.0, Weight: 0.12, Description: "Relieves bronchospasm in asthma and COPD."},
		{Name: "Aspirin 100mg", Reference: "MED-009", Price: 4.0, Cost: 2.5, Weight: 0.05, Description: "Used to reduce pain, fever, and inflammation."},
		{Name: "Losartan 50mg", Reference: "MED-010", Price: 9.0, Cost: 6.0, Weight: 0.06, Description: "Used to treat high blood pressure."},
	}
}

// ExternalID returns the import identifier of the i-th product (1-based)
func ExternalID(i int) string {
	return fmt.Sprintf("product_template_%d", i)
}

// BuildProducts turns catalog items into goods with external IDs numbered
// from 1 and a barcode drawn from gen for each item, in order
func BuildProducts(items []CatalogItem, gen *BarcodeGenerator) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for i, item := range items {
		products = append(products, domain.Product{
			ExternalID:        ExternalID(i + 1),
			Name:              item.Name,
			Type:              domain.ProductTypeGoods,
			InternalReference: item.Reference,
			Barcode:           gen.Next(),
			SalesPrice:        item.Price,
			Cost:              item.Cost,
			Weight:            item.Weight,
			SalesDescription:  item.Description,
		})
	}
	return products
}

// ProductRecord renders p in ProductColumns order
func ProductRecord(p domain.Product) exporter.Record {
	return exporter.Record{
		exporter.Text(p.ExternalID),
		exporter.Text(p.Name),
		exporter.Text(p.Type),
		exporter.Text(p.InternalReference),
		exporter.Int(p.Barcode),
		exporter.Float(p.SalesPrice),
		exporter.Float(p.Cost),
		exporter.Float(p.Weight),
		exporter.Text(p.SalesDescription),
	}
}

// ProductsTable builds the product import table
func ProductsTable(products []domain.Product) (*exporter.Table, error) {
	table := exporter.NewTable(domain.ProductColumns...)
	for i, p := range products {
		if err := table.Append(ProductRecord(p)...); err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i, p.Name, err)
		}
	}
	return table, nil
}
