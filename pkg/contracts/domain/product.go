package domain

// ProductColumns are the headers of the Odoo product import template, in
// the order Product fields are written
var ProductColumns = []string{
	"External ID",
	"Name",
	"Product Type",
	"Internal Reference",
	"Barcode",
	"Sales Price",
	"Cost",
	"Weight",
	"Sales Description",
}

// ProductTypeGoods is the product type every catalog item is imported as
const ProductTypeGoods = "Goods"

// Product is one row of the product import
type Product struct {
	ExternalID        string  `json:"external_id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	InternalReference string  `json:"internal_reference"`
	Barcode           int64   `json:"barcode"` // EAN-13 sized, not checksummed
	SalesPrice        float64 `json:"sales_price"`
	Cost              float64 `json:"cost"`
	Weight            float64 `json:"weight"` // kg
	SalesDescription  string  `json:"sales_description"`
}

// Margin returns the sales price minus the cost
func (p Product) Margin() float64 {
	return p.SalesPrice - p.Cost
}
