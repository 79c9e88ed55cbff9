package domain

// ContactColumns are the headers of the Odoo contact import template, in
// the order Contact fields are written
var ContactColumns = []string{
	"name",
	"is_company",
	"company_name",
	"country_id",
	"state_id",
	"zip",
	"city",
	"street",
	"street2",
	"phone",
	"mobile",
	"email",
	"vat",
	"bank_ids/bank",
	"bank_ids/acc_number",
}

// Contact is one row of the contact import: a company or an individual
// with address, contact details and a single bank account
type Contact struct {
	Name          string `json:"name"`
	IsCompany     bool   `json:"is_company"`
	CompanyName   string `json:"company_name,omitempty"` // parent company of an individual
	CountryID     string `json:"country_id"`             // ISO 3166 alpha-2
	StateID       string `json:"state_id"`
	Zip           string `json:"zip"`
	City          string `json:"city"`
	Street        string `json:"street"`
	Street2       string `json:"street2,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	Email         string `json:"email,omitempty"`
	VAT           string `json:"vat,omitempty"` // RUC for companies, DNI for individuals
	Bank          string `json:"bank_ids/bank"` // SWIFT/BIC
	AccountNumber string `json:"bank_ids/acc_number"`
}

// IsIndividual reports whether the contact is a person rather than a company
func (c Contact) IsIndividual() bool {
	return !c.IsCompany
}
