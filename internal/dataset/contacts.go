package dataset

import (
	"fmt"

	"odooseed/internal/exporter"
	"odooseed/pkg/contracts/domain"
)

// MinClientRows is the default number of rows in the client file
const MinClientRows = 20

// Filler rows reuse the Lima address and bank of the first seed company
const (
	fillerCountry = "PE"
	fillerState   = "15"
	fillerZip     = "15001"
	fillerCity    = "Lima"
	fillerBank    = "BCPLPEPL"
)

// SeedContacts returns the ten sample contacts. Individuals name their
// employer in CompanyName. Each call returns a fresh slice.
func SeedContacts() []domain.Contact {
	return []domain.Contact{
		{Name: "Inversiones Andinas", IsCompany: true, CountryID: "PE", StateID: "15", Zip: "15001", City: "Lima", Street: "Av. Javier Prado 1234", Phone: "+51123456789", Email: "contacto@andinas.com", VAT: "20552103816", Bank: "BCPLPEPL", AccountNumber: "1023456789"},
		{Name: "Soluciones Digitales", IsCompany: true, CountryID: "PE", StateID: "04", Zip: "04001", City: "Arequipa", Street: "Calle Mercaderes 456", Phone: "+5154256789", Email: "info@soluciones.pe", VAT: "20538856674", Bank: "BIFSPEPL", AccountNumber: "2034567891"},
		{Name: "Juan Pérez", CompanyName: "Soluciones Digitales", CountryID: "PE", StateID: "04", Zip: "04001", City: "Arequipa", Street: "Calle Mercaderes 456", Mobile: "987654321", Email: "juan.perez@soluciones.pe", Bank: "BIFSPEPL", AccountNumber: "2034567892"},
		{Name: "Comercial Andina", IsCompany: true, CountryID: "PE", StateID: "08", Zip: "08001", City: "Cusco", Street: "Av. Sol 789", Phone: "+5184267890", Email: "ventas@andina.com", VAT: "20553856451", Bank: "BSUDPEPL", AccountNumber: "3045678912"},
		{Name: "María López", CompanyName: "Comercial Andina", CountryID: "PE", StateID: "08", Zip: "08001", City: "Cusco", Street: "Av. Sol 789", Mobile: "987123456", Email: "maria.lopez@andina.com", Bank: "BSUDPEPL", AccountNumber: "3045678913"},
		{Name: "Innovatech Perú", IsCompany: true, CountryID: "PE", StateID: "13", Zip: "13001", City: "La Libertad", Street: "Av. España 321", Phone: "+5144267890", Email: "contacto@innovatech.pe", VAT: "20480316259", Bank: "BINPPEPL", AccountNumber: "4056789123"},
		{Name: "Carlos Ramírez", CompanyName: "Innovatech Perú", CountryID: "PE", StateID: "13", Zip: "13001", City: "La Libertad", Street: "Av. España 321", Mobile: "987112233", Email: "carlos.ramirez@innovatech.pe", Bank: "BINPPEPL", AccountNumber: "4056789124"},
		{Name: "Servicios Globales", IsCompany: true, CountryID: "PE", StateID: "14", Zip: "14001", City: "Lambayeque", Street: "Calle San José 654", Phone: "+5134267890", Email: "servicios@globales.pe", VAT: "20538995364", Bank: "BDCMPEPL", AccountNumber: "5067891234"},
		{Name: "Ana Torres", CompanyName: "Servicios Globales", CountryID: "PE", StateID: "14", Zip: "14001", City: "Lambayeque", Street: "Calle San José 654", Mobile: "987223344", Email: "ana.torres@globales.pe", Bank: "BDCMPEPL", AccountNumber: "5067891235"},
		{Name: "Consultores Estratégicos", IsCompany: true, CountryID: "PE", StateID: "20", Zip: "20001", City: "Piura", Street: "Av. Grau 852", Phone: "+5194267890", Email: "info@consultores.pe", VAT: "20480674414", Bank: "COFDPEPL", AccountNumber: "6078912345"},
	}
}

// FillerContact returns the placeholder company appended at position n
func FillerContact(n int) domain.Contact {
	return domain.Contact{
		Name:          fmt.Sprintf("Empresa %d", n),
		IsCompany:     true,
		CountryID:     fillerCountry,
		StateID:       fillerState,
		Zip:           fillerZip,
		City:          fillerCity,
		Street:        fmt.Sprintf("Av. Principal %d", n),
		Phone:         fmt.Sprintf("+511%d234567", n),
		Email:         fmt.Sprintf("empresa%d@ejemplo.pe", n),
		Bank:          fillerBank,
		AccountNumber: fmt.Sprintf("123456789%d", n),
	}
}

// PadContacts appends filler companies until there are at least min
// contacts. Each filler is numbered with the count of contacts before it.
// Lists already at or above min are returned unchanged; the input slice is
// never modified.
func PadContacts(contacts []domain.Contact, min int) []domain.Contact {
	size := len(contacts)
	if min > size {
		size = min
	}
	padded := make([]domain.Contact, len(contacts), size)
	copy(padded, contacts)

	for len(padded) < min {
		padded = append(padded, FillerContact(len(padded)))
	}
	return padded
}

// ContactRecord renders c in ContactColumns order
func ContactRecord(c domain.Contact) exporter.Record {
	return exporter.Record{
		exporter.Text(c.Name),
		exporter.Bool(c.IsCompany),
		exporter.Text(c.CompanyName),
		exporter.Text(c.CountryID),
		exporter.Text(c.StateID),
		exporter.Text(c.Zip),
		exporter.Text(c.City),
		exporter.Text(c.Street),
		exporter.Text(c.Street2),
		exporter.Text(c.Phone),
		exporter.Text(c.Mobile),
		exporter.Text(c.Email),
		exporter.Text(c.VAT),
		exporter.Text(c.Bank),
		exporter.Text(c.AccountNumber),
	}
}

// ContactsTable builds the contact import table
func ContactsTable(contacts []domain.Contact) (*exporter.Table, error) {
	table := exporter.NewTable(domain.ContactColumns...)
	for i, c := range contacts {
		if err := table.Append(ContactRecord(c)...); err != nil {
			return nil, fmt.Errorf("contact %d (%s): %w", i, c.Name, err)
		}
	}
	return table, nil
}
