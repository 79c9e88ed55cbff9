package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odooseed/pkg/contracts/domain"
)

func TestSeedContacts(t *testing.T) {
	contacts := SeedContacts()
	require.Len(t, contacts, 10)

	first := contacts[0]
	assert.Equal(t, "Inversiones Andinas", first.Name)
	assert.True(t, first.IsCompany)
	assert.Equal(t, "20552103816", first.VAT)
	assert.Equal(t, "1023456789", first.AccountNumber)

	juan := contacts[2]
	assert.Equal(t, "Juan Pérez", juan.Name)
	assert.False(t, juan.IsCompany)
	assert.Equal(t, "Soluciones Digitales", juan.CompanyName)
	assert.Empty(t, juan.Phone)
	assert.Equal(t, "987654321", juan.Mobile)
	assert.Empty(t, juan.VAT)

	assert.Equal(t, "Consultores Estratégicos", contacts[9].Name)
	assert.Equal(t, "COFDPEPL", contacts[9].Bank)

	companies := make(map[string]bool)
	for _, c := range contacts {
		assert.Equal(t, "PE", c.CountryID)
		if c.IsCompany {
			companies[c.Name] = true
			assert.Empty(t, c.CompanyName)
		}
	}
	for _, c := range contacts {
		if c.IsIndividual() {
			assert.True(t, companies[c.CompanyName], "%s works for an unknown company", c.Name)
		}
	}

	contacts[0].Name = "changed"
	assert.Equal(t, "Inversiones Andinas", SeedContacts()[0].Name)
}

func TestFillerContact(t *testing.T) {
	assert.Equal(t, domain.Contact{
		Name:          "Empresa 12",
		IsCompany:     true,
		CountryID:     "PE",
		StateID:       "15",
		Zip:           "15001",
		City:          "Lima",
		Street:        "Av. Principal 12",
		Phone:         "+51112234567",
		Email:         "empresa12@ejemplo.pe",
		Bank:          "BCPLPEPL",
		AccountNumber: "12345678912",
	}, FillerContact(12))
}

func TestPadContacts(t *testing.T) {
	tests := []struct {
		name       string
		contacts   []domain.Contact
		min        int
		wantLen    int
		wantFiller int // index of the first filler row
	}{
		{name: "seed contacts to 20", contacts: SeedContacts(), min: 20, wantLen: 20, wantFiller: 10},
		{name: "no contacts", contacts: nil, min: MinClientRows, wantLen: 20, wantFiller: 0},
		{name: "already at minimum", contacts: PadContacts(nil, 20), min: 20, wantLen: 20, wantFiller: 0},
		{name: "above minimum is not truncated", contacts: PadContacts(nil, 25), min: 20, wantLen: 25, wantFiller: 0},
		{name: "zero minimum", contacts: SeedContacts(), min: 0, wantLen: 10, wantFiller: 10},
		{name: "negative minimum", contacts: SeedContacts(), min: -1, wantLen: 10, wantFiller: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padded := PadContacts(tt.contacts, tt.min)
			require.Len(t, padded, tt.wantLen)

			for i := tt.wantFiller; i < len(padded); i++ {
				assert.Equal(t, fmt.Sprintf("Empresa %d", i), padded[i].Name)
			}
		})
	}
}

func TestPadContacts_FillerInvariants(t *testing.T) {
	padded := PadContacts(nil, MinClientRows)
	require.Len(t, padded, 20)

	for i, c := range padded {
		assert.True(t, c.IsCompany)
		assert.Equal(t, "PE", c.CountryID)
		assert.Equal(t, "15", c.StateID)
		assert.Equal(t, "15001", c.Zip)
		assert.Equal(t, "Lima", c.City)
		assert.Equal(t, "BCPLPEPL", c.Bank)
		assert.Equal(t, fmt.Sprintf("empresa%d@ejemplo.pe", i), c.Email)
		assert.Equal(t, fmt.Sprintf("123456789%d", i), c.AccountNumber)
	}
}

func TestPadContacts_DoesNotModifyInput(t *testing.T) {
	seed := make([]domain.Contact, 2, 10)
	seed[0].Name, seed[1].Name = "a", "b"

	padded := PadContacts(seed, 5)
	require.Len(t, padded, 5)
	assert.Len(t, seed, 2)
	assert.Empty(t, seed[:3][2].Name, "backing array of the input must stay untouched")
}

func TestContactsTable(t *testing.T) {
	table, err := ContactsTable(PadContacts(SeedContacts(), MinClientRows))
	require.NoError(t, err)

	assert.Equal(t, domain.ContactColumns, table.Columns)
	require.Equal(t, 20, table.Len())

	rows := table.StringRows()
	assert.Equal(t, []string{
		"Juan Pérez", "0", "Soluciones Digitales", "PE", "04", "04001", "Arequipa",
		"Calle Mercaderes 456", "", "", "987654321", "juan.perez@soluciones.pe", "",
		"BIFSPEPL", "2034567892",
	}, rows[3])
	assert.Equal(t, []string{
		"Empresa 10", "1", "", "PE", "15", "15001", "Lima", "Av. Principal 10", "",
		"+51110234567", "", "empresa10@ejemplo.pe", "", "BCPLPEPL", "12345678910",
	}, rows[11])
}

func TestContactsTable_Empty(t *testing.T) {
	table, err := ContactsTable(nil)
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	assert.Len(t, table.Columns, 15)
}
