package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/connectvan/backend/internal/catalog"
)

func ids(drivers []catalog.Driver) []string {
	out := make([]string, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, d.ID)
	}
	return out
}

func TestSearchDrivers(t *testing.T) {
	seed := catalog.SeedDrivers()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty matches all", "", []string{"1", "2", "3"}},
		{"neighborhood substring", "Itaim", []string{"1"}},
		{"case insensitive", "iTaIm bIBI", []string{"1"}},
		{"name", "ana paula", []string{"2"}},
		{"school only", "vera cruz", []string{"3"}},
		{"school shared prefix", "colégio", []string{"1", "2", "3"}},
		{"no match", "Curitiba", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SearchDrivers(seed, tt.query)))
		})
	}
}

func TestSearchDrivers_FieldsAreInterchangeable(t *testing.T) {
	base := catalog.Driver{ID: "x", Name: "Zed"}
	byName := base
	byName.Name = "Moema Transportes"
	byHood := base
	byHood.Neighborhoods = []string{"Moema"}
	bySchool := base
	bySchool.Schools = []string{"Escola Moema"}

	for _, d := range []catalog.Driver{byName, byHood, bySchool} {
		assert.Len(t, SearchDrivers([]catalog.Driver{d}, "moema"), 1)
	}
	assert.Empty(t, SearchDrivers([]catalog.Driver{base}, "moema"))
}

func TestFilterPartners(t *testing.T) {
	seed := catalog.SeedPartners()
	assert.Len(t, FilterPartners(seed, ""), 3)

	got := FilterPartners(seed, string(catalog.CategoryStationery))
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Papelaria Estudar", got[0].Name)
	}
	assert.Empty(t, FilterPartners(seed, "papelaria"), "category match is exact")
}

func TestCategories(t *testing.T) {
	partners := append(catalog.SeedPartners(), catalog.Partner{ID: "4", Category: "Borracharia"}, catalog.Partner{ID: "5", Category: "Outros"})
	assert.Equal(t, []string{"Borracharia", "Papelaria", "Oficina", "Outros"}, Categories(partners))
	assert.Empty(t, Categories(nil))
}
