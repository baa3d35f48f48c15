package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func validDriverInput() DriverInput {
	return DriverInput{
		Name:          " Joana Lima ",
		Email:         "joana@example.com",
		VehicleType:   "Van",
		Neighborhoods: "Moema, , Itaim Bibi ,",
		Schools:       "Colégio Mobile",
		Description:   "Rotas pela manhã",
		WhatsApp:      "5511911112222",
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, SplitList(" a ,b c,, d ,"))
	assert.Empty(t, SplitList(" , ,"))
	assert.Empty(t, SplitList(""))
	assert.Equal(t, "a, b", JoinList([]string{"a", "b"}))
}

func TestDriverInputBuild(t *testing.T) {
	d, err := validDriverInput().Build("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", d.ID)
	assert.Equal(t, "Joana Lima", d.Name)
	assert.Equal(t, []string{"Moema", "Itaim Bibi"}, d.Neighborhoods)
	assert.Equal(t, DriverPlaceholderPhoto("abc"), d.Photo)

	in := validDriverInput()
	in.Photo = "data:image/png;base64,AAAA"
	d, err = in.Build("abc")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", d.Photo)
}

func TestDriverInputBuildRequiredFields(t *testing.T) {
	cases := map[string]func(*DriverInput){
		"name":          func(in *DriverInput) { in.Name = "  " },
		"email":         func(in *DriverInput) { in.Email = "" },
		"vehicleType":   func(in *DriverInput) { in.VehicleType = "" },
		"neighborhoods": func(in *DriverInput) { in.Neighborhoods = " , " },
		"schools":       func(in *DriverInput) { in.Schools = "" },
		"description":   func(in *DriverInput) { in.Description = "" },
		"whatsapp":      func(in *DriverInput) { in.WhatsApp = "" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := validDriverInput()
			mutate(&in)
			_, err := in.Build("x")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, field, ve.Field)
		})
	}
}

func TestDriverPatchApply(t *testing.T) {
	orig := SeedDrivers()[0]

	got, err := DriverPatch{
		Name:          strptr("Carlos O."),
		Email:         strptr("   "),
		Neighborhoods: strptr("Moema,Jardins"),
	}.Apply(orig)
	require.NoError(t, err)

	assert.Equal(t, "Carlos O.", got.Name)
	assert.Equal(t, orig.Email, got.Email)
	assert.Equal(t, []string{"Moema", "Jardins"}, got.Neighborhoods)
	assert.Equal(t, orig.Schools, got.Schools)
	assert.Equal(t, "Carlos Oliveira", orig.Name, "source record must not change")

	got.Schools[0] = "changed"
	assert.NotEqual(t, "changed", orig.Schools[0])

	_, err = DriverPatch{Schools: strptr(",")}.Apply(orig)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPartnerInputBuild(t *testing.T) {
	p, err := PartnerInput{
		Name:        "Seguros Já",
		Category:    string(CategoryInsurance),
		Description: "Seguro para vans",
		WhatsApp:    "5511900000000",
	}.Build("p1")
	require.NoError(t, err)
	assert.Equal(t, PartnerPlaceholderLogo("p1"), p.Logo)

	_, err = PartnerInput{Name: "X", Category: "Padaria", Description: "d", WhatsApp: "1"}.Build("p2")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPartnerPatchApply(t *testing.T) {
	orig := SeedPartners()[0]
	got, err := PartnerPatch{Category: strptr(string(CategoryOther)), Logo: strptr("")}.Apply(orig)
	require.NoError(t, err)
	assert.Equal(t, string(CategoryOther), got.Category)
	assert.Equal(t, orig.Logo, got.Logo)

	_, err = PartnerPatch{Category: strptr("Padaria")}.Apply(orig)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/5511999999999", WhatsAppLink("5511999999999"))
	assert.Equal(t, "https://wa.me/+55 11", WhatsAppLink(" +55 11 "))
}

func TestSeedIsFreshPerCall(t *testing.T) {
	a := SeedDrivers()
	a[0].Neighborhoods[0] = "mutated"
	b := SeedDrivers()
	assert.Equal(t, "Itaim Bibi", b[0].Neighborhoods[0])
	assert.Len(t, Seed().HeroImages, 3)
}
