// Package catalog holds the directory entities: school-transport drivers, partner businesses and hero images.
package catalog

import "slices"

// Driver is a school-transport operator listed in the directory.
type Driver struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Photo         string   `json:"photo"` // URL or data URI
	VehicleType   string   `json:"vehicleType"`
	Neighborhoods []string `json:"neighborhoods"`
	Schools       []string `json:"schools"`
	Description   string   `json:"description"`
	WhatsApp      string   `json:"whatsapp"`
}

// Clone returns a copy that shares no slices with d.
func (d Driver) Clone() Driver {
	d.Neighborhoods = slices.Clone(d.Neighborhoods)
	d.Schools = slices.Clone(d.Schools)
	return d
}

// Partner is a local business offering a discount or service to the community.
type Partner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"` // URL or data URI
	Category    string `json:"category"`
	Description string `json:"description"`
	WhatsApp    string `json:"whatsapp"`
}

// PartnerCategory is one of the labels offered by the partner form.
// Stored records keep the category as an open string.
type PartnerCategory string

const (
	CategoryMechanic   PartnerCategory = "Oficina"
	CategoryStationery PartnerCategory = "Papelaria"
	CategoryTireShop   PartnerCategory = "Borracharia"
	CategoryInsurance  PartnerCategory = "Seguros"
	CategoryOther      PartnerCategory = "Outros"
)

// Categories lists the labels accepted by the partner form, in menu order.
var Categories = []PartnerCategory{
	CategoryTireShop,
	CategoryMechanic,
	CategoryStationery,
	CategoryInsurance,
	CategoryOther,
}

// IsKnownCategory reports whether s is one of the form labels.
func IsKnownCategory(s string) bool {
	return slices.Contains(Categories, PartnerCategory(s))
}

// CloneDrivers deep-copies a driver collection.
func CloneDrivers(in []Driver) []Driver {
	if in == nil {
		return nil
	}
	out := make([]Driver, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

// ClonePartners copies a partner collection.
func ClonePartners(in []Partner) []Partner {
	return slices.Clone(in)
}

// Snapshot is the full state of the three durable collections.
type Snapshot struct {
	Drivers    []Driver  `json:"drivers"`
	Partners   []Partner `json:"partners"`
	HeroImages []string  `json:"hero_images"`
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Drivers:    CloneDrivers(s.Drivers),
		Partners:   ClonePartners(s.Partners),
		HeroImages: slices.Clone(s.HeroImages),
	}
}
