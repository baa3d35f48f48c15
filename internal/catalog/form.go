package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError names the form field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

// SplitList turns a comma-delimited input into trimmed, non-empty entries.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of SplitList used to prefill edit forms.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// DriverInput is the driver creation form. List fields are comma-delimited.
type DriverInput struct {
	Name          string
	Email         string
	Photo         string
	VehicleType   string
	Neighborhoods string
	Schools       string
	Description   string
	WhatsApp      string
}

// Build validates the form and returns the record with the given id.
// A blank photo is replaced by the deterministic placeholder.
func (in DriverInput) Build(id string) (Driver, error) {
	d := Driver{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Photo:         strings.TrimSpace(in.Photo),
		VehicleType:   strings.TrimSpace(in.VehicleType),
		Neighborhoods: SplitList(in.Neighborhoods),
		Schools:       SplitList(in.Schools),
		Description:   strings.TrimSpace(in.Description),
		WhatsApp:      strings.TrimSpace(in.WhatsApp),
	}
	switch {
	case d.Name == "":
		return Driver{}, required("name")
	case d.Email == "":
		return Driver{}, required("email")
	case d.VehicleType == "":
		return Driver{}, required("vehicleType")
	case len(d.Neighborhoods) == 0:
		return Driver{}, required("neighborhoods")
	case len(d.Schools) == 0:
		return Driver{}, required("schools")
	case d.Description == "":
		return Driver{}, required("description")
	case d.WhatsApp == "":
		return Driver{}, required("whatsapp")
	}
	if d.Photo == "" {
		d.Photo = DriverPlaceholderPhoto(id)
	}
	return d, nil
}

// DriverPatch carries the fields of an edit form; nil or blank fields keep the stored value.
type DriverPatch struct {
	Name          *string
	Email         *string
	Photo         *string
	VehicleType   *string
	Neighborhoods *string
	Schools       *string
	Description   *string
	WhatsApp      *string
}

// Apply merges the patch onto d and returns the result; d is not modified.
func (p DriverPatch) Apply(d Driver) (Driver, error) {
	out := d.Clone()
	mergeString(&out.Name, p.Name)
	mergeString(&out.Email, p.Email)
	mergeString(&out.Photo, p.Photo)
	mergeString(&out.VehicleType, p.VehicleType)
	mergeString(&out.Description, p.Description)
	mergeString(&out.WhatsApp, p.WhatsApp)
	if !blank(p.Neighborhoods) {
		list := SplitList(*p.Neighborhoods)
		if len(list) == 0 {
			return Driver{}, required("neighborhoods")
		}
		out.Neighborhoods = list
	}
	if !blank(p.Schools) {
		list := SplitList(*p.Schools)
		if len(list) == 0 {
			return Driver{}, required("schools")
		}
		out.Schools = list
	}
	return out, nil
}

// blank is true for an absent or whitespace-only field.
func blank(v *string) bool { return v == nil || strings.TrimSpace(*v) == "" }

// PartnerInput is the partner creation form.
type PartnerInput struct {
	Name        string
	Logo        string
	Category    string
	Description string
	WhatsApp    string
}

// Build validates the form and returns the record with the given id.
func (in PartnerInput) Build(id string) (Partner, error) {
	p := Partner{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Logo:        strings.TrimSpace(in.Logo),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		WhatsApp:    strings.TrimSpace(in.WhatsApp),
	}
	switch {
	case p.Name == "":
		return Partner{}, required("name")
	case p.Category == "":
		return Partner{}, required("category")
	case !IsKnownCategory(p.Category):
		return Partner{}, &ValidationError{Field: "category", Reason: "is not a known category"}
	case p.Description == "":
		return Partner{}, required("description")
	case p.WhatsApp == "":
		return Partner{}, required("whatsapp")
	}
	if p.Logo == "" {
		p.Logo = PartnerPlaceholderLogo(id)
	}
	return p, nil
}

// PartnerPatch carries the fields of a partner edit form.
type PartnerPatch struct {
	Name        *string
	Logo        *string
	Category    *string
	Description *string
	WhatsApp    *string
}

// Apply merges the patch onto p and returns the result.
func (pp PartnerPatch) Apply(p Partner) (Partner, error) {
	mergeString(&p.Name, pp.Name)
	mergeString(&p.Logo, pp.Logo)
	mergeString(&p.Description, pp.Description)
	mergeString(&p.WhatsApp, pp.WhatsApp)
	if pp.Category != nil {
		if c := strings.TrimSpace(*pp.Category); c != "" {
			if !IsKnownCategory(c) {
				return Partner{}, &ValidationError{Field: "category", Reason: "is not a known category"}
			}
			p.Category = c
		}
	}
	return p, nil
}

func mergeString(dst *string, src *string) {
	if src == nil {
		return
	}
	if v := strings.TrimSpace(*src); v != "" {
		*dst = v
	}
}
