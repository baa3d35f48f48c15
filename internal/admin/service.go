// Package admin is the management layer: CRUD over drivers and partners, the hero
// collection, dashboard stats and backup. Every write goes through the CatalogStore.
package admin

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/catalog"
	"github.com/connectvan/backend/internal/store"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrConfirmationRequired = errors.New("confirmation required")
)

type Service struct {
	logger *zap.Logger
	store  *store.CatalogStore
	newID  func() string
}

func NewService(logger *zap.Logger, s *store.CatalogStore) *Service {
	return &Service{logger: logger, store: s, newID: uuid.NewString}
}

// ListDrivers is the admin table: name-only, case-insensitive substring filter.
func (s *Service) ListDrivers(ctx context.Context, q string) ([]catalog.Driver, error) {
	drivers, err := s.store.Drivers(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(q)
	out := make([]catalog.Driver, 0, len(drivers))
	for _, d := range drivers {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListPartners is ListDrivers for partners.
func (s *Service) ListPartners(ctx context.Context, q string) ([]catalog.Partner, error) {
	partners, err := s.store.Partners(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(q)
	out := make([]catalog.Partner, 0, len(partners))
	for _, p := range partners {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreateDriver validates the form and prepends the new driver.
func (s *Service) CreateDriver(ctx context.Context, in catalog.DriverInput) (catalog.Driver, error) {
	d, err := in.Build(s.newID())
	if err != nil {
		return catalog.Driver{}, err
	}
	err = s.store.MutateDrivers(ctx, func(drivers []catalog.Driver) ([]catalog.Driver, error) {
		return append([]catalog.Driver{d}, drivers...), nil
	})
	if err != nil {
		return catalog.Driver{}, err
	}
	s.logger.Info("driver created", zap.String("id", d.ID))
	return d, nil
}

// UpdateDriver merges the patch onto the driver with id. A missing id is ErrNotFound.
func (s *Service) UpdateDriver(ctx context.Context, id string, patch catalog.DriverPatch) (catalog.Driver, error) {
	var updated catalog.Driver
	err := s.store.MutateDrivers(ctx, func(drivers []catalog.Driver) ([]catalog.Driver, error) {
		for i := range drivers {
			if drivers[i].ID != id {
				continue
			}
			next, err := patch.Apply(drivers[i])
			if err != nil {
				return nil, err
			}
			drivers[i] = next
			updated = next
			return drivers, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return catalog.Driver{}, err
	}
	s.logger.Info("driver updated", zap.String("id", id))
	return updated, nil
}

// DeleteDriver removes the driver with id once confirmed. A missing id is a no-op (removed=false).
func (s *Service) DeleteDriver(ctx context.Context, id string, confirmed bool) (removed bool, err error) {
	if !confirmed {
		return false, ErrConfirmationRequired
	}
	err = s.store.MutateDrivers(ctx, func(drivers []catalog.Driver) ([]catalog.Driver, error) {
		out := drivers[:0]
		for _, d := range drivers {
			if d.ID == id {
				removed = true
				continue
			}
			out = append(out, d)
		}
		return out, nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info("driver deleted", zap.String("id", id))
	}
	return removed, nil
}

// CreatePartner validates the form and prepends the new partner.
func (s *Service) CreatePartner(ctx context.Context, in catalog.PartnerInput) (catalog.Partner, error) {
	p, err := in.Build(s.newID())
	if err != nil {
		return catalog.Partner{}, err
	}
	err = s.store.MutatePartners(ctx, func(partners []catalog.Partner) ([]catalog.Partner, error) {
		return append([]catalog.Partner{p}, partners...), nil
	})
	if err != nil {
		return catalog.Partner{}, err
	}
	s.logger.Info("partner created", zap.String("id", p.ID))
	return p, nil
}

// UpdatePartner merges the patch onto the partner with id. A missing id is ErrNotFound.
func (s *Service) UpdatePartner(ctx context.Context, id string, patch catalog.PartnerPatch) (catalog.Partner, error) {
	var updated catalog.Partner
	err := s.store.MutatePartners(ctx, func(partners []catalog.Partner) ([]catalog.Partner, error) {
		for i := range partners {
			if partners[i].ID != id {
				continue
			}
			next, err := patch.Apply(partners[i])
			if err != nil {
				return nil, err
			}
			partners[i] = next
			updated = next
			return partners, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return catalog.Partner{}, err
	}
	s.logger.Info("partner updated", zap.String("id", id))
	return updated, nil
}

// DeletePartner removes the partner with id once confirmed.
func (s *Service) DeletePartner(ctx context.Context, id string, confirmed bool) (removed bool, err error) {
	if !confirmed {
		return false, ErrConfirmationRequired
	}
	err = s.store.MutatePartners(ctx, func(partners []catalog.Partner) ([]catalog.Partner, error) {
		out := partners[:0]
		for _, p := range partners {
			if p.ID == id {
				removed = true
				continue
			}
			out = append(out, p)
		}
		return out, nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info("partner deleted", zap.String("id", id))
	}
	return removed, nil
}

// HeroImages lists the banner images in display order.
func (s *Service) HeroImages(ctx context.Context) ([]string, error) {
	return s.store.HeroImages(ctx)
}

// AddHeroImage appends an image reference (URL or data URI).
func (s *Service) AddHeroImage(ctx context.Context, ref string) ([]string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &catalog.ValidationError{Field: "image", Reason: "is required"}
	}
	var out []string
	err := s.store.MutateHeroImages(ctx, func(images []string) ([]string, error) {
		out = append(images, ref)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(out), nil
}

// RemoveHeroImage deletes the image at index once confirmed. Out of range is a no-op.
func (s *Service) RemoveHeroImage(ctx context.Context, index int, confirmed bool) (removed bool, err error) {
	if !confirmed {
		return false, ErrConfirmationRequired
	}
	err = s.store.MutateHeroImages(ctx, func(images []string) ([]string, error) {
		if index < 0 || index >= len(images) {
			return images, nil
		}
		removed = true
		return append(images[:index], images[index+1:]...), nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
