package admin

import (
	"context"
	"math"
)

// Stats backs the dashboard cards.
type Stats struct {
	Drivers        int `json:"drivers"`
	Partners       int `json:"partners"`
	HeroImages     int `json:"hero_images"`
	Total          int `json:"total"`
	DriversPercent int `json:"drivers_percent"`
}

// Stats counts the collections. DriversPercent is round(100*drivers/total), 50 when empty.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		Drivers:    len(snap.Drivers),
		Partners:   len(snap.Partners),
		HeroImages: len(snap.HeroImages),
	}
	st.Total = st.Drivers + st.Partners
	st.DriversPercent = 50
	if st.Total > 0 {
		st.DriversPercent = int(math.Round(100 * float64(st.Drivers) / float64(st.Total)))
	}
	return st, nil
}
