// Package listing is the read-only projection behind the public page: driver search,
// partner category filter and the hero carousel.
package listing

import (
	"strings"

	"github.com/connectvan/backend/internal/catalog"
)

// SearchDrivers keeps drivers whose name, any neighborhood or any school contains q,
// ignoring case. An empty query matches everything.
func SearchDrivers(drivers []catalog.Driver, q string) []catalog.Driver {
	needle := strings.ToLower(q)
	out := make([]catalog.Driver, 0, len(drivers))
	for _, d := range drivers {
		if driverMatches(d, needle) {
			out = append(out, d)
		}
	}
	return out
}

func driverMatches(d catalog.Driver, needle string) bool {
	if needle == "" || strings.Contains(strings.ToLower(d.Name), needle) {
		return true
	}
	return anyContains(d.Neighborhoods, needle) || anyContains(d.Schools, needle)
}

func anyContains(items []string, needle string) bool {
	for _, s := range items {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// FilterPartners keeps partners of exactly the given category; an empty category keeps all.
func FilterPartners(partners []catalog.Partner, category string) []catalog.Partner {
	out := make([]catalog.Partner, 0, len(partners))
	for _, p := range partners {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories is the category menu: distinct categories present in partners, first-seen order.
func Categories(partners []catalog.Partner) []string {
	seen := make(map[string]bool, len(partners))
	out := []string{}
	for _, p := range partners {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
