package catalog

import "strings"

// Filters is a conjunction of independent optional constraints over the
// catalog. A nil field means "don't care".
type Filters struct {
	Brand          *string
	MaxPrice       *int64
	MinPrice       *int64
	MinRAM         *int
	MinBattery     *int
	MinRefreshRate *int
}

// Match applies every set constraint. A record whose derived field cannot be
// parsed is retained rather than excluded: the field is unknown, not failing.
// Brand is the exception, a record with no brand can never satisfy a brand
// constraint.
func (f Filters) Match(p Phone) bool {
	if f.Brand != nil {
		if p.BrandName == "" || !strings.EqualFold(p.BrandName, *f.Brand) {
			return false
		}
	}
	if f.MaxPrice != nil {
		if v, ok := p.LowestPrice(); ok && v > *f.MaxPrice {
			return false
		}
	}
	if f.MinPrice != nil {
		if v, ok := p.LowestPrice(); ok && v < *f.MinPrice {
			return false
		}
	}
	if f.MinRAM != nil {
		if v, ok := p.MaxRAM(); ok && v < *f.MinRAM {
			return false
		}
	}
	if f.MinBattery != nil {
		if v, ok := p.Battery(); ok && v < *f.MinBattery {
			return false
		}
	}
	if f.MinRefreshRate != nil {
		if v, ok := p.RefreshRate(); ok && v < *f.MinRefreshRate {
			return false
		}
	}
	return true
}

// Apply keeps the store's native row order; survivors are never re-ranked.
func (f Filters) Apply(phones []Phone) []Phone {
	out := make([]Phone, 0, len(phones))
	for _, p := range phones {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Applied reports the effective constraint set alongside results so callers
// can tell which filters shaped the answer.
func (f Filters) Applied() map[string]any {
	applied := make(map[string]any)
	if f.Brand != nil {
		applied["brand"] = *f.Brand
	}
	if f.MaxPrice != nil {
		applied["max_price"] = *f.MaxPrice
	}
	if f.MinPrice != nil {
		applied["min_price"] = *f.MinPrice
	}
	if f.MinRAM != nil {
		applied["min_ram"] = *f.MinRAM
	}
	if f.MinBattery != nil {
		applied["battery_threshold"] = *f.MinBattery
	}
	if f.MinRefreshRate != nil {
		applied["refresh_rate"] = *f.MinRefreshRate
	}
	return applied
}
