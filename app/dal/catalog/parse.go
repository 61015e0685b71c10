package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Derived numeric fields are recomputed on demand from free-text spec fields.
// Every extractor degrades to "value unknown" on unparseable input; it never
// errors and never reports a real zero for a missing value.

// Bare digit groups below this are assumed to be storage/RAM figures rather
// than prices.
const minPlausiblePrice = 1000

var (
	currencyPriceRe = regexp.MustCompile(`(?i)(?:₹|\brs\.?|\binr)\s*([0-9][0-9,]*)`)
	bareNumberRe    = regexp.MustCompile(`[0-9][0-9,]*`)
	ramRe           = regexp.MustCompile(`(?i)([0-9]+)\s*GB`)
	batteryRe       = regexp.MustCompile(`(?i)([0-9]{3,5})\s*mAh`)
	refreshRe       = regexp.MustCompile(`(?i)([0-9]{2,3})\s*Hz`)
)

// LowestPrice extracts the cheapest configuration from the free-text price
// field, e.g. "64GB 4GB RAM: ₹47,600, 128GB 4GB RAM: ₹52,600" -> 47600.
// Currency-marked tokens win; with none present, any bare digit group of at
// least 1000 is accepted. The fallback is a known false-positive risk kept
// for compatibility with observed catalog data.
func (p Phone) LowestPrice() (int64, bool) {
	text := strings.TrimSpace(p.Price)
	if text == "" {
		return 0, false
	}

	var candidates []int64
	for _, m := range currencyPriceRe.FindAllStringSubmatch(text, -1) {
		if v, err := parseAmount(m[1]); err == nil {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		for _, tok := range bareNumberRe.FindAllString(text, -1) {
			v, err := parseAmount(tok)
			if err != nil || v < minPlausiblePrice {
				continue
			}
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	low := candidates[0]
	for _, v := range candidates[1:] {
		if v < low {
			low = v
		}
	}
	return low, true
}

// MaxRAM returns the largest GB figure found in the spotlight ram_size field
// or any Memory spec entry.
func (p Phone) MaxRAM() (int, bool) {
	texts := []string{p.Spotlight["ram_size"]}
	for _, entry := range p.AllSpecs["Memory"] {
		texts = append(texts, entry.Info)
	}

	best, found := 0, false
	for _, text := range texts {
		for _, m := range ramRe.FindAllStringSubmatch(text, -1) {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if !found || v > best {
				best, found = v, true
			}
		}
	}
	return best, found
}

// Battery returns the first mAh figure from the spotlight battery_size field,
// then from Battery spec entries.
func (p Phone) Battery() (int, bool) {
	texts := []string{p.Spotlight["battery_size"]}
	for _, entry := range p.AllSpecs["Battery"] {
		texts = append(texts, entry.Info)
	}
	for _, text := range texts {
		if m := batteryRe.FindStringSubmatch(text); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

// RefreshRate returns the first Hz figure from Display spec entries.
func (p Phone) RefreshRate() (int, bool) {
	for _, entry := range p.AllSpecs["Display"] {
		if m := refreshRe.FindStringSubmatch(entry.Info); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func parseAmount(tok string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(tok, ",", ""), 10, 64)
}
