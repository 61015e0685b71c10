package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"PhoneMate/app/dal/catalog"
)

// ParseSearchFilters coerces loosely-typed tool-call arguments into catalog
// filters. Model-generated values may arrive as numbers or digit strings;
// anything uncoercible leaves the constraint unset.
func ParseSearchFilters(raw map[string]any) catalog.Filters {
	f := catalog.Filters{}
	if v, ok := raw["brand"]; ok && v != nil {
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
			f.Brand = &s
		}
	}
	if v, ok := raw["max_price"]; ok {
		if n, ok := toInt64(v); ok {
			f.MaxPrice = &n
		}
	}
	if v, ok := raw["min_price"]; ok {
		if n, ok := toInt64(v); ok {
			f.MinPrice = &n
		}
	}
	if v, ok := raw["min_ram"]; ok {
		if n, ok := toInt(v); ok {
			f.MinRAM = &n
		}
	}
	if v, ok := raw["battery_threshold"]; ok {
		if n, ok := toInt(v); ok {
			f.MinBattery = &n
		}
	}
	if v, ok := raw["refresh_rate"]; ok {
		if n, ok := toInt(v); ok {
			f.MinRefreshRate = &n
		}
	}
	return f
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func toInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case float32:
		return int64(val), true
	case int:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case json.Number:
		parsed, err := val.Int64()
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	if val, ok := toInt64(v); ok {
		return int(val), true
	}
	return 0, false
}
