package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func phoneWithRAM(id, ram string) Phone {
	return Phone{
		ID:        id,
		BrandName: "Samsung",
		PhoneName: "Galaxy " + id,
		Spotlight: map[string]string{"ram_size": ram},
		AllSpecs:  map[string][]SpecEntry{},
	}
}

func TestFilterMinRAMPermissive(t *testing.T) {
	f := Filters{MinRAM: intPtr(8)}

	// Unknown RAM gets the benefit of the doubt.
	assert.True(t, f.Match(phoneWithRAM("a", "not disclosed")))
	// Parseable but too small is excluded.
	assert.False(t, f.Match(phoneWithRAM("b", "4GB")))
	assert.True(t, f.Match(phoneWithRAM("c", "8 GB")))
}

func TestFilterBrandExcludesMissing(t *testing.T) {
	f := Filters{Brand: strPtr("Samsung")}

	noBrand := Phone{ID: "x", PhoneName: "Mystery Phone", Spotlight: map[string]string{}, AllSpecs: map[string][]SpecEntry{}}
	assert.False(t, f.Match(noBrand))

	assert.True(t, f.Match(Phone{ID: "y", BrandName: "samsung"}))
	assert.False(t, f.Match(Phone{ID: "z", BrandName: "Apple"}))
}

func TestFilterPriceBounds(t *testing.T) {
	cheap := Phone{ID: "cheap", BrandName: "Moto", Price: "₹12,999"}
	pricey := Phone{ID: "pricey", BrandName: "Apple", Price: "₹1,39,999"}
	unknown := Phone{ID: "unknown", BrandName: "Nothing", Price: "Coming soon"}

	under := Filters{MaxPrice: int64Ptr(50000)}
	assert.True(t, under.Match(cheap))
	assert.False(t, under.Match(pricey))
	assert.True(t, under.Match(unknown))

	over := Filters{MinPrice: int64Ptr(50000)}
	assert.False(t, over.Match(cheap))
	assert.True(t, over.Match(pricey))
	assert.True(t, over.Match(unknown))
}

func TestApplyKeepsStoreOrder(t *testing.T) {
	phones := []Phone{
		phoneWithRAM("first", "12GB"),
		phoneWithRAM("second", "4GB"),
		phoneWithRAM("third", "8GB"),
	}
	got := Filters{MinRAM: intPtr(8)}.Apply(phones)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "third", got[1].ID)
}

func TestFiltersCompose(t *testing.T) {
	p := Phone{
		ID:        "s24",
		BrandName: "Samsung",
		Price:     "₹79,999",
		Spotlight: map[string]string{"ram_size": "8GB", "battery_size": "4000 mAh"},
		AllSpecs: map[string][]SpecEntry{
			"Display": {{Label: "Refresh", Info: "120Hz"}},
		},
	}
	f := Filters{
		Brand:          strPtr("samsung"),
		MaxPrice:       int64Ptr(80000),
		MinRAM:         intPtr(8),
		MinBattery:     intPtr(3500),
		MinRefreshRate: intPtr(90),
	}
	assert.True(t, f.Match(p))

	f.MinBattery = intPtr(4500)
	assert.False(t, f.Match(p))
}

func TestFiltersApplied(t *testing.T) {
	f := Filters{Brand: strPtr("Google"), MinRAM: intPtr(8)}
	applied := f.Applied()
	assert.Equal(t, map[string]any{"brand": "Google", "min_ram": 8}, applied)

	assert.Empty(t, Filters{}.Applied())
}
