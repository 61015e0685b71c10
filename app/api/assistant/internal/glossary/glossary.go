package glossary

import (
	"sort"
	"strings"
)

// Explanation is one technical-term entry. Explanations are static reference
// text, never fabricated at runtime.
type Explanation struct {
	Term        string   `json:"term"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefit     string   `json:"benefit,omitempty"`
	Notes       []string `json:"notes,omitempty"`
}

type Glossary struct {
	entries map[string]Explanation
	// keys in match precedence order: longest first, then lexicographic,
	// so the most specific entry wins ("ois vs eis" beats "ois").
	keys []string
}

func New() *Glossary {
	return newWith(builtin)
}

func newWith(entries []Explanation) *Glossary {
	g := &Glossary{entries: make(map[string]Explanation, len(entries))}
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Term))
		if key == "" {
			continue
		}
		g.entries[key] = e
		g.keys = append(g.keys, key)
	}
	sort.Slice(g.keys, func(i, j int) bool {
		if len(g.keys[i]) != len(g.keys[j]) {
			return len(g.keys[i]) > len(g.keys[j])
		}
		return g.keys[i] < g.keys[j]
	})
	return g
}

// Explain resolves a term: exact case-insensitive key first, then substring
// match in either direction (key inside the query, or query inside the key).
func (g *Glossary) Explain(term string) (Explanation, bool) {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return Explanation{}, false
	}
	if e, ok := g.entries[q]; ok {
		return e, true
	}
	for _, key := range g.keys {
		if strings.Contains(q, key) || strings.Contains(key, q) {
			return g.entries[key], true
		}
	}
	return Explanation{}, false
}

// Terms lists every known term, in match precedence order.
func (g *Glossary) Terms() []string {
	out := make([]string, 0, len(g.keys))
	for _, key := range g.keys {
		out = append(out, g.entries[key].Term)
	}
	return out
}

var builtin = []Explanation{
	{
		Term:        "OIS",
		Name:        "Optical Image Stabilization",
		Description: "Uses physical lens movement to compensate for hand shake, reducing blur in photos and videos.",
		Benefit:     "Better low-light photography and smoother videos.",
		Notes:       []string{"Found on: Pixel 8a, OnePlus 12R, iPhone 15, Xiaomi 14"},
	},
	{
		Term:        "EIS",
		Name:        "Electronic Image Stabilization",
		Description: "Uses software to crop and shift frames to reduce blur, relying on digital processing.",
		Benefit:     "Works for every camera, no extra hardware needed.",
		Notes:       []string{"Found on: most modern phones"},
	},
	{
		Term:        "OIS vs EIS",
		Name:        "OIS vs EIS Comparison",
		Description: "OIS moves physical lenses, which is more effective but expensive. EIS processes frames in software, which is cheaper but crops the image slightly. Many flagships use both.",
		Benefit:     "OIS is generally better for photography, EIS for video.",
	},
	{
		Term:        "5G",
		Name:        "5G Connectivity",
		Description: "Fifth-generation mobile network technology, much faster than 4G LTE.",
		Benefit:     "Faster downloads, lower latency, better for streaming and gaming.",
		Notes:       []string{"4G LTE: ~100Mbps, 5G: ~1-10Gbps"},
	},
	{
		Term:        "OLED",
		Name:        "OLED Display",
		Description: "Organic Light-Emitting Diode, each pixel emits its own light.",
		Benefit:     "Perfect blacks, better contrast, faster response, richer colors.",
		Notes:       []string{"Generally superior to LCD but more expensive"},
	},
	{
		Term:        "LCD",
		Name:        "LCD Display",
		Description: "Liquid Crystal Display, a backlight shining through color filters.",
		Benefit:     "More affordable, longer lifespan, less power-hungry.",
		Notes:       []string{"Still good quality, but not as vibrant as OLED"},
	},
	{
		Term:        "Refresh Rate",
		Name:        "Display Refresh Rate",
		Description: "How many times per second the display updates, measured in Hz.",
		Notes: []string{
			"60Hz: standard, smooth for most uses",
			"90Hz: better for gaming, smoother scrolling",
			"120Hz: premium, very smooth for everything",
			"144Hz: high-end gaming phones",
		},
	},
	{
		Term:        "RAM",
		Name:        "Random Access Memory",
		Description: "Temporary memory apps and the OS use for quick access to data.",
		Notes: []string{
			"4GB: basic tasks",
			"6-8GB: general use, gaming",
			"12GB+: heavy multitasking, video editing",
		},
	},
}
