package catalog

import "encoding/json"

// SpecEntry is one label/info line inside a spec category.
type SpecEntry struct {
	Label string `json:"label"`
	Info  string `json:"info"`
}

// Phone is the canonical shape of one catalog row. Spotlight and AllSpecs are
// always non-nil maps. Rows are rebuilt from scratch on every store query and
// never mutated afterwards.
type Phone struct {
	ID        string                 `json:"id"`
	BrandName string                 `json:"brand_name"`
	PhoneName string                 `json:"phone_name"`
	ImageURL  string                 `json:"image_url,omitempty"`
	Price     string                 `json:"price,omitempty"`
	Spotlight map[string]string      `json:"spotlight"`
	AllSpecs  map[string][]SpecEntry `json:"all_specs"`
}

// decodeRows normalizes a raw store payload at the boundary. Anything that is
// not a well-formed row list decodes as zero rows, not an error; individual
// rows that cannot be decoded are skipped.
func decodeRows(body []byte) []Phone {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil
	}
	rows := make([]Phone, 0, len(raws))
	for _, raw := range raws {
		if p, ok := decodeRow(raw); ok {
			rows = append(rows, p)
		}
	}
	return rows
}

func decodeRow(raw json.RawMessage) (Phone, bool) {
	var aux struct {
		ID        json.RawMessage `json:"id"`
		BrandName json.RawMessage `json:"brand_name"`
		PhoneName json.RawMessage `json:"phone_name"`
		ImageURL  json.RawMessage `json:"image_url"`
		Price     json.RawMessage `json:"price"`
		Spotlight json.RawMessage `json:"spotlight"`
		AllSpecs  json.RawMessage `json:"all_specs"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return Phone{}, false
	}

	p := Phone{
		ID:        asString(aux.ID),
		BrandName: asString(aux.BrandName),
		PhoneName: asString(aux.PhoneName),
		ImageURL:  asString(aux.ImageURL),
		Price:     asString(aux.Price),
		Spotlight: make(map[string]string),
		AllSpecs:  make(map[string][]SpecEntry),
	}

	if len(aux.Spotlight) > 0 {
		var spot map[string]json.RawMessage
		if err := json.Unmarshal(aux.Spotlight, &spot); err == nil {
			for k, v := range spot {
				if s := asString(v); s != "" {
					p.Spotlight[k] = s
				}
			}
		}
	}
	if len(aux.AllSpecs) > 0 {
		var specs map[string][]SpecEntry
		if err := json.Unmarshal(aux.AllSpecs, &specs); err == nil {
			for k, v := range specs {
				p.AllSpecs[k] = v
			}
		}
	}
	return p, true
}

// asString accepts strings and bare numbers; anything else becomes "".
func asString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
