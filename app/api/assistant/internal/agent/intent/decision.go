package intent

const (
	IntentShopping  = "shopping"
	IntentRecommend = "recommendation"
	IntentCompare   = "comparison"
)

type BudgetInfo struct {
	Min int64 `json:"min,omitempty"`
	Max int64 `json:"max,omitempty"`
}

// Decision is the router's verdict on which specialist handles a turn.
type Decision struct {
	Intent      string     `json:"intent"`
	Keywords    []string   `json:"keywords,omitempty"`
	Budget      BudgetInfo `json:"budget"`
	Phones      []string   `json:"phones,omitempty"`
	Explanation string     `json:"explanation,omitempty"`
	RawOutput   string     `json:"-"`
}

// Route maps the decision to a known specialist, defaulting to the general
// shopping assistant for anything unrecognized.
func (d *Decision) Route() string {
	if d == nil {
		return IntentShopping
	}
	switch d.Intent {
	case IntentRecommend, IntentCompare:
		return d.Intent
	default:
		return IntentShopping
	}
}
