// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatRequest struct {
	SessionId string `json:"session_id,optional"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionId string `json:"session_id"`
	Reply     string `json:"reply"`
	Intent    string `json:"intent"`
}

type SearchPhonesRequest struct {
	Brand          *string `json:"brand,optional"`
	MaxPrice       *int64  `json:"max_price,optional"`
	MinPrice       *int64  `json:"min_price,optional"`
	MinRam         *int    `json:"min_ram,optional"`
	MinBattery     *int    `json:"battery_threshold,optional"`
	MinRefreshRate *int    `json:"refresh_rate,optional"`
}

type GetPhoneDetailsRequest struct {
	PhoneId string `path:"id"`
}

type ComparePhonesRequest struct {
	PhoneId1 string `json:"phone_id1"`
	PhoneId2 string `json:"phone_id2"`
	PhoneId3 string `json:"phone_id3,optional"`
}

type ExplainFeatureRequest struct {
	Feature string `form:"feature"`
}
