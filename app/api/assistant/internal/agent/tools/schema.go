package tools

import "github.com/cloudwego/eino/schema"

const (
	ToolSearchPhones   = "search_phones_by_filters"
	ToolPhoneDetails   = "get_phone_details"
	ToolListPhones     = "list_all_phones"
	ToolComparePhones  = "compare_phones"
	ToolExplainFeature = "explain_phone_feature"
)

func BuildToolInfos() []*schema.ToolInfo {
	searchParams := map[string]*schema.ParameterInfo{
		"max_price": {
			Type: schema.Integer,
			Desc: "Maximum price in rupees",
		},
		"min_price": {
			Type: schema.Integer,
			Desc: "Minimum price in rupees",
		},
		"brand": {
			Type: schema.String,
			Desc: "Brand name, e.g. Google, Samsung, Apple",
		},
		"min_ram": {
			Type: schema.Integer,
			Desc: "Minimum RAM in GB",
		},
		"battery_threshold": {
			Type: schema.Integer,
			Desc: "Minimum battery capacity in mAh",
		},
		"refresh_rate": {
			Type: schema.Integer,
			Desc: "Minimum display refresh rate in Hz",
		},
	}

	detailsParams := map[string]*schema.ParameterInfo{
		"phone_id": {
			Type:     schema.String,
			Desc:     "Catalog id or (partial) phone name, e.g. pixel-8a",
			Required: true,
		},
	}

	compareParams := map[string]*schema.ParameterInfo{
		"phone_id_1": {
			Type:     schema.String,
			Desc:     "First phone id",
			Required: true,
		},
		"phone_id_2": {
			Type:     schema.String,
			Desc:     "Second phone id",
			Required: true,
		},
		"phone_id_3": {
			Type: schema.String,
			Desc: "Optional third phone id",
		},
	}

	explainParams := map[string]*schema.ParameterInfo{
		"feature": {
			Type:     schema.String,
			Desc:     "Feature to explain, e.g. OIS, OLED, Refresh Rate",
			Required: true,
		},
	}

	return []*schema.ToolInfo{
		{
			Name:        ToolSearchPhones,
			Desc:        "Search phones by price bounds, brand, RAM, battery and refresh-rate constraints. All filters optional.",
			ParamsOneOf: schema.NewParamsOneOfByParams(searchParams),
		},
		{
			Name:        ToolPhoneDetails,
			Desc:        "Get the full specification sheet for one phone by id or name.",
			ParamsOneOf: schema.NewParamsOneOfByParams(detailsParams),
		},
		{
			Name:        ToolListPhones,
			Desc:        "List every phone in the catalog.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name:        ToolComparePhones,
			Desc:        "Compare two or three phones side by side.",
			ParamsOneOf: schema.NewParamsOneOfByParams(compareParams),
		},
		{
			Name:        ToolExplainFeature,
			Desc:        "Explain a technical phone feature or term.",
			ParamsOneOf: schema.NewParamsOneOfByParams(explainParams),
		},
	}
}

// ToolInfosByName selects a subset of the tool surface, preserving the
// registry order. Unknown names are ignored.
func ToolInfosByName(names ...string) []*schema.ToolInfo {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}
	all := BuildToolInfos()
	out := make([]*schema.ToolInfo, 0, len(names))
	for _, info := range all {
		if _, ok := wanted[info.Name]; ok {
			out = append(out, info)
		}
	}
	return out
}
