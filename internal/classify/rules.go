package classify

// FallbackBrand is the tapware brand whose products get a default category
// chain when no rule group matches at all.
const FallbackBrand = "Nero Tapware"

// FallbackChain returns the category chain appended for FallbackBrand
// products that matched nothing.
func FallbackChain() []string {
	return []string{"tapware", "bathroom"}
}

// DefaultAncestors maps each category id to its parent chain, immediate
// parent first. Ids absent from the map are roots.
func DefaultAncestors() map[string][]string {
	return map[string][]string{
		"basin-mixers":   {"bathroom-tapware", "bathroom"},
		"wall-mixers":    {"bathroom-tapware", "bathroom"},
		"shower-mixers":  {"bathroom-tapware", "bathroom"},
		"bath-mixers":    {"bathroom-tapware", "bathroom"},
		"wall-spouts":    {"bathroom-tapware", "bathroom"},
		"bath-spouts":    {"bathroom-tapware", "bathroom"},
		"kitchen-mixers": {"kitchen-tapware", "kitchen"},
		"sink-mixers":    {"kitchen-tapware", "kitchen"},
		"mixers":         {"tapware"},

		"above-counter-basins": {"basins", "bathroom"},
		"under-counter-basins": {"basins", "bathroom"},
		"wall-hung-basins":     {"basins", "bathroom"},
		"semi-recessed-basins": {"basins", "bathroom"},
		"basins":               {"bathroom"},

		"back-to-wall-toilets": {"toilets", "bathroom"},
		"wall-faced-toilets":   {"toilets", "bathroom"},
		"wall-hung-toilets":    {"toilets", "bathroom"},
		"toilet-suites":        {"toilets", "bathroom"},
		"toilets":              {"bathroom"},

		"glass-pool-fencing":    {"glass-fencing", "fencing"},
		"glass-fencing":         {"fencing"},
		"aluminium-fencing":     {"fencing"},
		"glass-balustrades":     {"balustrades"},
		"aluminium-balustrades": {"balustrades"},

		"frameless-shower-screens":      {"shower-screens", "bathroom"},
		"semi-frameless-shower-screens": {"shower-screens", "bathroom"},
		"shower-screens":                {"bathroom"},

		"floor-tiles":       {"tiles", "flooring"},
		"wall-tiles":        {"tiles"},
		"hybrid-flooring":   {"flooring"},
		"laminate-flooring": {"flooring"},
		"timber-flooring":   {"flooring"},

		"composite-decking":  {"decking"},
		"composite-cladding": {"cladding"},
	}
}

// DefaultGroups returns the built-in cascade, one group per product family.
//
// Group order and rule order are load-bearing: output category ordering
// follows group evaluation order, and within a group the first matching
// rule wins, so compound keywords must come before the generic terms they
// contain.
func DefaultGroups() []Group {
	return []Group{
		{
			Name: "tapware",
			Rules: []Rule{
				{Keyword: "basin mixer", Category: "basin-mixers"},
				{Keyword: "wall mixer", Category: "wall-mixers"},
				{Keyword: "shower mixer", Category: "shower-mixers"},
				{Keyword: "bath mixer", Category: "bath-mixers"},
				{Keyword: "kitchen mixer", Category: "kitchen-mixers"},
				{Keyword: "sink mixer", Category: "sink-mixers"},
				{Keyword: "wall spout", Category: "wall-spouts"},
				{Keyword: "bath spout", Category: "bath-spouts"},
				{Keyword: "mixer", Category: "mixers"},
				{Keyword: "tapware", Category: "tapware"},
			},
		},
		{
			Name: "basins",
			Rules: []Rule{
				{Keyword: "above counter basin", Category: "above-counter-basins"},
				{Keyword: "under counter basin", Category: "under-counter-basins"},
				{Keyword: "undermount basin", Category: "under-counter-basins"},
				{Keyword: "wall hung basin", Category: "wall-hung-basins"},
				{Keyword: "semi recessed basin", Category: "semi-recessed-basins"},
				{Keyword: "basin", Exclude: []string{"mixer", "tap", "spout"}, Category: "basins"},
			},
		},
		{
			Name: "toilets",
			Rules: []Rule{
				{Keyword: "back to wall toilet", Category: "back-to-wall-toilets"},
				{Keyword: "wall faced toilet", Category: "wall-faced-toilets"},
				{Keyword: "wall hung toilet", Category: "wall-hung-toilets"},
				{Keyword: "toilet suite", Category: "toilet-suites"},
				{Keyword: "toilet", Category: "toilets"},
			},
		},
		{
			Name: "fencing",
			Rules: []Rule{
				{Keyword: "glass pool fencing", Category: "glass-pool-fencing"},
				{Keyword: "glass fencing", Category: "glass-fencing"},
				{Keyword: "aluminium fencing", Category: "aluminium-fencing"},
				{Keyword: "glass balustrade", Category: "glass-balustrades"},
				{Keyword: "aluminium balustrade", Category: "aluminium-balustrades"},
				{Keyword: "pool fencing", Category: "glass-pool-fencing"},
				{Keyword: "balustrade", Category: "balustrades"},
				{Keyword: "fencing", Category: "fencing"},
			},
		},
		{
			Name: "shower-screens",
			Rules: []Rule{
				{Keyword: "semi frameless shower screen", Category: "semi-frameless-shower-screens"},
				{Keyword: "frameless shower screen", Category: "frameless-shower-screens"},
				{Keyword: "shower screen", Category: "shower-screens"},
			},
		},
		{
			Name: "flooring",
			Rules: []Rule{
				{Keyword: "floor tile", Category: "floor-tiles"},
				{Keyword: "wall tile", Category: "wall-tiles"},
				{Keyword: "hybrid flooring", Category: "hybrid-flooring"},
				{Keyword: "laminate flooring", Category: "laminate-flooring"},
				{Keyword: "timber flooring", Category: "timber-flooring"},
				{Keyword: "tile", Exclude: []string{"textile"}, Category: "tiles"},
				{Keyword: "flooring", Category: "flooring"},
			},
		},
		{
			Name: "decking",
			Rules: []Rule{
				{Keyword: "composite decking", Category: "composite-decking"},
				{Keyword: "decking", Category: "decking"},
			},
		},
		{
			Name: "cladding",
			Rules: []Rule{
				{Keyword: "composite cladding", Category: "composite-cladding"},
				{Keyword: "cladding", Category: "cladding"},
			},
		},
	}
}
