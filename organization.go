package scout

// Organization is a startup as described by the startup-data service.
//
// Every field is optional upstream: absent strings are empty, absent dates are zero.
type Organization struct {
	Name                  string   `json:"name"`
	Permalink             string   `json:"permalink"`
	Website               string   `json:"website,omitempty"`
	Description           string   `json:"description,omitempty"`
	Location              string   `json:"location,omitempty"`
	FundingStatus         string   `json:"funding_status"`
	LastEquityFundingType string   `json:"last_equity_funding_type,omitempty"`
	LastFundingAt         Date     `json:"last_funding_at"`
	FundingTotal          *Money   `json:"funding_total,omitempty"`
	Diversity             []string `json:"diversity,omitempty"` // sorted, unique
	Categories            []string `json:"categories,omitempty"`
	CategoryGroups        []string `json:"category_groups,omitempty"`
	FoundedOn             Date     `json:"founded_on"`
	NumEmployees          string   `json:"num_employees,omitempty"`
}

// Location joins the parts of a headquarters location: "city, region" in the
// United States, "city, country" elsewhere.
func Location(city, region, country string) string {
	second := country
	if country == "United States" {
		second = region
	}
	switch {
	case city == "":
		return second
	case second == "":
		return city
	}
	return city + ", " + second
}
