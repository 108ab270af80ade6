package crunchbase

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/etnz/scout"
)

// OrganizationFields are the organization properties requested by searches.
var OrganizationFields = []string{
	"website_url", "short_description",
	"diversity_spotlights", "funding_total",
	"funding_stage", "last_equity_funding_type",
	"categories", "category_groups",
	"location_identifiers", "founded_on",
	"last_funding_at",
	"num_employees_enum", "permalink",
}

// Search returns the organizations matching websites (byDomain) or permalinks.
//
// Websites are matched on their domain. A malformed payload is logged and counts as no
// match.
func (c *Client) Search(ctx context.Context, values []string, byDomain bool) ([]Entity, error) {
	p := Predicate{Type: "predicate", FieldID: "identifier", Operator: "includes", Values: values}
	if byDomain {
		domains := make([]string, 0, len(values))
		for _, website := range values {
			if d, ok := scout.FindDomain(website); ok {
				domains = append(domains, d)
			}
		}
		p = Predicate{Type: "predicate", FieldID: "website_url", Operator: "domain_includes", Values: domains}
	}

	entities, err := c.search(ctx, "organizations", Query{
		FieldIDs: OrganizationFields,
		Query:    []Predicate{p},
		Order:    newestFirst,
		Limit:    searchLimit,
	})
	if errors.Is(err, scout.ErrMalformedResponse) {
		log.Printf("no organization matched %v: %v", values, err)
		return nil, nil
	}
	return entities, err
}

// Match returns the properties of the newest organization with the website's domain.
func (c *Client) Match(ctx context.Context, website string) (map[string]any, bool, error) {
	entities, err := c.Search(ctx, []string{website}, true)
	if err != nil || len(entities) == 0 {
		return nil, false, err
	}
	return entities[0].Properties, true, nil
}

// ParseOrganization normalizes organization properties, absent properties stay absent.
func ParseOrganization(props map[string]any) scout.Organization {
	o := scout.Organization{
		Name:                  str(props, "$.identifier.value"),
		Permalink:             str(props, "$.permalink"),
		Website:               str(props, "$.website_url"),
		Description:           str(props, "$.short_description"),
		LastEquityFundingType: str(props, "$.last_equity_funding_type"),
		LastFundingAt:         date(props, "$.last_funding_at"),
		FoundedOn:             date(props, "$.founded_on.value"),
		Categories:            strs(props, "$.categories[*].value"),
		CategoryGroups:        strs(props, "$.category_groups[*].value"),
	}
	if o.Permalink == "" {
		o.Permalink = str(props, "$.identifier.permalink")
	}

	o.Location = scout.Location(
		str(props, `$.location_identifiers[?(@.location_type == "city")].value`),
		str(props, `$.location_identifiers[?(@.location_type == "region")].value`),
		str(props, `$.location_identifiers[?(@.location_type == "country")].value`),
	)

	if total := usd(props, "$.funding_total.value_usd"); total != nil && total.IsPositive() {
		o.FundingTotal = total
	}
	o.FundingStatus = scout.FundingStatus(o.LastEquityFundingType, o.FundingTotal)

	seen := make(map[string]bool)
	for _, spotlight := range strs(props, "$.diversity_spotlights[*].value") {
		if label, ok := scout.DiversityLabel(spotlight); ok && !seen[label] {
			seen[label] = true
			o.Diversity = append(o.Diversity, label)
		}
	}
	sort.Strings(o.Diversity)

	o.NumEmployees, _ = scout.EmployeeRange(str(props, "$.num_employees_enum"))
	return o
}
