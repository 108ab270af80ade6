package crunchbase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/etnz/scout"
)

// RoundFields are the funding round properties requested by searches.
var RoundFields = []string{
	"announced_on", "created_at",
	"investment_type", "money_raised",
	"pre_money_valuation", "post_money_valuation",
	"investor_identifiers", "num_investors",
	"funded_organization_funding_total",
	"funded_organization_identifier",
	"identifier",
}

// SearchRounds returns the funding rounds of at most MaxBatch organizations, newest first.
func (c *Client) SearchRounds(ctx context.Context, permalinks []string) ([]Entity, error) {
	if len(permalinks) > MaxBatch {
		return nil, fmt.Errorf("cannot search rounds of %d organizations at once, max is %d", len(permalinks), MaxBatch)
	}
	return c.search(ctx, "funding_rounds", Query{
		FieldIDs: RoundFields,
		Query: []Predicate{{
			Type:     "predicate",
			FieldID:  "funded_organization_identifier",
			Operator: "includes",
			Values:   permalinks,
		}},
		Order: newestFirst,
		Limit: searchLimit,
	})
}

// Rounds returns the funding rounds of any number of organizations, searched by batches.
func (c *Client) Rounds(ctx context.Context, permalinks []string) ([]scout.FundingRound, error) {
	var rounds []scout.FundingRound
	for _, batch := range chunks(permalinks, MaxBatch) {
		entities, err := c.SearchRounds(ctx, batch)
		if err != nil {
			return nil, err
		}
		for _, e := range entities {
			rounds = append(rounds, ParseRound(e.Properties))
		}
	}
	return rounds, nil
}

// ParseRound normalizes funding round properties, absent properties stay absent.
func ParseRound(props map[string]any) scout.FundingRound {
	r := scout.FundingRound{
		ID:              str(props, "$.identifier.uuid"),
		Name:            str(props, "$.funded_organization_identifier.value"),
		Permalink:       str(props, "$.funded_organization_identifier.permalink"),
		AnnouncedOn:     date(props, "$.announced_on"),
		CreatedAt:       date(props, "$.created_at"),
		InvestmentType:  str(props, "$.investment_type"),
		Raised:          usd(props, "$.money_raised.value_usd"),
		PreMoney:        usd(props, "$.pre_money_valuation.value_usd"),
		PostMoney:       usd(props, "$.post_money_valuation.value_usd"),
		Investors:       strs(props, "$.investor_identifiers[*].value"),
		NumInvestors:    int(num(props, "$.num_investors")),
		OrgFundingTotal: usd(props, "$.funded_organization_funding_total.value_usd"),
	}
	r.URL = scout.OrganizationURL + r.Permalink
	return r
}

// OrganizationRounds returns the funding history of one organization.
func (c *Client) OrganizationRounds(ctx context.Context, permalink string) (scout.OrganizationCard, error) {
	// GET /entities/organizations/{permalink}?card_ids=raised_funding_rounds
	// {
	//   "properties": {"identifier": {...}},
	//   "cards": {"raised_funding_rounds": [
	//     {"announced_on": "2021-04-01", "investment_type": "seed",
	//      "money_raised": {"value_usd": 2000000}, "investor_identifiers": [{"value": "Fund"}]}
	//   ]}
	// }
	type Info struct {
		Cards struct {
			Rounds []map[string]any `json:"raised_funding_rounds"`
		} `json:"cards"`
	}
	var content Info
	query := url.Values{"card_ids": {"raised_funding_rounds"}}
	if err := c.do(ctx, http.MethodGet, "/entities/organizations/"+url.PathEscape(permalink), query, nil, &content); err != nil {
		return scout.OrganizationCard{}, fmt.Errorf("cannot get rounds of %s: %w", permalink, err)
	}

	card := scout.OrganizationCard{Permalink: permalink}
	for _, r := range content.Cards.Rounds {
		card.Rounds = append(card.Rounds, scout.CardRound{
			AnnouncedOn:    date(r, "$.announced_on"),
			InvestmentType: str(r, "$.investment_type"),
			Raised:         usd(r, "$.money_raised.value_usd"),
			Investors:      strs(r, "$.investor_identifiers[*].value"),
		})
	}
	return card, nil
}
