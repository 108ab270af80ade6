package scout

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// OrganizationURL is the public page of a startup-data organization, by permalink.
const OrganizationURL = "https://www.crunchbase.com/organization/"

// RoundsWindow is the number of days, today included, covered by the rounds report.
const RoundsWindow = 8

// FundingRound is an investment event reported by the startup-data service.
//
// Website and Stage are only set once the round is joined with its startup.
type FundingRound struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Permalink       string   `json:"permalink"`
	AnnouncedOn     Date     `json:"announced_on"`
	CreatedAt       Date     `json:"created_at"`
	InvestmentType  string   `json:"investment_type,omitempty"`
	Raised          *Money   `json:"usd_raised,omitempty"`
	PreMoney        *Money   `json:"pre_money_value_usd,omitempty"`
	PostMoney       *Money   `json:"post_money_value_usd,omitempty"`
	Investors       []string `json:"investor_names,omitempty"`
	NumInvestors    int      `json:"num_investors,omitempty"`
	OrgFundingTotal *Money   `json:"funded_organization_funding_total,omitempty"`
	URL             string   `json:"url"`

	Website string `json:"website,omitempty"`
	Stage   string `json:"stage,omitempty"`
}

// RaisedOrZero returns the amount raised, zero when undisclosed.
func (r FundingRound) RaisedOrZero() Money {
	if r.Raised == nil {
		return Money{}
	}
	return *r.Raised
}

// JoinRounds joins rounds with the startup that has the same permalink.
//
// Startups sharing a permalink count once, the first one wins. Rounds of unknown
// permalinks are dropped.
func JoinRounds(rounds []FundingRound, startups []Startup) []FundingRound {
	byPermalink := make(map[string]Startup)
	for _, s := range startups {
		if _, exists := byPermalink[s.Permalink]; exists || s.Permalink == "" {
			continue
		}
		byPermalink[s.Permalink] = s
	}

	joined := make([]FundingRound, 0, len(rounds))
	for _, r := range rounds {
		s, ok := byPermalink[r.Permalink]
		if !ok {
			continue
		}
		r.Website = s.Website
		r.Stage = s.Stage
		joined = append(joined, r)
	}
	return joined
}

// RoundsReport lists the rounds announced in a period, by increasing amount raised.
type RoundsReport struct {
	Range
	Rounds []FundingRound
	Total  Money
}

// NewRoundsReport selects the rounds announced between from and to (inclusive), of
// startups not in an excluded stage.
//
// Rounds of an undisclosed amount come last.
func NewRoundsReport(rounds []FundingRound, from, to Date, excludedStages ...string) *RoundsReport {
	r := &RoundsReport{Range: NewRange(from, to)}
	for _, round := range rounds {
		on := round.AnnouncedOn
		if on.IsZero() || !r.Contains(on) || slices.Contains(excludedStages, round.Stage) {
			continue
		}
		r.Rounds = append(r.Rounds, round)
		r.Total = r.Total.Add(round.RaisedOrZero())
	}
	sort.SliceStable(r.Rounds, func(i, j int) bool {
		a, b := r.Rounds[i].Raised, r.Rounds[j].Raised
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.LessThan(*b)
	})
	return r
}

// LastWeekRounds is the rounds report of the RoundsWindow days up to on, leaving out
// startups that are out of scope.
func LastWeekRounds(rounds []FundingRound, on Date) *RoundsReport {
	w := LastDays(on, RoundsWindow)
	return NewRoundsReport(rounds, w.From, w.To, StageOutOfScope)
}

// Summary returns a one line summary, e.g. "$42M raised in 7 rounds last week".
func (r *RoundsReport) Summary() string {
	return fmt.Sprintf("$%.0fM raised in %d rounds last week", r.Total.Float()/1e6, len(r.Rounds))
}

// InvestorList returns the investor names of a round joined by commas.
func (r FundingRound) InvestorList() string { return strings.Join(r.Investors, ", ") }
