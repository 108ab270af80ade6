package scout

import (
	"sort"
)

// VelocityCutoff is the default date after which rounds count in the funding velocity.
var VelocityCutoff = NewDate(2017, 1, 1)

// CardRound is a round raised by an organization, as listed on its entity card.
type CardRound struct {
	AnnouncedOn    Date
	InvestmentType string
	Raised         *Money
	Investors      []string
}

// OrganizationCard summarizes the funding history of one organization.
type OrganizationCard struct {
	Permalink string
	Rounds    []CardRound
}

// Investors returns every investor of the organization once, sorted.
func (c OrganizationCard) Investors() []string {
	seen := make(map[string]bool)
	var investors []string
	for _, r := range c.Rounds {
		for _, i := range r.Investors {
			if !seen[i] {
				seen[i] = true
				investors = append(investors, i)
			}
		}
	}
	sort.Strings(investors)
	return investors
}

// TotalFunding returns the sum of the disclosed amounts raised.
func (c OrganizationCard) TotalFunding() Money {
	var total Money
	for _, r := range c.Rounds {
		if r.Raised != nil {
			total = total.Add(*r.Raised)
		}
	}
	return total
}

// FundingVelocity returns the number of rounds announced after cutoff.
func (c OrganizationCard) FundingVelocity(cutoff Date) int {
	n := 0
	for _, r := range c.Rounds {
		if r.AnnouncedOn.After(cutoff) {
			n++
		}
	}
	return n
}
