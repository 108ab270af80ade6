package scout

import (
	"context"
	"fmt"
)

// ProjectSource lists the fixed-fee projects of the time-tracking service.
type ProjectSource interface {
	Projects(ctx context.Context) ([]Project, error)
}

// NetworkSource lists the startups of the CRM startup network.
type NetworkSource interface {
	Network(ctx context.Context) ([]Startup, error)
}

// RoundSource lists the funding rounds of organizations by permalink.
type RoundSource interface {
	Rounds(ctx context.Context, permalinks []string) ([]FundingRound, error)
}

// Sources gathers the data sources of the dashboard.
type Sources struct {
	Projects ProjectSource
	Network  NetworkSource
	Rounds   RoundSource
}

// Dashboard is everything displayed on the dashboard page.
type Dashboard struct {
	On       Date
	Billing  *BillingReport
	Network  []Startup
	Rounds   []FundingRound // every round joined with its startup
	LastWeek *RoundsReport
}

// NewDashboard fetches every source in turn and computes the reports on a given day.
//
// Any source error aborts.
func NewDashboard(ctx context.Context, src Sources, on Date) (*Dashboard, error) {
	projects, err := src.Projects.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list projects: %w", err)
	}
	network, err := src.Network.Network(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list startup network: %w", err)
	}
	rounds, err := src.Rounds.Rounds(ctx, Permalinks(network))
	if err != nil {
		return nil, fmt.Errorf("cannot list funding rounds: %w", err)
	}

	joined := JoinRounds(rounds, network)
	return &Dashboard{
		On:       on,
		Billing:  NewBillingReport(projects, on),
		Network:  network,
		Rounds:   joined,
		LastWeek: LastWeekRounds(joined, on),
	}, nil
}
