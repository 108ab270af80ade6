package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/scout"
	"github.com/etnz/scout/docs"
	"github.com/etnz/scout/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// defaultDays is the default lookback of RecentRounds.
const defaultDays = 7

// Snapshot returns the dashboard the Analyst answers from.
type Snapshot func(ctx context.Context) (*scout.Dashboard, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a consultancy working with climate startups. They come to you for their
			billing rates and for news about the startups of their network: who raised money, how much
			and from whom.

			Devise a plan of questions to ask to each experts and come up with the best response to the
			user's request. Answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout returns an expert grounded on Google Search, for news about startups and investors.
func NewScout() *Expert {
	return &Expert{
		Name: "Scout",
		Description: `This is an expert of the startup ecosystem,
		aware of the latest news about companies, investors and funds.
		Ask the Scout whenever you need recent or grounding information that is not in the user's data.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert of startups and venture capital. You can search and find about anything related to
			companies, investors, funds and funding rounds. You leverage Google Search to
			ground your assertions in a solid truth.
			`}}},
		},
	}
}

// NewAnalyst returns the expert of the user's own data: billing rates, startup network
// and funding rounds.
func NewAnalyst(snapshot Snapshot) *Expert {
	lib := AnalystFunctions(snapshot)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the user's dashboard: the billing rates of the
		consultancy's projects, the startups of the user's network and their funding rounds.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's dashboard.
				You know how to use the Tools to extract relevant information about the user's projects
				and startup network. Other experts might ask you questions, pardon their approximative
				language and figure out what they meant.

				Use the available tools to get:
				  - the funding rounds of the network's startups over the last days
				  - everything known about one startup
				  - the effective hourly rates of the projects
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// AnalystFunctions returns the functions of the Analyst, reading from snapshot.
func AnalystFunctions(snapshot Snapshot) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "RecentRounds",
				Description: `RecentRounds lists the funding rounds announced by the startups of the network over the last days.

				` + must(docs.GetTopic("funding")),
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"days": {
							Type:        genai.TypeInteger,
							Description: "How many days back to look, 7 by default.",
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown summary line followed by one bullet per round.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				days, err := intArg(args, "days", defaultDays)
				if err != nil {
					return errorResponse(id, "RecentRounds", err)
				}
				d, err := snapshot(ctx)
				if err != nil {
					return errorResponse(id, "RecentRounds", err)
				}
				w := scout.LastDays(d.On, days)
				r := scout.NewRoundsReport(d.Rounds, w.From, w.To, scout.StageOutOfScope)
				return outputResponse(id, "RecentRounds", renderer.RoundsMarkdown(r))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Startup",
				Description: `Startup details a startup of the network: CRM stage, contact level, custom fields and funding rounds.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {
							Type:        genai.TypeString,
							Description: "The name of the startup, or part of it. Case does not matter.",
						},
					},
					Required: []string{"name"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown document per matching startup.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				name, ok := args["name"].(string)
				if !ok || strings.TrimSpace(name) == "" {
					return errorResponse(id, "Startup", fmt.Errorf("argument 'name' is required, got %v", args["name"]))
				}
				d, err := snapshot(ctx)
				if err != nil {
					return errorResponse(id, "Startup", err)
				}
				return outputResponse(id, "Startup", startups(d, name))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "BillingRates",
				Description: `BillingRates details the effective hourly rate of every fixed-fee project, all-time and for the active ones.`,
				Parameters:  &genai.Schema{Type: genai.TypeObject},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the rates and one row per project.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				d, err := snapshot(ctx)
				if err != nil {
					return errorResponse(id, "BillingRates", err)
				}
				return outputResponse(id, "BillingRates", renderer.BillingMarkdown(d.Billing))
			},
		},
	}
}

// startups renders the startups whose name contains name.
func startups(d *scout.Dashboard, name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, s := range d.Network {
		if !strings.Contains(strings.ToLower(s.Name), name) {
			continue
		}
		var rounds []scout.FundingRound
		for _, r := range d.Rounds {
			if s.Permalink != "" && r.Permalink == s.Permalink {
				rounds = append(rounds, r)
			}
		}
		b.WriteString(renderer.StartupMarkdown(s, rounds))
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return fmt.Sprintf("No startup named %q in the network.", name)
	}
	return b.String()
}

// intArg reads an integer argument, def when absent.
func intArg(args map[string]any, name string, def int) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	}
	return def, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
}
