// Package scout provides the domain types and reports of a consultancy's business
// dashboard.
//
// The core functionalities include:
//   - Billing: the effective hourly rate of fixed-fee projects, from their fee, dates
//     and tracked hours, all-time and for the recently active ones.
//   - Startup network: the startups of the CRM pipeline, their stage, quality and how
//     close the relationship is.
//   - Funding: the funding rounds of the network's startups, matched by website
//     domain, and the funding status of organizations.
//   - HTTP plumbing: a retrying JSON client with a daily disk cache, shared by the
//     clients of the remote services (packages toggl, streak and crunchbase).
//
// This package serves as the foundational logic for the `scout` command-line tool and
// its web dashboard.
package scout
