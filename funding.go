package scout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Funding statuses, from the earliest to the latest stage.
const (
	PreSeed     = "Pre-Seed"
	Seed        = "Seed"
	SeriesA     = "Series A"
	SeriesB     = "Series B or later"
	Undisclosed = "Undisclosed"
)

// fundingTypes maps startup-data equity funding types to a funding status.
var fundingTypes = map[string]string{
	"angel":    PreSeed,
	"pre_seed": PreSeed,
	"seed":     Seed,
	"series_a": SeriesA,
}

// fundingCutoffs are the total amounts raised above which a startup with an
// undisclosed last round is considered Seed, Series A, and Series B or later.
var fundingCutoffs = [3]decimal.Decimal{
	decimal.NewFromInt(1_000_000),
	decimal.NewFromInt(5_000_000),
	decimal.NewFromInt(20_000_000),
}

// FundingStatus returns the funding status of a startup from its last equity funding
// type (may be empty) and its total funding (may be nil).
//
// Known types map directly; later lettered series ("series_b", "series_c", ...) are
// "Series B or later". When the type does not tell, the total amount raised decides.
func FundingStatus(lastEquityType string, total *Money) string {
	status := Undisclosed
	if s, ok := fundingTypes[lastEquityType]; ok {
		status = s
	} else if strings.Contains(lastEquityType, "series") && len(lastEquityType) == len("series_b") {
		status = SeriesB
	}

	if status != Undisclosed || total == nil || !total.IsPositive() {
		return status
	}

	switch v := total.Decimal(); {
	case v.GreaterThan(fundingCutoffs[2]):
		return SeriesB
	case v.GreaterThan(fundingCutoffs[1]):
		return SeriesA
	case v.GreaterThan(fundingCutoffs[0]):
		return Seed
	default:
		return PreSeed
	}
}

// diversityLabels maps startup-data diversity spotlights to the CRM vocabulary.
var diversityLabels = map[string]string{
	"American Indian / Alaska Native Founded":    "Native American or Alaskan Native",
	"American Indian / Alaska Native Led":        "Native American or Alaskan Native",
	"Indigenous Founded":                         "Native American or Alaskan Native",
	"Indigenous Led":                             "Native American or Alaskan Native",
	"Black / African American Founded":           "Black American or African-American or African",
	"Black / African American Led":               "Black American or African-American or African",
	"Black Founded":                              "Black American or African-American or African",
	"Black Led":                                  "Black American or African-American or African",
	"East Asian Founded":                         "Asian",
	"East Asian Led":                             "Asian",
	"Hispanic / Latinx Founded":                  "Latinx or Hispanic",
	"Hispanic / Latinx Led":                      "Latinx or Hispanic",
	"Hispanic / Latine Founded":                  "Latinx or Hispanic",
	"Hispanic / Latine Led":                      "Latinx or Hispanic",
	"Middle Eastern / North African Founded":     "North African or Middle Eastern",
	"Middle Eastern / North African Led":         "North African or Middle Eastern",
	"Native Hawaiian / Pacific Islander Founded": "Pacific Islander",
	"Native Hawaiian / Pacific Islander Led":     "Pacific Islander",
	"South Asian Founded":                        "Asian",
	"South Asian Led":                            "Asian",
	"Southeast Asian Founded":                    "Asian",
	"Southeast Asian Led":                        "Asian",
	"Women Founded":                              "Female",
	"Women Led":                                  "Female",
}

// DiversityLabel returns the CRM label for a diversity spotlight.
func DiversityLabel(spotlight string) (string, bool) {
	label, ok := diversityLabels[spotlight]
	return label, ok
}

// employeeRanges maps employee-count buckets to readable ranges.
var employeeRanges = map[string]string{
	"c_00001_00010": "1-10",
	"c_00011_00050": "11-50",
	"c_00051_00100": "51-100",
	"c_00101_00250": "101-250",
	"c_00251_00500": "251-500",
	"c_00501_01000": "501-1000",
	"c_01001_05000": "1001-5000",
	"c_05001_10000": "5001-10000",
	"c_10001_max":   "10001+",
}

// EmployeeRange returns the readable range of an employee-count bucket.
func EmployeeRange(code string) (string, bool) {
	r, ok := employeeRanges[code]
	return r, ok
}
