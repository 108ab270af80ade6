package scout

import (
	"regexp"
	"slices"
	"strings"
)

// hostRE captures the host part of an url that has a path.
var hostRE = regexp.MustCompile(`//(.+?)/`)

// countryTLDs lists the top level domains where companies register under a second
// level (co.uk, com.au, ...), the registered domain then has three labels.
var countryTLDs = []string{"au", "br", "cn", "jp", "ke", "kr", "nz", "uk", "za"}

// FindDomain extracts the registered domain from a website.
//
// "https://www.acme.co.uk/about" gives "acme.co.uk", "www.acme.io" gives "acme.io".
// It returns false for an empty website.
func FindDomain(website string) (string, bool) {
	if strings.TrimSpace(website) == "" {
		return "", false
	}

	var labels []string
	if m := hostRE.FindStringSubmatch(website); m != nil {
		labels = strings.Split(m[1], ".")
	} else {
		labels = strings.Split(website, ".")
	}

	keep := 2
	if slices.Contains(countryTLDs, labels[len(labels)-1]) || strings.Contains(website, ".us.com") {
		keep = 3
	}
	if len(labels) > keep {
		labels = labels[len(labels)-keep:]
	}
	domain := strings.Join(labels, ".")
	domain = strings.ReplaceAll(domain, "https://", "")
	domain = strings.ReplaceAll(domain, "http://", "")

	domain = strings.ToLower(domain)
	domain = strings.TrimSpace(domain)
	domain = strings.Trim(domain, "/")
	return domain, true
}

// excludedDomains are website values that do not identify a company: placeholders
// typed in the CRM, and hosting, social or institutional domains shared by many.
var excludedDomains = map[string]bool{
	"?": true, "??": true, "???": true, "N/A": true, "n/a": true, "\n": true,
	"none.com": true, "N": true, "n": true, "None": true, "none": true,
	" ": true, "Stealth": true, "stealth": true,
	"linkedin.com": true, "herox.com": true, "activate.org": true,
	"energy.gov": true, "greentownlabs.com": true,
	"cyclotronroad.org": true, "stanford.edu": true,
	"berkeley.edu": true, "harvard.edu": true, "illinois.edu": true,
	"fraunhofer.de": true, "solarimpulse.com": true,
	"engine.xyz": true, "greencom-networks.com": true,
	"wixsite.com": true, "business.site": true, "carrd.co": true,
	"webflow.io": true, "wordpress.com": true, "weebly.com": true,
	"blogspot.com": true, "herokuapp.com": true, "us.com": true, "forbes.com": true,
	"substack.com": true, "producthunt.com": true, "instagram.com": true,
	"youtube.com": true, "squarespace.com": true, "google.com": true,
	"crunchbase.com": true, "f6s.com": true, "facebook.com": true,
	"apple.com": true,
}

// IsExcludedDomain reports whether domain cannot be used to identify a company.
func IsExcludedDomain(domain string) bool { return excludedDomains[domain] }
