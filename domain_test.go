package scout

import "testing"

func TestFindDomain(t *testing.T) {
	tests := []struct {
		website string
		want    string
		ok      bool
	}{
		{"https://www.acme.io/", "acme.io", true},
		{"https://www.acme.io/about/team", "acme.io", true},
		{"www.acme.io", "acme.io", true},
		{"acme.io", "acme.io", true},
		{"https://acme.io", "acme.io", true},
		{"http://ACME.com/ ", "acme.com", true},
		{"https://www.acme.co.uk/", "acme.co.uk", true},
		{"www.acme.co.uk", "acme.co.uk", true},
		{"https://shop.acme.com.au/store", "acme.com.au", true},
		{"https://acme.us.com/", "acme.us.com", true},
		{"https://acme.wixsite.com/home", "wixsite.com", true},
		{"", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.website, func(t *testing.T) {
			got, ok := FindDomain(tt.website)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FindDomain(%q) = %q, %v, want %q, %v", tt.website, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsExcludedDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   bool
	}{
		{"linkedin.com", true},
		{"stealth", true},
		{"N/A", true},
		{"wixsite.com", true},
		{"acme.io", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsExcludedDomain(tt.domain); got != tt.want {
			t.Errorf("IsExcludedDomain(%q) = %v, want %v", tt.domain, got, tt.want)
		}
	}
}
