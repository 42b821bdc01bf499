package browser

import "testing"

func TestDomainMatches(t *testing.T) {
	tests := []struct {
		cookieDomain string
		targetHost   string
		want         bool
	}{
		{"leetcode.com", "leetcode.com", true},
		{".leetcode.com", "leetcode.com", true},
		{".geeksforgeeks.org", "www.geeksforgeeks.org", true},
		{"interviewbit.com", "www.interviewbit.com", true},
		{"leetcode.com", "notleetcode.com", false},
		{"example.com", "leetcode.com", false},
		{"", "leetcode.com", false},
		{"leetcode.com", "", false},
	}
	for _, tt := range tests {
		if got := domainMatches(tt.cookieDomain, tt.targetHost); got != tt.want {
			t.Errorf("domainMatches(%q, %q) = %v, want %v", tt.cookieDomain, tt.targetHost, got, tt.want)
		}
	}
}
