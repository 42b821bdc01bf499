package extractor

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// Verify interfaces are satisfied at compile time
var _ PlatformExtractor = (*LeetCode)(nil)
var _ PlatformExtractor = (*GFG)(nil)
var _ PlatformExtractor = (*InterviewBit)(nil)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture HTML: %v", err)
	}
	return doc
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("failed to parse URL %q: %v", raw, err)
	}
	return u
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		hostname string
		want     Platform
	}{
		{"leetcode.com", PlatformLeetCode},
		{"leetcode.cn", PlatformLeetCode},
		{"LEETCODE.COM", PlatformLeetCode},
		{"www.geeksforgeeks.org", PlatformGFG},
		{"practice.geeksforgeeks.org", PlatformGFG},
		{"gfg.dev", PlatformGFG},
		{"www.interviewbit.com", PlatformInterviewBit},
		{"example.com", PlatformUnknown},
		{"", PlatformUnknown},
	}
	for _, tt := range tests {
		if got := DetectPlatform(tt.hostname); got != tt.want {
			t.Errorf("DetectPlatform(%q) = %q, want %q", tt.hostname, got, tt.want)
		}
	}
}

func TestRegistry_Extractor(t *testing.T) {
	r := DefaultRegistry()
	if r.Extractor(PlatformLeetCode) == nil {
		t.Error("expected extractor for leetcode")
	}
	if r.Extractor(PlatformUnknown) != nil {
		t.Error("expected no extractor for unknown platform")
	}
}

func TestRegistry_Extract_Fallback(t *testing.T) {
	r := DefaultRegistry()
	doc := parseDoc(t, "<html><body></body></html>")
	u := mustParseURL(t, "https://example.com/some/page")

	res := r.Extract(doc, u)
	if res == nil {
		t.Fatal("fallback result must not be nil")
	}
	if res.Platform != PlatformUnknown {
		t.Errorf("platform = %q, want %q", res.Platform, PlatformUnknown)
	}
	if res.URL != "https://example.com/some/page" {
		t.Errorf("url = %q, want page URL", res.URL)
	}
	if res.Name != "" || res.Number != "" || res.Difficulty != "" {
		t.Errorf("expected absent name/number/difficulty, got %q %q %q", res.Name, res.Number, res.Difficulty)
	}
	if res.Solved {
		t.Error("solved must default to false")
	}
	if res.Topics == nil || len(res.Topics) != 0 {
		t.Errorf("topics = %v, want empty slice", res.Topics)
	}
	if res.Timestamp.IsZero() {
		t.Error("timestamp must be set")
	}
}

func TestRegistry_Extract_Dispatch(t *testing.T) {
	r := DefaultRegistry()
	doc := parseDoc(t, `<html><body>
		<div class="text-title-large"><a href="/problems/two-sum/">1. Two Sum</a></div>
	</body></html>`)
	u := mustParseURL(t, "https://leetcode.com/problems/two-sum/")

	res := r.Extract(doc, u)
	if res.Platform != PlatformLeetCode {
		t.Errorf("platform = %q, want leetcode", res.Platform)
	}
	if res.Name != "Two Sum" {
		t.Errorf("name = %q, want %q", res.Name, "Two Sum")
	}
}

func TestRegistry_Extract_Idempotent(t *testing.T) {
	r := DefaultRegistry()
	doc := parseDoc(t, `<html><body>
		<div class="text-title-large"><a href="/problems/maximal-rectangle/">85. Maximal Rectangle</a></div>
		<a href="/tag/array/">Array</a>
		<a href="/tag/stack/">Stack</a>
		<div class="difficulty-hard">Hard</div>
	</body></html>`)
	u := mustParseURL(t, "https://leetcode.com/problems/maximal-rectangle/")

	first := r.Extract(doc, u)
	second := r.Extract(doc, u)

	if first.Number != second.Number || first.Name != second.Name || first.URL != second.URL {
		t.Errorf("identity fields differ across runs: %+v vs %+v", first, second)
	}
	if first.Solved != second.Solved || first.Difficulty != second.Difficulty {
		t.Errorf("status fields differ across runs: %+v vs %+v", first, second)
	}
	if len(first.Topics) != len(second.Topics) {
		t.Fatalf("topic counts differ: %v vs %v", first.Topics, second.Topics)
	}
	for i := range first.Topics {
		if first.Topics[i] != second.Topics[i] {
			t.Errorf("topics[%d] differ: %q vs %q", i, first.Topics[i], second.Topics[i])
		}
	}
}

func TestRegistry_IsProblemPage(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		url  string
		want bool
	}{
		{"https://leetcode.com/problems/two-sum/", true},
		{"https://leetcode.com/problemset/all/", false},
		{"https://www.geeksforgeeks.org/problems/subarray-with-given-sum/0", true},
		{"https://www.interviewbit.com/problems/max-sum-contiguous-subarray/", true},
		{"https://example.com/problems/whatever/", false},
	}
	for _, tt := range tests {
		if got := r.IsProblemPage(mustParseURL(t, tt.url)); got != tt.want {
			t.Errorf("IsProblemPage(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestRegistry_ProblemSlug(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		url  string
		want string
	}{
		{"https://leetcode.com/problems/two-sum/description/", "two-sum"},
		{"https://www.geeksforgeeks.org/problems/subarray-with-given-sum/0", "subarray-with-given-sum"},
		{"https://www.interviewbit.com/problems/max-sum-contiguous-subarray/", "max-sum-contiguous-subarray"},
		{"https://example.com/problems/foo/", ""},
		{"https://leetcode.com/contest/", ""},
	}
	for _, tt := range tests {
		if got := r.ProblemSlug(mustParseURL(t, tt.url)); got != tt.want {
			t.Errorf("ProblemSlug(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestNewRegistry_NilMap(t *testing.T) {
	r := NewRegistry(nil)
	doc := parseDoc(t, "<html></html>")
	res := r.Extract(doc, mustParseURL(t, "https://leetcode.com/problems/two-sum/"))
	if res.Platform != PlatformUnknown {
		t.Errorf("empty registry must fall back to unknown, got %q", res.Platform)
	}
}
