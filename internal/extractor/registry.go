// Package extractor scrapes coding-problem metadata out of platform HTML.
//
// Each supported platform gets its own PlatformExtractor that runs a cascade
// of CSS selector strategies against the parsed document: strategies are
// tried strictly in declared order and the first one that yields a non-empty
// value wins. Specific component class names break first when a site ships a
// redesign, broad attribute selectors survive longest, so every cascade is
// ordered from most specific to most generic.
package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlatformExtractor is implemented once per supported site.
type PlatformExtractor interface {
	// Extract scrapes the document into a Result. It never fails: fields the
	// page does not expose stay at their zero values.
	Extract(doc *goquery.Document, pageURL *url.URL) *Result

	// IsProblemPage reports whether the URL points at a single problem
	// (as opposed to a problem list, contest page, etc).
	IsProblemPage(pageURL *url.URL) bool

	// ProblemSlug returns the URL path segment identifying the problem,
	// or "" when the URL has none.
	ProblemSlug(pageURL *url.URL) string
}

// DetectPlatform maps a hostname to its platform. Matching is a
// case-insensitive substring check; the fragments are mutually exclusive in
// practice so the first hit wins.
func DetectPlatform(hostname string) Platform {
	h := strings.ToLower(hostname)
	switch {
	case strings.Contains(h, "leetcode"):
		return PlatformLeetCode
	case strings.Contains(h, "geeksforgeeks"), strings.Contains(h, "gfg"):
		return PlatformGFG
	case strings.Contains(h, "interviewbit"):
		return PlatformInterviewBit
	}
	return PlatformUnknown
}

// Registry dispatches to the extractor registered for a page's platform.
type Registry struct {
	extractors map[Platform]PlatformExtractor
}

// NewRegistry builds a registry from an explicit platform -> extractor map.
func NewRegistry(extractors map[Platform]PlatformExtractor) *Registry {
	if extractors == nil {
		extractors = map[Platform]PlatformExtractor{}
	}
	return &Registry{extractors: extractors}
}

// DefaultRegistry returns a registry with all built-in extractors.
func DefaultRegistry() *Registry {
	return NewRegistry(map[Platform]PlatformExtractor{
		PlatformLeetCode:     &LeetCode{},
		PlatformGFG:          &GFG{},
		PlatformInterviewBit: &InterviewBit{},
	})
}

// Extractor returns the extractor for a platform, or nil if none is
// registered (always the case for PlatformUnknown).
func (r *Registry) Extractor(platform Platform) PlatformExtractor {
	return r.extractors[platform]
}

// Extract resolves the platform from the page URL and delegates to the
// matching extractor. When no extractor resolves it returns a minimal
// fallback Result carrying only the URL and the unknown platform marker;
// it never returns nil.
func (r *Registry) Extract(doc *goquery.Document, pageURL *url.URL) *Result {
	if pageURL != nil {
		if e := r.extractors[DetectPlatform(pageURL.Hostname())]; e != nil {
			return e.Extract(doc, pageURL)
		}
	}
	res := newResult(PlatformUnknown)
	if pageURL != nil {
		res.URL = pageURL.String()
	}
	return res
}

// IsProblemPage delegates to the resolved extractor; false when none resolves.
func (r *Registry) IsProblemPage(pageURL *url.URL) bool {
	if pageURL == nil {
		return false
	}
	e := r.extractors[DetectPlatform(pageURL.Hostname())]
	return e != nil && e.IsProblemPage(pageURL)
}

// ProblemSlug delegates to the resolved extractor; "" when none resolves.
func (r *Registry) ProblemSlug(pageURL *url.URL) string {
	if pageURL == nil {
		return ""
	}
	e := r.extractors[DetectPlatform(pageURL.Hostname())]
	if e == nil {
		return ""
	}
	return e.ProblemSlug(pageURL)
}
