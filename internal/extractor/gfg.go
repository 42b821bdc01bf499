package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var gfgSlugRe = regexp.MustCompile(`/problems?/([^/]+)`)

// GFG extracts problem metadata from geeksforgeeks.org practice pages.
//
// GFG ships hashed CSS module class names (problems_header_content__title__L2cB2
// and friends) that churn across deploys, so every cascade here bottoms out in
// a generic selector.
type GFG struct{}

func (g *GFG) Extract(doc *goquery.Document, pageURL *url.URL) *Result {
	res := newResult(PlatformGFG)
	if pageURL != nil {
		res.URL = pageURL.String()
	}

	res.Name = selectorText(doc,
		"h3.problems_header_content__title__L2cB2",
		".problems_header_content__title",
		".problem-title",
		"h1",
		".problem-name",
	)
	if res.Name == "" && pageURL != nil {
		if slug := g.ProblemSlug(pageURL); slug != "" {
			res.Name = slugToTitle(slug)
		}
	}

	if text := selectorText(doc,
		".problems_header_content__difficulty__FJgoD",
		".problem-difficulty",
		`[class*="difficulty"]`,
		".diff-badge",
	); text != "" {
		res.Difficulty = normalizeDifficulty(text)
	}

	res.Topics = g.extractTopics(doc)
	if res.Topics == nil {
		res.Topics = []string{}
	}

	res.CompanyTags = accordionTags(doc, "Company Tags")

	res.Solved = g.detectSolved(doc)

	// GFG has no native problem numbers; Number deliberately stays absent
	// and missing IDs are left to the consuming backend.
	return res
}

// extractTopics prefers the "Topic Tags" accordion section, then falls back
// through generic tag classes to the alternate pill classes.
func (g *GFG) extractTopics(doc *goquery.Document) []string {
	if topics := accordionTags(doc, "Topic Tags"); len(topics) > 0 {
		return topics
	}
	for _, sel := range []string{
		".problems_tag_container__kWANg a",
		".problem-tag",
		`[class*="tag"]`,
		".topic-tag",
	} {
		if topics := collectTexts(doc.Find(sel), maxTagTextLen); len(topics) > 0 {
			return topics
		}
	}
	return collectTexts(doc.Find(".problemPage_tags__PIjp2 a, .tag__zcXM3"), maxTagTextLen)
}

// accordionTags reads tag anchors out of a disclosure section: a bold label
// whose text contains the given heading ("Topic Tags" / "Company Tags") sits
// inside a title block, and the anchors live in the block's next sibling.
func accordionTags(doc *goquery.Document, heading string) []string {
	var tags []string
	doc.Find("strong, b, label").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), heading) {
			return true
		}
		title := s.Closest(`[class*="title"]`)
		if title.Length() == 0 {
			title = s.Parent()
		}
		tags = collectTexts(title.Next().Find("a"), maxTagTextLen)
		return len(tags) == 0
	})
	return tags
}

func (g *GFG) detectSolved(doc *goquery.Document) bool {
	for _, sel := range []string{
		".problems_solved_status__3TZQS",
		`[class*="solved"]`,
		".solved-badge",
	} {
		text := strings.ToLower(doc.Find(sel).First().Text())
		if strings.Contains(text, "solved") || strings.Contains(text, "completed") {
			return true
		}
	}
	// The solved stamp carries no text; mere presence means solved.
	return doc.Find(`.problems_header_content__solvedStamp__34d4b, [class*="solvedStamp"]`).Length() > 0
}

func (g *GFG) IsProblemPage(pageURL *url.URL) bool {
	if pageURL == nil {
		return false
	}
	host := strings.ToLower(pageURL.Hostname())
	if !strings.Contains(host, "geeksforgeeks.org") && !strings.Contains(host, "gfg") {
		return false
	}
	path := pageURL.Path
	return strings.Contains(path, "/problems/") ||
		strings.Contains(path, "/problem/") ||
		strings.Contains(path, "/practice/")
}

func (g *GFG) ProblemSlug(pageURL *url.URL) string {
	if pageURL == nil {
		return ""
	}
	if m := gfgSlugRe.FindStringSubmatch(pageURL.Path); m != nil {
		return m[1]
	}
	return ""
}
