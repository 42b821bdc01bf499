package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	ibProblemSlugRe   = regexp.MustCompile(`/problems/([^/]+)`)
	ibInterviewSlugRe = regexp.MustCompile(`/coding-interview-questions/([^/]+)`)
)

// InterviewBit extracts problem metadata from interviewbit.com pages.
type InterviewBit struct{}

func (ib *InterviewBit) Extract(doc *goquery.Document, pageURL *url.URL) *Result {
	res := newResult(PlatformInterviewBit)
	if pageURL != nil {
		res.URL = pageURL.String()
	}

	res.Name = selectorText(doc,
		"h1.p-tile__title",
		".problem-title",
		"h1.heading",
		".problem-name-container h1",
		".problem-header h1",
		"h1",
	)
	if res.Name == "" {
		res.Name = selectorText(doc, ".breadcrumb-item.active", ".breadcrumb li:last-child")
	}
	if res.Name == "" && pageURL != nil {
		if slug := ib.ProblemSlug(pageURL); slug != "" {
			res.Name = slugToTitle(slug)
		}
	}

	res.Difficulty = ib.detectDifficulty(doc)

	res.CompanyTags = ib.extractCompanyTags(doc, pageURL)

	res.Topics = ib.extractTopics(doc)
	if res.Topics == nil {
		res.Topics = []string{}
	}

	res.Solved = ib.detectSolved(doc)

	// InterviewBit has no question numbers; Number stays absent.
	return res
}

func (ib *InterviewBit) detectDifficulty(doc *goquery.Document) Difficulty {
	if text := selectorText(doc,
		".p-difficulty-level",
		".problem-difficulty",
		".difficulty-label",
		`[class*="difficulty"]`,
		".level",
	); text != "" {
		if d := normalizeDifficulty(text); d != "" {
			return d
		}
	}

	// Secondary heuristic: some layouts rate problems with a star row
	// instead of a textual label.
	stars := doc.Find(`.problem-stars, [class*="star"]`).First()
	if stars.Length() == 0 {
		return ""
	}
	filled := stars.Find(".filled, .fa-star:not(.fa-star-o)").Length()
	switch {
	case filled <= 2:
		return DifficultyEasy
	case filled <= 4:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// extractCompanyTags reads the "Asked In" company list. The anchor's q query
// parameter carries the clean company token; visible text is only a fallback
// when the href is missing or does not parse. A parsed href without a q
// parameter contributes nothing.
func (ib *InterviewBit) extractCompanyTags(doc *goquery.Document, pageURL *url.URL) []string {
	var companies []string
	seen := make(map[string]bool)
	doc.Find(".p-tile__company-list a.p-similar-question__tag-name").Each(func(_ int, s *goquery.Selection) {
		name := ""
		if href, ok := s.Attr("href"); ok {
			if ref, err := url.Parse(href); err == nil {
				if pageURL != nil {
					ref = pageURL.ResolveReference(ref)
				}
				name = ref.Query().Get("q")
			} else {
				name = strings.TrimSpace(s.Text())
			}
		} else {
			name = strings.TrimSpace(s.Text())
		}
		if name != "" && !seen[name] {
			seen[name] = true
			companies = append(companies, name)
		}
	})
	if len(companies) > 0 {
		return companies
	}
	return collectTexts(doc.Find(`.company-tag, .asked-in-company, [class*="company"] a`), maxTagTextLen)
}

// extractTopics prefers the breadcrumb trail, which on current pages is the
// only reliable topic source, minus the generic wayfinding entries.
func (ib *InterviewBit) extractTopics(doc *goquery.Document) []string {
	crumbs := collectTexts(doc.Find(".ib-breadcrumb__item--link, a.ib-breadcrumb__item"), maxTagTextLen)
	if topics := filterTexts(crumbs, "home", "programming"); len(topics) > 0 {
		return topics
	}

	if topics := collectTexts(doc.Find(`.topic-tag, .problem-tags a, .tag-container .tag, [class*="topic"] a`), maxTagTextLen); len(topics) > 0 {
		return topics
	}

	links := collectTexts(doc.Find(".breadcrumb a, .category-link"), maxTagTextLen)
	return filterTexts(links, "home", "problems")
}

func (ib *InterviewBit) detectSolved(doc *goquery.Document) bool {
	// Presence alone implies solved for the status badges.
	if doc.Find(`.solved-status, .completed-badge, [class*="solved"], .problem-solved, .status-solved`).Length() > 0 {
		return true
	}
	if doc.Find(`.fa-check-circle.text-success, .problem-status .completed, [class*="complete"]`).Length() > 0 {
		return true
	}
	header := doc.Find(".problem-header, .problem-info").First()
	return header.Length() > 0 && strings.Contains(strings.ToLower(header.Text()), "solved")
}

func (ib *InterviewBit) IsProblemPage(pageURL *url.URL) bool {
	if pageURL == nil {
		return false
	}
	if !strings.Contains(strings.ToLower(pageURL.Hostname()), "interviewbit.com") {
		return false
	}
	return strings.Contains(pageURL.Path, "/problems/") ||
		strings.Contains(pageURL.Path, "/coding-interview-questions/")
}

func (ib *InterviewBit) ProblemSlug(pageURL *url.URL) string {
	if pageURL == nil {
		return ""
	}
	if m := ibProblemSlugRe.FindStringSubmatch(pageURL.Path); m != nil {
		return m[1]
	}
	if m := ibInterviewSlugRe.FindStringSubmatch(pageURL.Path); m != nil {
		return m[1]
	}
	return ""
}
