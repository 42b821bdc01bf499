package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const leetcodeOrigin = "https://leetcode.com"

// leetcodeTitleRe splits anchor text like "85. Maximal Rectangle" into the
// problem number and name. Text without the numeric prefix becomes the name
// as-is.
var leetcodeTitleRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

var leetcodeSlugRe = regexp.MustCompile(`/problems/([^/]+)`)

// LeetCode extracts problem metadata from leetcode.com problem pages.
type LeetCode struct{}

func (l *LeetCode) Extract(doc *goquery.Document, pageURL *url.URL) *Result {
	res := newResult(PlatformLeetCode)

	// The title anchor scoped under the header container is the most stable
	// hook on the page; its href doubles as the canonical problem path.
	anchor := doc.Find(`div.text-title-large a[href^="/problems/"]`).First()
	if anchor.Length() > 0 {
		if href, ok := anchor.Attr("href"); ok {
			res.URL = leetcodeOrigin + href
		}
		full := strings.TrimSpace(anchor.Text())
		if m := leetcodeTitleRe.FindStringSubmatch(full); m != nil {
			res.Number = m[1]
			res.Name = m[2]
		} else if full != "" {
			res.Name = full
		}
	}

	// Topic tags all link under /tag/; collect in DOM order, dedup exact.
	res.Topics = collectTexts(doc.Find(`a[href^="/tag/"]`), 0)
	if res.Topics == nil {
		res.Topics = []string{}
	}

	res.Solved = l.detectSolved(doc)

	res.Difficulty = l.detectDifficulty(doc)

	return res
}

// detectSolved tries the scoped check first: the solved badge renders next to
// the difficulty pill, so its container is a cheap place to look. The
// exact-text scan over every div is the last resort. Both paths require an
// element whose trimmed text is exactly "Solved"; "Not Solved Yet" and
// similar must not count.
func (l *LeetCode) detectSolved(doc *goquery.Document) bool {
	diff := doc.Find(`[class*="difficulty"]`).First()
	if diff.Length() > 0 && hasExactSolved(diff.Parent().Find("div, span")) {
		return true
	}

	return hasExactSolved(doc.Find("div"))
}

func hasExactSolved(sel *goquery.Selection) bool {
	found := false
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == "Solved" {
			found = true
			return false
		}
		return true
	})
	return found
}

func (l *LeetCode) detectDifficulty(doc *goquery.Document) Difficulty {
	if text := strings.TrimSpace(doc.Find(`[class*="difficulty"]`).First().Text()); text != "" {
		if d := normalizeDifficulty(text); d != "" {
			return d
		}
	}

	// Fallback: a bare span whose whole text is one of the three words.
	var found Difficulty
	doc.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		switch strings.ToLower(strings.TrimSpace(s.Text())) {
		case "easy":
			found = DifficultyEasy
		case "medium":
			found = DifficultyMedium
		case "hard":
			found = DifficultyHard
		default:
			return true
		}
		return false
	})
	return found
}

func (l *LeetCode) IsProblemPage(pageURL *url.URL) bool {
	if pageURL == nil {
		return false
	}
	return strings.Contains(strings.ToLower(pageURL.Hostname()), "leetcode") &&
		strings.Contains(pageURL.Path, "/problems/") &&
		!strings.Contains(pageURL.Path, "/problemset/")
}

func (l *LeetCode) ProblemSlug(pageURL *url.URL) string {
	if pageURL == nil {
		return ""
	}
	if m := leetcodeSlugRe.FindStringSubmatch(pageURL.Path); m != nil {
		return m[1]
	}
	return ""
}
