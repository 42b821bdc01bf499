package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxTagTextLen rejects accidentally matched unrelated elements when a broad
// tag/topic selector hits something that is clearly not a label.
const maxTagTextLen = 50

// selectorText returns the trimmed text of the first element matched by any
// of the given selectors, tried in order. Empty matches advance the cascade.
func selectorText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// collectTexts gathers trimmed element texts from a selection, dropping
// empties, anything over maxLen (0 = unlimited), and duplicates while
// preserving first-seen order.
func collectTexts(sel *goquery.Selection, maxLen int) []string {
	var out []string
	seen := make(map[string]bool)
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" || seen[text] {
			return
		}
		if maxLen > 0 && len(text) >= maxLen {
			return
		}
		seen[text] = true
		out = append(out, text)
	})
	return out
}

// filterTexts drops entries whose lowercased text contains any of the given
// substrings. Used to strip generic wayfinding labels out of breadcrumbs.
func filterTexts(items []string, exclude ...string) []string {
	var out []string
	for _, item := range items {
		lower := strings.ToLower(item)
		drop := false
		for _, ex := range exclude {
			if strings.Contains(lower, ex) {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, item)
		}
	}
	return out
}

// slugToTitle converts a URL slug like "maximal-rectangle" to
// "Maximal Rectangle". Last-resort name derivation when no title element
// survives on the page.
func slugToTitle(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// normalizeDifficulty folds site-specific difficulty wording into the three
// canonical labels. GFG labels beginner problems "Basic" or "School";
// InterviewBit sometimes uses "Beginner"/"Intermediate"/"Advanced".
// Unrecognized text yields "".
func normalizeDifficulty(text string) Difficulty {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "basic"), strings.Contains(t, "school"),
		strings.Contains(t, "easy"), strings.Contains(t, "beginner"):
		return DifficultyEasy
	case strings.Contains(t, "medium"), strings.Contains(t, "intermediate"):
		return DifficultyMedium
	case strings.Contains(t, "hard"), strings.Contains(t, "advanced"):
		return DifficultyHard
	}
	return ""
}
