// Package processor renders extraction results for output and optionally
// pulls the problem statement text out of the fetched page.
package processor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/questlog/questlog/internal/extractor"
)

// Report wraps a Result with the optional statement text. The JSON shape of
// the embedded Result stays verbatim so downstream consumers can paste it
// straight into the backend.
type Report struct {
	*extractor.Result
	Statement string `json:"statement,omitempty"`
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// ToJSON renders the report as indented JSON.
func (r *Renderer) ToJSON(report *Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data) + "\n", nil
}

// ToText renders a human-readable summary, mirroring what the widget panel
// used to show: identity first, then status, then tags.
func (r *Renderer) ToText(report *Report) string {
	res := report.Result
	var b strings.Builder

	if res.Name == "" && len(res.Topics) == 0 {
		b.WriteString("No problem detected\n")
		if res.URL != "" {
			fmt.Fprintf(&b, "URL:        %s\n", res.URL)
		}
		fmt.Fprintf(&b, "Platform:   %s\n", res.Platform)
		return b.String()
	}

	if res.Number != "" {
		fmt.Fprintf(&b, "Problem:    #%s %s\n", res.Number, res.Name)
	} else {
		fmt.Fprintf(&b, "Problem:    %s\n", res.Name)
	}
	fmt.Fprintf(&b, "Platform:   %s\n", res.Platform)
	if res.URL != "" {
		fmt.Fprintf(&b, "URL:        %s\n", res.URL)
	}
	if res.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", res.Difficulty)
	}
	if res.Solved {
		b.WriteString("Status:     solved\n")
	} else {
		b.WriteString("Status:     unsolved\n")
	}
	if len(res.Topics) > 0 {
		fmt.Fprintf(&b, "Topics:     %s\n", strings.Join(res.Topics, ", "))
	}
	if len(res.CompanyTags) > 0 {
		fmt.Fprintf(&b, "Companies:  %s\n", strings.Join(res.CompanyTags, ", "))
	}
	if report.Statement != "" {
		b.WriteString("\n")
		b.WriteString(report.Statement)
		b.WriteString("\n")
	}
	return b.String()
}

// Statement extracts the readable problem statement text from page HTML.
// Returns "" when readability finds nothing usable.
func (r *Renderer) Statement(html string) string {
	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return ""
	}
	return cleanNewlines(article.TextContent)
}

var multiNewlineRe = regexp.MustCompile(`\n{3,}`)

func cleanNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
