package extractor

import "time"

// Platform identifies which problem site a result was scraped from.
type Platform string

const (
	PlatformLeetCode     Platform = "leetcode"
	PlatformGFG          Platform = "gfg"
	PlatformInterviewBit Platform = "interviewbit"
	PlatformUnknown      Platform = "unknown"
)

// Difficulty is the normalized difficulty label. Site-specific wording
// ("Basic", "School", "Beginner", ...) is folded into these three values.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Result holds the normalized problem metadata produced by one extraction.
// A Result is built fresh per Extract call and fully populated before it is
// returned; absent string fields stay empty rather than carrying placeholders.
type Result struct {
	Number      string     `json:"number,omitempty"`
	Name        string     `json:"name,omitempty"`
	URL         string     `json:"url,omitempty"`
	Topics      []string   `json:"topics"`
	CompanyTags []string   `json:"companyTags,omitempty"`
	Solved      bool       `json:"solved"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Platform    Platform   `json:"platform"`
	Timestamp   time.Time  `json:"timestamp"`
}

func newResult(platform Platform) *Result {
	return &Result{
		Topics:    []string{},
		Platform:  platform,
		Timestamp: time.Now().UTC(),
	}
}
