package extractor

import (
	"testing"
)

func TestLeetCode_TitleParsing(t *testing.T) {
	lc := &LeetCode{}
	u := mustParseURL(t, "https://leetcode.com/problems/maximal-rectangle/")

	t.Run("numbered title", func(t *testing.T) {
		doc := parseDoc(t, `<html><body>
			<div class="text-title-large"><a href="/problems/maximal-rectangle/">85. Maximal Rectangle</a></div>
		</body></html>`)
		res := lc.Extract(doc, u)
		if res.Number != "85" {
			t.Errorf("number = %q, want %q", res.Number, "85")
		}
		if res.Name != "Maximal Rectangle" {
			t.Errorf("name = %q, want %q", res.Name, "Maximal Rectangle")
		}
		if res.URL != "https://leetcode.com/problems/maximal-rectangle/" {
			t.Errorf("url = %q, want origin + href", res.URL)
		}
	})

	t.Run("title without numeric prefix", func(t *testing.T) {
		doc := parseDoc(t, `<html><body>
			<div class="text-title-large"><a href="/problems/two-sum-variant/">Two Sum Variant</a></div>
		</body></html>`)
		res := lc.Extract(doc, u)
		if res.Number != "" {
			t.Errorf("number = %q, want absent", res.Number)
		}
		if res.Name != "Two Sum Variant" {
			t.Errorf("name = %q, want verbatim title", res.Name)
		}
	})

	t.Run("no title anchor", func(t *testing.T) {
		doc := parseDoc(t, `<html><body><p>loading...</p></body></html>`)
		res := lc.Extract(doc, u)
		if res.Name != "" || res.Number != "" || res.URL != "" {
			t.Errorf("expected absent fields, got name=%q number=%q url=%q", res.Name, res.Number, res.URL)
		}
		if res.Platform != PlatformLeetCode {
			t.Errorf("platform = %q, want leetcode even with empty page", res.Platform)
		}
	})
}

func TestLeetCode_Topics(t *testing.T) {
	lc := &LeetCode{}
	doc := parseDoc(t, `<html><body>
		<a href="/tag/array/">Array</a>
		<a href="/tag/array/">Array</a>
		<a href="/tag/hash-table/">Hash Table</a>
		<a href="/tag/empty/"></a>
		<a href="/discuss/">Not a tag</a>
	</body></html>`)
	res := lc.Extract(doc, mustParseURL(t, "https://leetcode.com/problems/two-sum/"))

	want := []string{"Array", "Hash Table"}
	if len(res.Topics) != len(want) {
		t.Fatalf("topics = %v, want %v", res.Topics, want)
	}
	for i := range want {
		if res.Topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, res.Topics[i], want[i])
		}
	}
}

func TestLeetCode_SolvedExactMatch(t *testing.T) {
	lc := &LeetCode{}
	u := mustParseURL(t, "https://leetcode.com/problems/two-sum/")

	t.Run("exact Solved text", func(t *testing.T) {
		doc := parseDoc(t, `<html><body>
			<div class="status"><div>Solved</div></div>
		</body></html>`)
		if res := lc.Extract(doc, u); !res.Solved {
			t.Error("expected solved=true for exact 'Solved' div")
		}
	})

	t.Run("substring must not match", func(t *testing.T) {
		doc := parseDoc(t, `<html><body>
			<div class="status">Not Solved Yet</div>
		</body></html>`)
		if res := lc.Extract(doc, u); res.Solved {
			t.Error("'Not Solved Yet' must not set solved via the exact-match rule")
		}
	})

	t.Run("scoped badge next to difficulty", func(t *testing.T) {
		doc := parseDoc(t, `<html><body>
			<div class="header">
				<span class="difficulty-medium">Medium</span>
				<span class="badge">Solved</span>
			</div>
		</body></html>`)
		if res := lc.Extract(doc, u); !res.Solved {
			t.Error("expected solved=true via the difficulty-scoped check")
		}
	})

	t.Run("substring next to difficulty must not match", func(t *testing.T) {
		doc := parseDoc(t, `<html><body>
			<div class="header">
				<span class="difficulty-medium">Medium</span>
				<span class="badge">Not Solved Yet</span>
			</div>
		</body></html>`)
		if res := lc.Extract(doc, u); res.Solved {
			t.Error("'Not Solved Yet' near the difficulty pill must not set solved")
		}
	})

	t.Run("no signal", func(t *testing.T) {
		doc := parseDoc(t, `<html><body><div>Description</div></body></html>`)
		if res := lc.Extract(doc, u); res.Solved {
			t.Error("expected solved=false with no signal")
		}
	})
}

func TestLeetCode_Difficulty(t *testing.T) {
	lc := &LeetCode{}
	u := mustParseURL(t, "https://leetcode.com/problems/two-sum/")

	t.Run("difficulty class", func(t *testing.T) {
		doc := parseDoc(t, `<html><body>
			<div class="text-difficulty-hard">Hard</div>
		</body></html>`)
		if res := lc.Extract(doc, u); res.Difficulty != DifficultyHard {
			t.Errorf("difficulty = %q, want Hard", res.Difficulty)
		}
	})

	t.Run("span fallback exact word", func(t *testing.T) {
		doc := parseDoc(t, `<html><body>
			<span>Topics</span>
			<span>EASY</span>
		</body></html>`)
		if res := lc.Extract(doc, u); res.Difficulty != DifficultyEasy {
			t.Errorf("difficulty = %q, want Easy via span fallback", res.Difficulty)
		}
	})

	t.Run("unrecognized stays absent", func(t *testing.T) {
		doc := parseDoc(t, `<html><body><span>Tricky</span></body></html>`)
		if res := lc.Extract(doc, u); res.Difficulty != "" {
			t.Errorf("difficulty = %q, want absent", res.Difficulty)
		}
	})
}

func TestLeetCode_IsProblemPage(t *testing.T) {
	lc := &LeetCode{}
	tests := []struct {
		url  string
		want bool
	}{
		{"https://leetcode.com/problems/two-sum/", true},
		{"https://leetcode.com/problems/two-sum/description/", true},
		{"https://leetcode.com/problemset/all/", false},
		{"https://leetcode.com/contest/", false},
		{"https://example.com/problems/two-sum/", false},
	}
	for _, tt := range tests {
		if got := lc.IsProblemPage(mustParseURL(t, tt.url)); got != tt.want {
			t.Errorf("IsProblemPage(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
