package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchIconDirectKeywords(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Introduction to Widgets", "📊"},
		{"Market Overview", "👁️"}, // "overview" precedes "market" in the table
		{"Security Considerations", "🔒"},
		{"Roadmap for 2027", "🗺️"},
		{"CONCLUSION", "🏁"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchIcon(tt.title), "title %q", tt.title)
	}
}

func TestMatchIconTableOrderBreaksTies(t *testing.T) {
	// "data" appears first in the title, but "analysis" is declared
	// earlier in the table, so the analysis glyph wins.
	assert.Equal(t, "🔍", MatchIcon("Data Analysis"))

	// "growth" precedes "risk" in the title but "risk" is declared first.
	assert.Equal(t, "⚠️", MatchIcon("Growth and Risk"))
}

func TestMatchIconFallbacks(t *testing.T) {
	assert.Equal(t, "📊", MatchIcon("Welcome"))
	assert.Equal(t, "🏁", MatchIcon("Final Thoughts"))
	assert.Equal(t, "🙏", MatchIcon("Thank You!"))
	assert.Equal(t, "🙏", MatchIcon("Q&A"))
}

func TestMatchIconNoMatch(t *testing.T) {
	assert.Equal(t, "", MatchIcon("Lorem Ipsum"))
	assert.Equal(t, "", MatchIcon(""))
}
