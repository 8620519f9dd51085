package deck

import "strings"

// iconEntry maps a lowercase keyword to a decorative glyph. The slice
// order is part of the matching contract: the first keyword found as a
// substring of the title wins, regardless of where it occurs in the
// title string.
type iconEntry struct {
	keyword string
	glyph   string
}

var iconTable = []iconEntry{
	// Introduction & overview
	{"introduction", "📊"},
	{"overview", "👁️"},
	{"agenda", "📋"},
	{"outline", "📝"},

	// Business & strategy
	{"strategy", "🎯"},
	{"business", "💼"},
	{"market", "📈"},
	{"trading", "💹"},
	{"finance", "💰"},
	{"investment", "💵"},
	{"sales", "🤝"},
	{"marketing", "📢"},

	// Analysis & data
	{"analysis", "🔍"},
	{"data", "📊"},
	{"statistics", "📉"},
	{"metrics", "📏"},
	{"report", "📄"},
	{"research", "🔬"},

	// Technology
	{"technology", "💻"},
	{"ai", "🤖"},
	{"artificial intelligence", "🤖"},
	{"machine learning", "🧠"},
	{"algorithm", "⚙️"},
	{"automation", "🔄"},
	{"digital", "📱"},
	{"software", "💾"},

	// Risk & security
	{"risk", "⚠️"},
	{"security", "🔒"},
	{"protection", "🛡️"},
	{"safety", "🦺"},

	// Growth & success
	{"growth", "📈"},
	{"success", "🏆"},
	{"achievement", "🎖️"},
	{"goals", "🎯"},
	{"target", "🎯"},

	// Future & innovation
	{"future", "🔮"},
	{"innovation", "💡"},
	{"trends", "📊"},
	{"forecast", "🌤️"},
	{"prediction", "🔮"},

	// Communication
	{"communication", "💬"},
	{"team", "👥"},
	{"collaboration", "🤝"},
	{"meeting", "🗓️"},

	// Process & timeline
	{"process", "⚙️"},
	{"timeline", "📅"},
	{"roadmap", "🗺️"},
	{"workflow", "🔄"},

	// Results & conclusion
	{"results", "✅"},
	{"conclusion", "🏁"},
	{"summary", "📝"},
	{"takeaway", "🎁"},
	{"recommendation", "👍"},

	// Problems & solutions
	{"problem", "❗"},
	{"challenge", "🧗"},
	{"solution", "💡"},
	{"benefits", "✨"},
	{"advantages", "➕"},

	// Education & learning
	{"education", "🎓"},
	{"learning", "📚"},
	{"training", "🏋️"},
	{"knowledge", "🧠"},
}

// Fallback keyword groups, tried in order after the main table misses.
var iconFallbacks = []struct {
	keywords []string
	glyph    string
}{
	{[]string{"intro", "start", "begin", "welcome"}, "📊"},
	{[]string{"end", "conclude", "final", "summary"}, "🏁"},
	{[]string{"thank", "questions", "q&a"}, "🙏"},
}

// MatchIcon returns the decorative glyph for a slide title, or the
// empty string when nothing matches.
func MatchIcon(title string) string {
	lower := strings.ToLower(title)

	for _, e := range iconTable {
		if strings.Contains(lower, e.keyword) {
			return e.glyph
		}
	}

	for _, group := range iconFallbacks {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.glyph
			}
		}
	}

	return ""
}
