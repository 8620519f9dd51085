// Package deck implements the slide deck composition engine: theme
// resolution, contrast adaptation, icon matching, text normalization,
// layout planning and fault-isolated shape rendering.
package deck

import "github.com/docsmith-ai/docsmith/pptx"

// RGB is a plain 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) color() pptx.Color {
	return pptx.RGB(c.R, c.G, c.B)
}

func (c RGB) channelSum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Theme is a named five-color palette. Themes are immutable and
// registered once at package init.
type Theme struct {
	ID          string
	Name        string
	BgStart     RGB
	BgEnd       RGB
	TitleColor  RGB
	TextColor   RGB
	AccentColor RGB
}

// DefaultThemeID is used when a requested theme id is unknown or empty.
const DefaultThemeID = "professional_blue"

var themes = []Theme{
	{
		ID:          "professional_blue",
		Name:        "Professional Blue",
		BgStart:     RGB{227, 242, 253},
		BgEnd:       RGB{187, 222, 251},
		TitleColor:  RGB{25, 118, 210},
		TextColor:   RGB{33, 33, 33},
		AccentColor: RGB{66, 165, 245},
	},
	{
		ID:          "modern_dark",
		Name:        "Modern Dark",
		BgStart:     RGB{48, 48, 48},
		BgEnd:       RGB{33, 33, 33},
		TitleColor:  RGB{255, 255, 255},
		TextColor:   RGB{220, 220, 220},
		AccentColor: RGB{102, 126, 234},
	},
	{
		ID:          "vibrant_orange",
		Name:        "Vibrant Orange",
		BgStart:     RGB{255, 243, 224},
		BgEnd:       RGB{255, 224, 178},
		TitleColor:  RGB{230, 81, 0},
		TextColor:   RGB{62, 39, 35},
		AccentColor: RGB{255, 152, 0},
	},
	{
		ID:          "nature_green",
		Name:        "Nature Green",
		BgStart:     RGB{232, 245, 233},
		BgEnd:       RGB{200, 230, 201},
		TitleColor:  RGB{27, 94, 32},
		TextColor:   RGB{33, 33, 33},
		AccentColor: RGB{76, 175, 80},
	},
	{
		ID:          "elegant_purple",
		Name:        "Elegant Purple",
		BgStart:     RGB{243, 229, 245},
		BgEnd:       RGB{225, 190, 231},
		TitleColor:  RGB{74, 20, 140},
		TextColor:   RGB{33, 33, 33},
		AccentColor: RGB{142, 36, 170},
	},
}

var themeIndex = buildThemeIndex()

func buildThemeIndex() map[string]Theme {
	idx := make(map[string]Theme, len(themes))
	for _, t := range themes {
		idx[t.ID] = t
	}
	return idx
}

// ResolveTheme returns the theme for the given id, or the default theme
// when the id is empty or unknown. Never fails.
func ResolveTheme(id string) Theme {
	if t, ok := themeIndex[id]; ok {
		return t
	}
	return themeIndex[DefaultThemeID]
}

// ThemeIDs returns the registered theme ids in declaration order.
func ThemeIDs() []string {
	ids := make([]string, len(themes))
	for i, t := range themes {
		ids[i] = t.ID
	}
	return ids
}

// A theme is treated as dark when the background start channels sum to
// less than this value.
const darkBackgroundThreshold = 400

// Dark-mode replacement colors.
var (
	darkTitleColor = RGB{255, 255, 255}
	darkTextColor  = RGB{236, 236, 236}
	darkHeaderFill = RGB{66, 66, 66}
	darkCardFill   = RGB{55, 55, 55}
	lightFill      = RGB{255, 255, 255}
)

// DerivedStyle is a theme plus its dark classification and the two fill
// colors that depend on it. All planning and rendering consumes
// DerivedStyle, never a raw Theme.
type DerivedStyle struct {
	Theme
	IsDark     bool
	HeaderFill RGB
	CardFill   RGB
}

// DeriveStyle classifies the theme and resolves the header and card
// fills. Dark themes get near-white text and dark neutral fills so text
// panels stay readable on the dark gradient.
func DeriveStyle(t Theme) DerivedStyle {
	s := DerivedStyle{
		Theme:      t,
		HeaderFill: lightFill,
		CardFill:   lightFill,
	}
	if t.BgStart.channelSum() < darkBackgroundThreshold {
		s.IsDark = true
		s.TitleColor = darkTitleColor
		s.TextColor = darkTextColor
		s.HeaderFill = darkHeaderFill
		s.CardFill = darkCardFill
	}
	return s
}
