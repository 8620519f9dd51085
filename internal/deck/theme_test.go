package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThemeKnownIDs(t *testing.T) {
	for _, id := range ThemeIDs() {
		assert.Equal(t, id, ResolveTheme(id).ID)
	}
}

func TestResolveThemeFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "neon_pink", "PROFESSIONAL_BLUE", "professional blue"} {
		theme := ResolveTheme(id)
		assert.Equal(t, DefaultThemeID, theme.ID, "id %q should resolve to default", id)
	}
}

func TestDeriveStyleDarkTheme(t *testing.T) {
	theme := ResolveTheme("modern_dark")
	style := DeriveStyle(theme)

	assert.True(t, style.IsDark)
	// Text colors are overridden to near-white regardless of the theme's
	// own values.
	assert.GreaterOrEqual(t, style.TitleColor.channelSum(), 700)
	assert.GreaterOrEqual(t, style.TextColor.channelSum(), 700)
	// Fills are dark neutrals distinct from the background gradient.
	assert.NotEqual(t, RGB{255, 255, 255}, style.HeaderFill)
	assert.NotEqual(t, style.BgStart, style.HeaderFill)
	assert.NotEqual(t, style.BgEnd, style.CardFill)
}

func TestDeriveStyleLightThemeKeepsColors(t *testing.T) {
	theme := ResolveTheme("professional_blue")
	style := DeriveStyle(theme)

	assert.False(t, style.IsDark)
	assert.Equal(t, theme.TitleColor, style.TitleColor)
	assert.Equal(t, theme.TextColor, style.TextColor)
	assert.Equal(t, RGB{255, 255, 255}, style.HeaderFill)
	assert.Equal(t, RGB{255, 255, 255}, style.CardFill)
}

func TestDeriveStyleThresholdBoundary(t *testing.T) {
	// Channel sum 399 is dark, 400 is not.
	dark := DeriveStyle(Theme{BgStart: RGB{133, 133, 133}})
	assert.True(t, dark.IsDark)

	light := DeriveStyle(Theme{BgStart: RGB{134, 133, 133}})
	assert.False(t, light.IsDark)
}
