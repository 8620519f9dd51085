package pptx

import "strings"

// Color represents an ARGB color as an 8-character hex string,
// e.g. "FF1976D2".
type Color struct {
	ARGB string
}

// Predefined colors.
var (
	ColorBlack = Color{ARGB: "FF000000"}
	ColorWhite = Color{ARGB: "FFFFFFFF"}
)

// NewColor creates a Color from a hex string. Accepts 6-char RGB or
// 8-char ARGB, with or without a leading "#". Invalid input falls back
// to opaque black.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return Color{ARGB: "FF000000"}
	}
	return Color{ARGB: argb}
}

// RGB creates an opaque Color from component values.
func RGB(r, g, b uint8) Color {
	const hexDigits = "0123456789ABCDEF"
	buf := []byte{'F', 'F', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{r, g, b} {
		buf[2+i*2] = hexDigits[v>>4]
		buf[3+i*2] = hexDigits[v&0x0F]
	}
	return Color{ARGB: string(buf)}
}

func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// GetRed returns the red component (0-255).
func (c Color) GetRed() uint8 { return parseHexByte(c.ARGB, 2) }

// GetGreen returns the green component (0-255).
func (c Color) GetGreen() uint8 { return parseHexByte(c.ARGB, 4) }

// GetBlue returns the blue component (0-255).
func (c Color) GetBlue() uint8 { return parseHexByte(c.ARGB, 6) }

// GetAlpha returns the alpha component (0-255).
func (c Color) GetAlpha() uint8 { return parseHexByte(c.ARGB, 0) }

func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// Font represents text run formatting.
type Font struct {
	Name  string
	Size  int // in points
	Bold  bool
	Color Color
}

// NewFont creates a Font with defaults.
func NewFont() *Font {
	return &Font{
		Name:  "Calibri",
		Size:  18,
		Color: ColorBlack,
	}
}

// SetBold sets the bold property and returns the font for chaining.
func (f *Font) SetBold(bold bool) *Font {
	f.Bold = bold
	return f
}

// SetSize sets the font size in points (clamped to 1-4000).
func (f *Font) SetSize(size int) *Font {
	if size < 1 {
		size = 1
	}
	if size > 4000 {
		size = 4000
	}
	f.Size = size
	return f
}

// SetColor sets the font color.
func (f *Font) SetColor(color Color) *Font {
	f.Color = color
	return f
}

// SetName sets the font typeface name.
func (f *Font) SetName(name string) *Font {
	f.Name = name
	return f
}

// Alignment represents paragraph alignment.
type Alignment struct {
	Horizontal HorizontalAlignment
}

// HorizontalAlignment represents horizontal text alignment.
type HorizontalAlignment string

const (
	HorizontalLeft   HorizontalAlignment = "l"
	HorizontalCenter HorizontalAlignment = "ctr"
	HorizontalRight  HorizontalAlignment = "r"
)

// NewAlignment creates a left-aligned Alignment.
func NewAlignment() *Alignment {
	return &Alignment{Horizontal: HorizontalLeft}
}

// SetHorizontal sets the horizontal alignment.
func (a *Alignment) SetHorizontal(h HorizontalAlignment) *Alignment {
	a.Horizontal = h
	return a
}

// Fill represents a shape or background fill.
type Fill struct {
	Type     FillType
	Color    Color
	EndColor Color // second gradient stop
	Rotation int   // gradient angle in degrees
	Alpha    int   // opacity 0-100; 0 means fully opaque (no alpha emitted)
}

// FillType represents the kind of fill.
type FillType int

const (
	FillNone FillType = iota
	FillSolid
	FillGradientLinear
)

// NewFill creates a Fill with no fill.
func NewFill() *Fill {
	return &Fill{Type: FillNone}
}

// SetSolid sets a solid fill.
func (f *Fill) SetSolid(color Color) *Fill {
	f.Type = FillSolid
	f.Color = color
	return f
}

// SetSolidWithAlpha sets a solid fill with opacity in percent (1-100).
func (f *Fill) SetSolidWithAlpha(color Color, alpha int) *Fill {
	f.Type = FillSolid
	f.Color = color
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 100 {
		alpha = 100
	}
	f.Alpha = alpha
	return f
}

// SetGradientLinear sets a two-stop linear gradient fill. The rotation
// is normalized to 0-359 degrees.
func (f *Fill) SetGradientLinear(startColor, endColor Color, rotation int) *Fill {
	f.Type = FillGradientLinear
	f.Color = startColor
	f.EndColor = endColor
	f.Rotation = ((rotation % 360) + 360) % 360
	return f
}

// Border represents a shape outline.
type Border struct {
	Style BorderStyle
	Width int64 // in EMU
	Color Color
}

// BorderStyle represents the outline style.
type BorderStyle string

const (
	BorderNone  BorderStyle = "none"
	BorderSolid BorderStyle = "solid"
)

// NewBorder creates a Border with no outline.
func NewBorder() *Border {
	return &Border{Style: BorderNone}
}

// SetSolid sets a solid outline with the given width in EMU.
func (b *Border) SetSolid(color Color, width int64) *Border {
	b.Style = BorderSolid
	b.Color = color
	b.Width = width
	return b
}

// Shadow represents an outer drop shadow.
type Shadow struct {
	Visible    bool
	Direction  int // in degrees
	Distance   int // in points
	BlurRadius int // in points
	Color      Color
	Alpha      int // opacity 0-100
}

// NewShadow creates a hidden shadow with soft defaults.
func NewShadow() *Shadow {
	return &Shadow{
		Direction: 270,
		Color:     Color{ARGB: "FF000000"},
		Alpha:     40,
	}
}

// SetVisible sets shadow visibility.
func (s *Shadow) SetVisible(v bool) *Shadow {
	s.Visible = v
	return s
}

// SetDirection sets the shadow direction in degrees (normalized to 0-359).
func (s *Shadow) SetDirection(d int) *Shadow {
	s.Direction = ((d % 360) + 360) % 360
	return s
}

// SetDistance sets the shadow distance in points (clamped to >= 0).
func (s *Shadow) SetDistance(d int) *Shadow {
	if d < 0 {
		d = 0
	}
	s.Distance = d
	return s
}

// SetBlurRadius sets the shadow blur radius in points (clamped to >= 0).
func (s *Shadow) SetBlurRadius(r int) *Shadow {
	if r < 0 {
		r = 0
	}
	s.BlurRadius = r
	return s
}

// SetAlpha sets the shadow opacity in percent (clamped to 0-100).
func (s *Shadow) SetAlpha(a int) *Shadow {
	if a < 0 {
		a = 0
	}
	if a > 100 {
		a = 100
	}
	s.Alpha = a
	return s
}
