package deck

import (
	"strconv"

	"github.com/docsmith-ai/docsmith/pptx"
)

// Canvas dimensions in inches. Fixed regardless of content.
const (
	CanvasWidth  = 10.0
	CanvasHeight = 7.5
)

// ElementKind identifies what a planned element draws.
type ElementKind int

const (
	// ElementBackground fills the whole slide surface.
	ElementBackground ElementKind = iota
	// ElementShape draws a filled rectangle or rounded rectangle.
	ElementShape
	// ElementText draws a text box holding one or more lines.
	ElementText
)

// Rect is a position and size in inches on the slide canvas.
type Rect struct {
	X, Y, W, H float64
}

// FillStyle describes a solid or two-stop gradient fill. Opacity is in
// percent; 100 (or 0) means fully opaque.
type FillStyle struct {
	Gradient bool
	Start    RGB
	End      RGB
	Angle    int
	Opacity  int
}

func solidFill(c RGB, opacity int) *FillStyle {
	return &FillStyle{Start: c, Opacity: opacity}
}

func gradientFill(start, end RGB, angle int) *FillStyle {
	return &FillStyle{Gradient: true, Start: start, End: end, Angle: angle}
}

// LineStyle describes a shape outline.
type LineStyle struct {
	Color   RGB
	WidthPt float64
}

// ShadowStyle describes a soft outer drop shadow cast straight down.
type ShadowStyle struct {
	BlurPt  int
	DistPt  int
	Opacity int
}

// TextStyle describes the formatting of every line in a text element.
type TextStyle struct {
	SizePt      int
	Bold        bool
	Color       RGB
	Align       pptx.HorizontalAlignment
	Bulleted    bool
	LineSpacing int // thousandths of a percent, 0 means default
	SpacePt     int // space before and after each paragraph, in points
	Wrap        bool
}

// ElementSpec is one planned visual element of a slide. Decorative
// elements degrade or get skipped on failure; mandatory ones propagate
// errors.
type ElementSpec struct {
	Kind      ElementKind
	Name      string
	Rect      Rect
	Rounded   bool
	Rotation  int
	Mandatory bool

	Fill    *FillStyle
	Outline *LineStyle
	Shadow  *ShadowStyle

	Lines []string
	Text  *TextStyle
}

// SlidePlan is the ordered element list for one slide, back to front.
type SlidePlan struct {
	Elements []ElementSpec
}

// backgroundSpec is the shared gradient background, drawn at a fixed
// 45 degree diagonal.
func backgroundSpec(style DerivedStyle) ElementSpec {
	return ElementSpec{
		Kind: ElementBackground,
		Name: "background",
		Fill: gradientFill(style.BgStart, style.BgEnd, 45),
	}
}

// TitleSlidePlan lays out the title slide: gradient background, a
// translucent rounded card, the centered topic title and a centered
// subtitle.
func TitleSlidePlan(topic string, style DerivedStyle) SlidePlan {
	return SlidePlan{Elements: []ElementSpec{
		backgroundSpec(style),
		{
			Kind:    ElementShape,
			Name:    "title card",
			Rect:    Rect{0.7, 1.6, 8.6, 3.2},
			Rounded: true,
			Fill:    solidFill(style.CardFill, 85),
			Shadow:  &ShadowStyle{BlurPt: 18, DistPt: 4, Opacity: 40},
		},
		{
			Kind:      ElementText,
			Name:      "title",
			Rect:      Rect{1, 2.1, 8, 1.5},
			Mandatory: true,
			Lines:     []string{topic},
			Text: &TextStyle{
				SizePt: 50,
				Bold:   true,
				Color:  style.TitleColor,
				Align:  pptx.HorizontalCenter,
				Wrap:   true,
			},
		},
		{
			Kind:  ElementText,
			Name:  "subtitle",
			Rect:  Rect{1, 3.8, 8, 0.7},
			Lines: []string{"AI-Generated Presentation"},
			Text: &TextStyle{
				SizePt: 22,
				Color:  style.TextColor,
				Align:  pptx.HorizontalCenter,
				Wrap:   true,
			},
		},
	}}
}

// ContentSlidePlan lays out one content slide. slideNum is 1-based over
// the content slides, title already carries the icon decision, lines is
// the normalized body content (may be empty).
func ContentSlidePlan(slideNum int, title, icon string, lines []string, style DerivedStyle) SlidePlan {
	heading := title
	if icon != "" {
		heading = icon + "  " + title
	}

	return SlidePlan{Elements: []ElementSpec{
		backgroundSpec(style),
		{
			Kind:     ElementShape,
			Name:     "diagonal overlay",
			Rect:     Rect{-1.0, -0.5, 6.0, 8.5},
			Rotation: -8,
			Fill:     solidFill(style.BgEnd, 65),
		},
		{
			Kind:    ElementShape,
			Name:    "header bar",
			Rect:    Rect{0.5, 0.3, 9.0, 1.1},
			Rounded: true,
			Fill:    solidFill(style.HeaderFill, 95),
			Outline: &LineStyle{Color: style.AccentColor, WidthPt: 1.7},
			Shadow:  &ShadowStyle{BlurPt: 10, DistPt: 3, Opacity: 40},
		},
		{
			Kind:      ElementText,
			Name:      "slide title",
			Rect:      Rect{0.7, 0.45, 8.6, 0.9},
			Mandatory: true,
			Lines:     []string{heading},
			Text: &TextStyle{
				SizePt: 34,
				Bold:   true,
				Color:  style.TitleColor,
				Wrap:   true,
			},
		},
		{
			Kind: ElementShape,
			Name: "accent underline",
			Rect: Rect{0.7, 1.4, 8.6, 0.06},
			Fill: solidFill(style.AccentColor, 100),
		},
		{
			Kind:    ElementShape,
			Name:    "content card",
			Rect:    Rect{0.8, 1.75, 8.4, 4.8},
			Rounded: true,
			Fill:    solidFill(style.CardFill, 98),
			Shadow:  &ShadowStyle{BlurPt: 14, DistPt: 4, Opacity: 30},
		},
		{
			Kind:      ElementText,
			Name:      "content",
			Rect:      Rect{1.0, 1.9, 8.0, 4.4},
			Mandatory: true,
			Lines:     lines,
			Text: &TextStyle{
				SizePt:      22,
				Color:       style.TextColor,
				Bulleted:    true,
				LineSpacing: 120000,
				SpacePt:     4,
				Wrap:        true,
			},
		},
		{
			Kind: ElementShape,
			Name: "bottom accent bar",
			Rect: Rect{0, CanvasHeight - 0.15, CanvasWidth, 0.15},
			Fill: solidFill(style.AccentColor, 100),
		},
		{
			Kind:  ElementText,
			Name:  "slide number",
			Rect:  Rect{9, 7, 0.5, 0.3},
			Lines: []string{strconv.Itoa(slideNum)},
			Text: &TextStyle{
				SizePt: 14,
				Color:  style.TextColor,
				Align:  pptx.HorizontalRight,
			},
		},
	}}
}
