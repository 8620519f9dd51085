// Package pptx is a pure Go writer for PowerPoint presentation files
// (.pptx) following the Office Open XML (OOXML) standard.
//
// It models a presentation as an ordered list of slides, each holding an
// ordered list of shapes, and serializes the whole document to a zip
// package of XML parts. Only the writing path is implemented.
package pptx

import (
	"errors"
	"time"
)

// Presentation represents an in-memory PowerPoint presentation.
type Presentation struct {
	properties *DocumentProperties
	slides     []*Slide
	layout     *DocumentLayout
}

// New creates an empty Presentation with a default 4:3 layout.
func New() *Presentation {
	return &Presentation{
		properties: NewDocumentProperties(),
		slides:     make([]*Slide, 0),
		layout:     NewDocumentLayout(),
	}
}

// GetDocumentProperties returns the document properties.
func (p *Presentation) GetDocumentProperties() *DocumentProperties {
	return p.properties
}

// GetLayout returns the document layout.
func (p *Presentation) GetLayout() *DocumentLayout {
	return p.layout
}

// SetLayout sets the document layout.
func (p *Presentation) SetLayout(layout *DocumentLayout) {
	p.layout = layout
}

// CreateSlide creates a new slide, appends it and returns it.
func (p *Presentation) CreateSlide() *Slide {
	slide := newSlide()
	p.slides = append(p.slides, slide)
	return slide
}

// GetSlide returns a slide by index.
func (p *Presentation) GetSlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.slides) {
		return nil, errors.New("slide index out of range")
	}
	return p.slides[index], nil
}

// GetAllSlides returns all slides in order.
func (p *Presentation) GetAllSlides() []*Slide {
	return p.slides
}

// GetSlideCount returns the number of slides.
func (p *Presentation) GetSlideCount() int {
	return len(p.slides)
}

// DocumentProperties holds the standard document properties written to
// docProps/core.xml and docProps/app.xml.
type DocumentProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
	Description    string
	Subject        string
	Company        string
}

// NewDocumentProperties creates document properties with zero timestamps.
// Zero Created/Modified times keep serialization deterministic; callers
// that want real timestamps set them explicitly.
func NewDocumentProperties() *DocumentProperties {
	return &DocumentProperties{
		Creator:        "docsmith",
		LastModifiedBy: "docsmith",
	}
}

// DocumentLayout represents the slide dimensions in EMU.
type DocumentLayout struct {
	CX   int64
	CY   int64
	Name string
}

// Predefined layout names.
const (
	LayoutScreen4x3  = "screen4x3"
	LayoutScreen16x9 = "screen16x9"
	LayoutCustom     = "custom"
)

// NewDocumentLayout creates the default 4:3 layout (10 x 7.5 inches).
func NewDocumentLayout() *DocumentLayout {
	return &DocumentLayout{
		CX:   9144000,
		CY:   6858000,
		Name: LayoutScreen4x3,
	}
}

// SetCustomLayout sets custom dimensions in EMU. Non-positive values fall
// back to the 4:3 defaults.
func (dl *DocumentLayout) SetCustomLayout(cx, cy int64) {
	if cx <= 0 {
		cx = 9144000
	}
	if cy <= 0 {
		cy = 6858000
	}
	dl.CX = cx
	dl.CY = cy
	dl.Name = LayoutCustom
}
