package pptx

// Slide represents a single slide: an optional background fill plus an
// ordered list of shapes. Shapes render in insertion order, back to front.
type Slide struct {
	name       string
	shapes     []Shape
	background *Fill
}

func newSlide() *Slide {
	return &Slide{
		shapes: make([]Shape, 0),
	}
}

// GetName returns the slide name.
func (s *Slide) GetName() string { return s.name }

// SetName sets the slide name.
func (s *Slide) SetName(name string) { s.name = name }

// SetBackground sets the slide background fill.
func (s *Slide) SetBackground(f *Fill) { s.background = f }

// GetBackground returns the slide background fill, or nil.
func (s *Slide) GetBackground() *Fill { return s.background }

// GetShapes returns all shapes in insertion order.
func (s *Slide) GetShapes() []Shape { return s.shapes }

// CreateRichTextShape creates a text box, appends it and returns it.
func (s *Slide) CreateRichTextShape() *RichTextShape {
	rt := NewRichTextShape()
	s.shapes = append(s.shapes, rt)
	return rt
}

// CreateAutoShape creates a preset-geometry shape (rectangle by default),
// appends it and returns it.
func (s *Slide) CreateAutoShape() *AutoShape {
	a := NewAutoShape()
	s.shapes = append(s.shapes, a)
	return a
}

// CreateLineShape creates a straight connector, appends it and returns it.
func (s *Slide) CreateLineShape() *LineShape {
	l := NewLineShape()
	s.shapes = append(s.shapes, l)
	return l
}
