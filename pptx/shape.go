package pptx

// Shape is the interface that all slide shapes implement.
type Shape interface {
	GetType() ShapeType
	GetOffsetX() int64
	GetOffsetY() int64
	GetWidth() int64
	GetHeight() int64
	GetName() string
	GetRotation() int
	// base returns the underlying BaseShape (internal use only).
	base() *BaseShape
}

// ShapeType represents the type of shape.
type ShapeType int

const (
	ShapeTypeRichText ShapeType = iota
	ShapeTypeAutoShape
	ShapeTypeLine
)

// BaseShape contains the properties common to all shapes. Offsets and
// sizes are in EMU, rotation in degrees.
type BaseShape struct {
	name        string
	description string
	offsetX     int64
	offsetY     int64
	width       int64
	height      int64
	rotation    int
	fill        *Fill
	border      *Border
	shadow      *Shadow
}

func (b *BaseShape) GetOffsetX() int64 { return b.offsetX }
func (b *BaseShape) GetOffsetY() int64 { return b.offsetY }
func (b *BaseShape) GetWidth() int64   { return b.width }
func (b *BaseShape) GetHeight() int64  { return b.height }
func (b *BaseShape) GetName() string   { return b.name }
func (b *BaseShape) GetRotation() int  { return b.rotation }
func (b *BaseShape) base() *BaseShape  { return b }

func (b *BaseShape) SetName(n string) *BaseShape { b.name = n; return b }

// SetRotation sets the rotation in degrees, normalized to 0-359.
func (b *BaseShape) SetRotation(r int) *BaseShape {
	b.rotation = ((r % 360) + 360) % 360
	return b
}

// SetPosition sets both offsets in EMU.
func (b *BaseShape) SetPosition(x, y int64) *BaseShape {
	b.offsetX = x
	b.offsetY = y
	return b
}

// SetSize sets width and height in EMU.
func (b *BaseShape) SetSize(w, h int64) *BaseShape {
	b.width = w
	b.height = h
	return b
}

func (b *BaseShape) GetDescription() string  { return b.description }
func (b *BaseShape) SetDescription(d string) { b.description = d }

// GetFill returns the shape fill, allocating a no-fill on first use.
func (b *BaseShape) GetFill() *Fill {
	if b.fill == nil {
		b.fill = NewFill()
	}
	return b.fill
}

func (b *BaseShape) SetFill(f *Fill) { b.fill = f }

// GetBorder returns the shape border, allocating a no-border on first use.
func (b *BaseShape) GetBorder() *Border {
	if b.border == nil {
		b.border = NewBorder()
	}
	return b.border
}

func (b *BaseShape) SetBorder(border *Border) { b.border = border }

// GetShadow returns the shape shadow, allocating a hidden one on first use.
func (b *BaseShape) GetShadow() *Shadow {
	if b.shadow == nil {
		b.shadow = NewShadow()
	}
	return b.shadow
}

func (b *BaseShape) SetShadow(s *Shadow) { b.shadow = s }

// RichTextShape represents a text box holding one or more paragraphs.
type RichTextShape struct {
	BaseShape
	paragraphs      []*Paragraph
	activeParagraph int
	wordWrap        bool
	textAnchor      TextAnchorType
}

// TextAnchorType represents the vertical anchoring of text within a shape.
type TextAnchorType string

const (
	TextAnchorTop    TextAnchorType = "t"
	TextAnchorMiddle TextAnchorType = "ctr"
	TextAnchorBottom TextAnchorType = "b"
	TextAnchorNone   TextAnchorType = ""
)

func (r *RichTextShape) GetType() ShapeType { return ShapeTypeRichText }

// NewRichTextShape creates a text box with one empty paragraph.
func NewRichTextShape() *RichTextShape {
	return &RichTextShape{
		paragraphs: []*Paragraph{NewParagraph()},
		wordWrap:   true,
	}
}

// GetActiveParagraph returns the paragraph new runs are appended to.
func (r *RichTextShape) GetActiveParagraph() *Paragraph {
	if len(r.paragraphs) == 0 {
		r.paragraphs = append(r.paragraphs, NewParagraph())
	}
	return r.paragraphs[r.activeParagraph]
}

// CreateParagraph creates a new paragraph and makes it active.
func (r *RichTextShape) CreateParagraph() *Paragraph {
	p := NewParagraph()
	r.paragraphs = append(r.paragraphs, p)
	r.activeParagraph = len(r.paragraphs) - 1
	return p
}

// GetParagraphs returns all paragraphs.
func (r *RichTextShape) GetParagraphs() []*Paragraph {
	return r.paragraphs
}

// CreateTextRun creates a text run in the active paragraph.
func (r *RichTextShape) CreateTextRun(text string) *TextRun {
	return r.GetActiveParagraph().CreateTextRun(text)
}

// SetWordWrap sets word wrapping.
func (r *RichTextShape) SetWordWrap(wrap bool) { r.wordWrap = wrap }

// GetWordWrap returns the word wrap setting.
func (r *RichTextShape) GetWordWrap() bool { return r.wordWrap }

// SetTextAnchor sets the vertical text anchor.
func (r *RichTextShape) SetTextAnchor(anchor TextAnchorType) { r.textAnchor = anchor }

// GetTextAnchor returns the vertical text anchor.
func (r *RichTextShape) GetTextAnchor() TextAnchorType { return r.textAnchor }

// Paragraph represents a text paragraph.
type Paragraph struct {
	elements    []*TextRun
	alignment   *Alignment
	bullet      *Bullet
	lineSpacing int // thousandths of a percent (120000 = 120%)
	spaceBefore int // points * 100
	spaceAfter  int // points * 100
}

// NewParagraph creates an empty paragraph with default alignment.
func NewParagraph() *Paragraph {
	return &Paragraph{
		elements:  make([]*TextRun, 0),
		alignment: NewAlignment(),
	}
}

// GetAlignment returns the paragraph alignment.
func (p *Paragraph) GetAlignment() *Alignment { return p.alignment }

// GetBullet returns the paragraph bullet, or nil.
func (p *Paragraph) GetBullet() *Bullet { return p.bullet }

// SetBullet sets the paragraph bullet.
func (p *Paragraph) SetBullet(b *Bullet) { p.bullet = b }

// GetLineSpacing returns line spacing in thousandths of a percent.
func (p *Paragraph) GetLineSpacing() int { return p.lineSpacing }

// SetLineSpacing sets line spacing in thousandths of a percent
// (120000 = 120%).
func (p *Paragraph) SetLineSpacing(spacing int) { p.lineSpacing = spacing }

// GetSpaceBefore returns the space before the paragraph in points*100.
func (p *Paragraph) GetSpaceBefore() int { return p.spaceBefore }

// SetSpaceBefore sets the space before the paragraph in points*100.
func (p *Paragraph) SetSpaceBefore(v int) { p.spaceBefore = v }

// GetSpaceAfter returns the space after the paragraph in points*100.
func (p *Paragraph) GetSpaceAfter() int { return p.spaceAfter }

// SetSpaceAfter sets the space after the paragraph in points*100.
func (p *Paragraph) SetSpaceAfter(v int) { p.spaceAfter = v }

// GetElements returns the paragraph text runs.
func (p *Paragraph) GetElements() []*TextRun { return p.elements }

// CreateTextRun creates a new text run in the paragraph.
func (p *Paragraph) CreateTextRun(text string) *TextRun {
	tr := &TextRun{
		text: text,
		font: NewFont(),
	}
	p.elements = append(p.elements, tr)
	return tr
}

// TextRun represents a run of text with uniform formatting.
type TextRun struct {
	text string
	font *Font
}

// GetText returns the text content.
func (tr *TextRun) GetText() string { return tr.text }

// SetText sets the text content.
func (tr *TextRun) SetText(text string) { tr.text = text }

// GetFont returns the font properties.
func (tr *TextRun) GetFont() *Font { return tr.font }

// AutoShape represents a preset-geometry shape (rectangle, rounded
// rectangle, ellipse, ...), optionally holding centered text.
type AutoShape struct {
	BaseShape
	shapeType AutoShapeType
	text      string
}

// AutoShapeType is the OOXML preset geometry name.
type AutoShapeType string

const (
	AutoShapeRectangle   AutoShapeType = "rect"
	AutoShapeRoundedRect AutoShapeType = "roundRect"
	AutoShapeEllipse     AutoShapeType = "ellipse"
)

func (a *AutoShape) GetType() ShapeType { return ShapeTypeAutoShape }

// NewAutoShape creates a rectangle auto shape.
func NewAutoShape() *AutoShape {
	return &AutoShape{shapeType: AutoShapeRectangle}
}

// SetAutoShapeType sets the preset geometry.
func (a *AutoShape) SetAutoShapeType(t AutoShapeType) *AutoShape {
	a.shapeType = t
	return a
}

// GetAutoShapeType returns the preset geometry.
func (a *AutoShape) GetAutoShapeType() AutoShapeType { return a.shapeType }

// SetSolidFill sets a solid fill on the shape.
func (a *AutoShape) SetSolidFill(c Color) *AutoShape {
	a.GetFill().SetSolid(c)
	return a
}

// SetText sets the shape text.
func (a *AutoShape) SetText(text string) *AutoShape {
	a.text = text
	return a
}

// GetText returns the shape text.
func (a *AutoShape) GetText() string { return a.text }

// LineShape represents a straight connector.
type LineShape struct {
	BaseShape
	lineWidth int // in points
	lineColor Color
}

func (l *LineShape) GetType() ShapeType { return ShapeTypeLine }

// NewLineShape creates a 1pt black line.
func NewLineShape() *LineShape {
	return &LineShape{
		lineWidth: 1,
		lineColor: ColorBlack,
	}
}

// SetLineWidth sets the line width in points.
func (l *LineShape) SetLineWidth(w int) *LineShape {
	l.lineWidth = w
	return l
}

// GetLineWidth returns the line width in points.
func (l *LineShape) GetLineWidth() int { return l.lineWidth }

// SetLineColor sets the line color.
func (l *LineShape) SetLineColor(c Color) *LineShape {
	l.lineColor = c
	return l
}

// GetLineColor returns the line color.
func (l *LineShape) GetLineColor() Color { return l.lineColor }

// Bullet represents paragraph bullet formatting.
type Bullet struct {
	Type  BulletType
	Char  string // bullet character for BulletTypeChar
	Font  string // bullet font typeface, optional
	Color *Color // bullet color, optional
}

// BulletType represents the bullet kind.
type BulletType int

const (
	BulletTypeNone BulletType = iota
	BulletTypeChar
)

// NewCharBullet creates a character bullet.
func NewCharBullet(char string) *Bullet {
	return &Bullet{Type: BulletTypeChar, Char: char}
}
