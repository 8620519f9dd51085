package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper: write presentation to a buffer and index the zip parts by name.
func writeParts(t *testing.T, p *Presentation) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	return readParts(t, buf.Bytes())
}

func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read part %s: %v", f.Name, err)
		}
		parts[f.Name] = string(b)
	}
	return parts
}

func TestWriteEmptyPresentationFails(t *testing.T) {
	p := New()
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err == nil {
		t.Fatal("expected error writing presentation with no slides")
	}
}

func TestPackageStructure(t *testing.T) {
	p := New()
	slide := p.CreateSlide()
	slide.CreateRichTextShape().CreateTextRun("Hello")

	parts := writeParts(t, p)

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/presProps.xml",
		"ppt/viewProps.xml",
		"ppt/tableStyles.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing package part %s", name)
		}
	}

	ct := parts["[Content_Types].xml"]
	if !strings.Contains(ct, "slide1.xml") {
		t.Error("content types missing slide override")
	}
}

func TestMultipleSlides(t *testing.T) {
	p := New()
	for i := 0; i < 3; i++ {
		p.CreateSlide().CreateRichTextShape().CreateTextRun("slide")
	}
	if p.GetSlideCount() != 3 {
		t.Fatalf("expected 3 slides, got %d", p.GetSlideCount())
	}

	parts := writeParts(t, p)
	for _, name := range []string{"ppt/slides/slide1.xml", "ppt/slides/slide2.xml", "ppt/slides/slide3.xml"} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing %s", name)
		}
	}

	rels := parts["ppt/_rels/presentation.xml.rels"]
	for _, frag := range []string{"slides/slide1.xml", "slides/slide2.xml", "slides/slide3.xml"} {
		if !strings.Contains(rels, frag) {
			t.Errorf("presentation rels missing %s", frag)
		}
	}
}

func TestSlideBackgroundGradient(t *testing.T) {
	p := New()
	slide := p.CreateSlide()
	slide.SetBackground(NewFill().SetGradientLinear(RGB(227, 242, 253), RGB(187, 222, 251), 90))
	slide.CreateRichTextShape().CreateTextRun("x")

	parts := writeParts(t, p)
	xml := parts["ppt/slides/slide1.xml"]
	for _, frag := range []string{
		"<p:bg>",
		"<a:gradFill>",
		`<a:srgbClr val="E3F2FD"/>`,
		`<a:srgbClr val="BBDEFB"/>`,
		`<a:lin ang="5400000" scaled="1"/>`,
	} {
		if !strings.Contains(xml, frag) {
			t.Errorf("slide XML missing %q", frag)
		}
	}
}

func TestRichTextShapeXML(t *testing.T) {
	p := New()
	slide := p.CreateSlide()

	rt := slide.CreateRichTextShape()
	rt.SetName("Title")
	rt.SetPosition(Inch(1), Inch(2.1))
	rt.SetSize(Inch(8), Inch(1.5))
	rt.SetWordWrap(true)
	para := rt.GetActiveParagraph()
	para.GetAlignment().SetHorizontal(HorizontalCenter)
	tr := rt.CreateTextRun("Big Title")
	tr.GetFont().SetBold(true).SetSize(50).SetColor(RGB(25, 118, 210)).SetName("Calibri")

	parts := writeParts(t, p)
	xml := parts["ppt/slides/slide1.xml"]
	for _, frag := range []string{
		`name="Title"`,
		`<a:off x="914400" y="1920240"/>`,
		`<a:ext cx="7315200" cy="1371600"/>`,
		`algn="ctr"`,
		`sz="5000"`,
		`b="1"`,
		`<a:srgbClr val="1976D2"/>`,
		`<a:latin typeface="Calibri"/>`,
		"<a:t>Big Title</a:t>",
	} {
		if !strings.Contains(xml, frag) {
			t.Errorf("slide XML missing %q", frag)
		}
	}
}

func TestAutoShapeFillAlphaAndShadow(t *testing.T) {
	p := New()
	slide := p.CreateSlide()

	card := slide.CreateAutoShape()
	card.SetAutoShapeType(AutoShapeRoundedRect)
	card.SetPosition(Inch(0.5), Inch(0.3))
	card.SetSize(Inch(9), Inch(1.1))
	card.GetFill().SetSolidWithAlpha(ColorWhite, 95)
	card.GetBorder().SetSolid(RGB(66, 165, 245), Point(1.7))
	card.GetShadow().SetVisible(true).SetBlurRadius(10).SetDistance(3).SetDirection(270).SetAlpha(40)

	parts := writeParts(t, p)
	xml := parts["ppt/slides/slide1.xml"]
	for _, frag := range []string{
		`prst="roundRect"`,
		`<a:alpha val="95000"/>`,
		`<a:ln w="21590">`,
		`<a:outerShdw blurRad="127000" dist="38100" dir="16200000"`,
		`<a:alpha val="40000"/>`,
	} {
		if !strings.Contains(xml, frag) {
			t.Errorf("slide XML missing %q", frag)
		}
	}
}

func TestShapeRotation(t *testing.T) {
	p := New()
	slide := p.CreateSlide()
	sh := slide.CreateAutoShape()
	sh.SetRotation(-8)
	sh.SetSolidFill(RGB(187, 222, 251))

	parts := writeParts(t, p)
	// -8 degrees normalizes to 352
	if !strings.Contains(parts["ppt/slides/slide1.xml"], `rot="21120000"`) {
		t.Error("expected rotation attribute for -8 degrees")
	}
}

func TestLineShapeXML(t *testing.T) {
	p := New()
	slide := p.CreateSlide()
	line := slide.CreateLineShape()
	line.SetPosition(Inch(0.7), Inch(1.4))
	line.SetSize(Inch(8.6), 0)
	line.SetLineWidth(2)
	line.SetLineColor(RGB(66, 165, 245))

	parts := writeParts(t, p)
	xml := parts["ppt/slides/slide1.xml"]
	if !strings.Contains(xml, "<p:cxnSp>") {
		t.Error("missing connector shape")
	}
	if !strings.Contains(xml, `<a:ln w="25400">`) {
		t.Error("missing 2pt line width")
	}
	if !strings.Contains(xml, `<a:srgbClr val="42A5F5"/>`) {
		t.Error("missing line color")
	}
}

func TestXMLEscaping(t *testing.T) {
	p := New()
	slide := p.CreateSlide()
	slide.CreateRichTextShape().CreateTextRun(`A <b> & "c"`)

	parts := writeParts(t, p)
	xml := parts["ppt/slides/slide1.xml"]
	if strings.Contains(xml, "<a:t>A <b>") {
		t.Error("text was not XML-escaped")
	}
	if !strings.Contains(xml, "&lt;b&gt; &amp;") {
		t.Error("expected escaped entities in text run")
	}
}

func TestDeterministicOutput(t *testing.T) {
	build := func() []byte {
		p := New()
		slide := p.CreateSlide()
		slide.SetBackground(NewFill().SetGradientLinear(RGB(10, 20, 30), RGB(40, 50, 60), 90))
		rt := slide.CreateRichTextShape()
		rt.SetPosition(Inch(1), Inch(1))
		rt.SetSize(Inch(4), Inch(1))
		rt.CreateTextRun("same input")
		data, err := p.Bytes()
		if err != nil {
			t.Fatalf("Bytes failed: %v", err)
		}
		return data
	}
	a := build()
	b := build()
	if !bytes.Equal(a, b) {
		t.Error("identical presentations produced different bytes")
	}
}

func TestSaveToFile(t *testing.T) {
	p := New()
	p.CreateSlide().CreateRichTextShape().CreateTextRun("file")

	path := filepath.Join(t.TempDir(), "out", "test.pptx")
	if err := p.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	parts := readParts(t, data)
	if _, ok := parts["ppt/slides/slide1.xml"]; !ok {
		t.Error("saved file missing slide part")
	}
}

func TestCorePropertiesOmitZeroTimestamps(t *testing.T) {
	p := New()
	p.CreateSlide().CreateRichTextShape().CreateTextRun("x")
	p.GetDocumentProperties().Title = "Quarterly Review"

	parts := writeParts(t, p)
	core := parts["docProps/core.xml"]
	if strings.Contains(core, "dcterms:created") {
		t.Error("zero Created timestamp should be omitted")
	}
	if !strings.Contains(core, "Quarterly Review") {
		t.Error("missing document title")
	}
}

func TestValidate(t *testing.T) {
	p := New()
	if err := p.Validate(); err == nil {
		t.Error("expected validation error for presentation with no slides")
	}

	slide := p.CreateSlide()
	slide.CreateRichTextShape().CreateTextRun("ok")
	if err := p.Validate(); err != nil {
		t.Errorf("expected valid presentation, got: %v", err)
	}
}
