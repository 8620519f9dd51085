// Package docgen writes flowing-text Word documents (.docx) for the
// document export path. It follows much simpler rules than the deck
// engine: a title page line followed by one heading and body paragraphs
// per section.
package docgen

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/docsmith-ai/docsmith/internal/deck"
)

// ContentType is the MIME type of the serialized document.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Filename derives the download filename for a topic.
func Filename(topic string) string {
	return strings.ReplaceAll(topic, " ", "_") + ".docx"
}

const (
	nsWordML        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	ctDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctRels          = "application/vnd.openxmlformats-package.relationships+xml"

	titleColorHex   = "1976D2"
	headingColorHex = "1976D2"
)

// BuildDocument serializes a topic and its sections to DOCX bytes.
// Section order is preserved; markdown emphasis and bullet glyphs in
// the content are stripped the same way the deck engine strips them.
func BuildDocument(topic string, sections []deck.Section) ([]byte, error) {
	if topic == "" {
		return nil, fmt.Errorf("document has no topic")
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML()},
		{"_rels/.rels", rootRelsXML()},
		{"word/document.xml", documentXML(topic, sections)},
	}
	for _, part := range parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s in zip: %w", part.name, err)
		}
		if _, err := fw.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize document: %w", err)
	}
	return out.Bytes(), nil
}

func contentTypesXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="` + ctRels + `"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="` + ctDocument + `"/>
</Types>`
}

func rootRelsXML() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="%s">
  <Relationship Id="rId1" Type="%s" Target="word/document.xml"/>
</Relationships>`, nsRelationships, relTypeDocument)
}

func documentXML(topic string, sections []deck.Section) string {
	var body strings.Builder

	// Title line, centered.
	body.WriteString(paragraphXML(topic, paragraphStyle{
		SizeHalfPt: 56,
		Bold:       true,
		Color:      titleColorHex,
		Centered:   true,
	}))
	body.WriteString(paragraphXML("", paragraphStyle{SizeHalfPt: 22}))

	for _, section := range sections {
		body.WriteString(paragraphXML(section.Title, paragraphStyle{
			SizeHalfPt: 32,
			Bold:       true,
			Color:      headingColorHex,
		}))
		for _, line := range deck.Normalize(section.Content) {
			body.WriteString(paragraphXML(line, paragraphStyle{SizeHalfPt: 22}))
		}
		body.WriteString(paragraphXML("", paragraphStyle{SizeHalfPt: 22}))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="%s">
  <w:body>
%s    <w:sectPr>
      <w:pgSz w:w="12240" w:h="15840"/>
      <w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/>
    </w:sectPr>
  </w:body>
</w:document>`, nsWordML, body.String())
}

type paragraphStyle struct {
	SizeHalfPt int
	Bold       bool
	Color      string
	Centered   bool
}

func paragraphXML(text string, style paragraphStyle) string {
	var props strings.Builder
	if style.Centered {
		props.WriteString(`<w:jc w:val="center"/>`)
	}

	var runProps strings.Builder
	if style.Bold {
		runProps.WriteString("<w:b/>")
	}
	if style.Color != "" {
		fmt.Fprintf(&runProps, `<w:color w:val="%s"/>`, style.Color)
	}
	if style.SizeHalfPt > 0 {
		fmt.Fprintf(&runProps, `<w:sz w:val="%d"/>`, style.SizeHalfPt)
	}

	if text == "" {
		return fmt.Sprintf("    <w:p><w:pPr>%s</w:pPr></w:p>\n", props.String())
	}
	return fmt.Sprintf(`    <w:p>
      <w:pPr>%s</w:pPr>
      <w:r>
        <w:rPr>%s</w:rPr>
        <w:t xml:space="preserve">%s</w:t>
      </w:r>
    </w:p>
`, props.String(), runProps.String(), escapeXML(text))
}

func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
