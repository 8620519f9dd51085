package pptx

import (
	"archive/zip"
	"fmt"
	"strings"
)

func (w *pptxWriter) writeSlide(zw *zip.Writer, slide *Slide, slideNum int) error {
	var shapesXML strings.Builder
	shapeID := 2 // 1 is reserved for the group shape

	for _, shape := range slide.shapes {
		switch s := shape.(type) {
		case *RichTextShape:
			shapesXML.WriteString(writeRichTextShapeXML(s, &shapeID))
		case *AutoShape:
			shapesXML.WriteString(writeAutoShapeXML(s, &shapeID))
		case *LineShape:
			shapesXML.WriteString(writeLineShapeXML(s, &shapeID))
		}
	}

	bgXML := ""
	if slide.background != nil && slide.background.Type != FillNone {
		bgXML = "    <p:bg>\n      <p:bgPr>\n"
		bgXML += writeFillXML(slide.background)
		bgXML += "        <a:effectLst/>\n      </p:bgPr>\n    </p:bg>\n"
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
%s    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, bgXML, shapesXML.String())

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), content)
}

func (w *pptxWriter) writeSlideRels(zw *zip.Writer, slideNum int) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="%s">
  <Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>`, nsRelationships, relTypeSlideLayout)
	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), content)
}

// xfrmAttrs builds the attribute string for <a:xfrm> including rotation.
// OOXML stores rotation in 60000ths of a degree.
func xfrmAttrs(b *BaseShape) string {
	if b.rotation == 0 {
		return ""
	}
	return fmt.Sprintf(` rot="%d"`, b.rotation*60000)
}

func writeRichTextShapeXML(s *RichTextShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.name
	if name == "" {
		name = fmt.Sprintf("TextBox %d", id)
	}

	fillXML := writeFillXML(s.GetFill())
	borderXML := writeBorderXML(s.GetBorder())
	shadowXML := writeShadowXML(s.shadow)

	var paragraphsXML strings.Builder
	for _, para := range s.paragraphs {
		paragraphsXML.WriteString(writeParagraphXML(para))
	}

	descrAttr := ""
	if s.description != "" {
		descrAttr = fmt.Sprintf(` descr="%s"`, xmlEscape(s.description))
	}

	anchorAttr := ""
	if s.textAnchor != TextAnchorNone {
		anchorAttr = fmt.Sprintf(` anchor="%s"`, string(s.textAnchor))
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"%s/>
          <p:cNvSpPr txBox="1"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm%s>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
%s%s%s        </p:spPr>
        <p:txBody>
          <a:bodyPr wrap="%s"%s/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, xmlEscape(name), descrAttr, xfrmAttrs(&s.BaseShape),
		s.offsetX, s.offsetY, s.width, s.height,
		fillXML, borderXML, shadowXML,
		boolToWrap(s.wordWrap), anchorAttr,
		paragraphsXML.String())
}

func boolToWrap(wrap bool) string {
	if wrap {
		return "square"
	}
	return "none"
}

func writeParagraphXML(para *Paragraph) string {
	algn := ""
	if para.alignment != nil && para.alignment.Horizontal != "" {
		algn = fmt.Sprintf(` algn="%s"`, para.alignment.Horizontal)
	}

	spacing := ""
	if para.lineSpacing > 0 {
		spacing = fmt.Sprintf(`
            <a:lnSpc><a:spcPct val="%d"/></a:lnSpc>`, para.lineSpacing)
	}
	if para.spaceBefore > 0 {
		spacing += fmt.Sprintf(`
            <a:spcBef><a:spcPts val="%d"/></a:spcBef>`, para.spaceBefore)
	}
	if para.spaceAfter > 0 {
		spacing += fmt.Sprintf(`
            <a:spcAft><a:spcPts val="%d"/></a:spcAft>`, para.spaceAfter)
	}

	bulletXML := ""
	if para.bullet != nil {
		bulletXML = writeBulletXML(para.bullet)
	}

	var runsXML strings.Builder
	for _, tr := range para.elements {
		runsXML.WriteString(writeTextRunXML(tr))
	}

	return fmt.Sprintf(`          <a:p>
            <a:pPr%s>%s%s
            </a:pPr>
%s          </a:p>
`, algn, spacing, bulletXML, runsXML.String())
}

func writeTextRunXML(tr *TextRun) string {
	font := tr.font
	attrs := fmt.Sprintf(` lang="en-US" sz="%d" dirty="0"`, font.Size*100)
	if font.Bold {
		attrs += ` b="1"`
	}

	solidFill := ""
	if font.Color.ARGB != "" {
		solidFill = fmt.Sprintf(`
              <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, colorRGB(font.Color))
	}

	latin := ""
	if font.Name != "" {
		latin = fmt.Sprintf(`
              <a:latin typeface="%s"/>`, xmlEscape(font.Name))
	}

	return fmt.Sprintf(`            <a:r>
              <a:rPr%s>%s%s
              </a:rPr>
              <a:t>%s</a:t>
            </a:r>
`, attrs, solidFill, latin, xmlEscape(tr.text))
}

func writeBulletXML(b *Bullet) string {
	if b.Type == BulletTypeNone {
		return "\n              <a:buNone/>"
	}

	var sb strings.Builder
	if b.Color != nil {
		fmt.Fprintf(&sb, "\n              <a:buClr><a:srgbClr val=\"%s\"/></a:buClr>", colorRGB(*b.Color))
	}
	if b.Font != "" {
		fmt.Fprintf(&sb, "\n              <a:buFont typeface=\"%s\"/>", xmlEscape(b.Font))
	}
	fmt.Fprintf(&sb, "\n              <a:buChar char=\"%s\"/>", xmlEscape(b.Char))
	return sb.String()
}

func writeAutoShapeXML(s *AutoShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.name
	if name == "" {
		name = fmt.Sprintf("Shape %d", id)
	}

	fillXML := writeFillXML(s.GetFill())
	borderXML := writeBorderXML(s.GetBorder())
	shadowXML := writeShadowXML(s.shadow)

	textXML := ""
	if s.text != "" {
		textXML = fmt.Sprintf(`
        <p:txBody>
          <a:bodyPr/>
          <a:lstStyle/>
          <a:p>
            <a:r>
              <a:rPr lang="en-US" dirty="0"/>
              <a:t>%s</a:t>
            </a:r>
          </a:p>
        </p:txBody>`, xmlEscape(s.text))
	}

	descrAttr := ""
	if s.description != "" {
		descrAttr = fmt.Sprintf(` descr="%s"`, xmlEscape(s.description))
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"%s/>
          <p:cNvSpPr/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm%s>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="%s">
            <a:avLst/>
          </a:prstGeom>
%s%s%s        </p:spPr>%s
      </p:sp>
`, id, xmlEscape(name), descrAttr,
		xfrmAttrs(&s.BaseShape),
		s.offsetX, s.offsetY, s.width, s.height,
		s.shapeType,
		fillXML, borderXML, shadowXML, textXML)
}

func writeLineShapeXML(s *LineShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	name := s.name
	if name == "" {
		name = fmt.Sprintf("Line %d", id)
	}

	return fmt.Sprintf(`      <p:cxnSp>
        <p:nvCxnSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvCxnSpPr/>
          <p:nvPr/>
        </p:nvCxnSpPr>
        <p:spPr>
          <a:xfrm%s>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="line">
            <a:avLst/>
          </a:prstGeom>
          <a:ln w="%d">
            <a:solidFill>
              <a:srgbClr val="%s"/>
            </a:solidFill>
          </a:ln>
        </p:spPr>
      </p:cxnSp>
`, id, xmlEscape(name),
		xfrmAttrs(&s.BaseShape),
		s.offsetX, s.offsetY, s.width, s.height,
		s.lineWidth*12700,
		colorRGB(s.lineColor))
}

// --- Fill, border and shadow helpers ---

func writeFillXML(f *Fill) string {
	if f == nil {
		return ""
	}
	switch f.Type {
	case FillSolid:
		alphaXML := ""
		if f.Alpha > 0 && f.Alpha < 100 {
			alphaXML = fmt.Sprintf(`<a:alpha val="%d"/>`, f.Alpha*1000)
		}
		if alphaXML != "" {
			return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\">%s</a:srgbClr></a:solidFill>\n",
				colorRGB(f.Color), alphaXML)
		}
		return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", colorRGB(f.Color))
	case FillGradientLinear:
		return fmt.Sprintf(`          <a:gradFill>
            <a:gsLst>
              <a:gs pos="0"><a:srgbClr val="%s"/></a:gs>
              <a:gs pos="100000"><a:srgbClr val="%s"/></a:gs>
            </a:gsLst>
            <a:lin ang="%d" scaled="1"/>
          </a:gradFill>
`, colorRGB(f.Color), colorRGB(f.EndColor), f.Rotation*60000)
	default:
		return ""
	}
}

func writeBorderXML(b *Border) string {
	if b == nil || b.Style == BorderNone {
		return ""
	}
	return fmt.Sprintf("          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:ln>\n",
		b.Width, colorRGB(b.Color))
}

func writeShadowXML(s *Shadow) string {
	if s == nil || !s.Visible {
		return ""
	}
	return fmt.Sprintf(`          <a:effectLst>
            <a:outerShdw blurRad="%d" dist="%d" dir="%d" algn="bl" rotWithShape="0">
              <a:srgbClr val="%s">
                <a:alpha val="%d"/>
              </a:srgbClr>
            </a:outerShdw>
          </a:effectLst>
`, s.BlurRadius*12700, s.Distance*12700, s.Direction*60000,
		colorRGB(s.Color), s.Alpha*1000)
}
