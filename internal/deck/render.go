package deck

import (
	"fmt"

	"github.com/docsmith-ai/docsmith/pptx"
)

// Outcome reports how an element was rendered. Decorative elements may
// degrade (simpler rendering of the same element) or be skipped
// entirely; neither aborts the slide.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeDegraded
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// RenderResult is the per-element outcome, with a reason when the
// element was not rendered as planned.
type RenderResult struct {
	Element string
	Outcome Outcome
	Reason  string
}

// RenderElement draws one planned element onto the slide. Failures on
// decorative elements are absorbed into a degraded or skipped result;
// only mandatory text elements propagate an error.
func RenderElement(slide *pptx.Slide, spec ElementSpec) (RenderResult, error) {
	switch spec.Kind {
	case ElementBackground:
		return renderBackground(slide, spec), nil
	case ElementShape:
		return renderShape(slide, spec), nil
	case ElementText:
		return renderText(slide, spec)
	}
	return skipped(spec, "unknown element kind"), nil
}

func applied(spec ElementSpec) RenderResult {
	return RenderResult{Element: spec.Name, Outcome: OutcomeApplied}
}

func degraded(spec ElementSpec, reason string) RenderResult {
	return RenderResult{Element: spec.Name, Outcome: OutcomeDegraded, Reason: reason}
}

func skipped(spec ElementSpec, reason string) RenderResult {
	return RenderResult{Element: spec.Name, Outcome: OutcomeSkipped, Reason: reason}
}

func renderBackground(slide *pptx.Slide, spec ElementSpec) RenderResult {
	if spec.Fill == nil {
		return skipped(spec, "no fill specified")
	}
	fill, reason := buildFill(spec.Fill)
	slide.SetBackground(fill)
	if reason != "" {
		return degraded(spec, reason)
	}
	return applied(spec)
}

func renderShape(slide *pptx.Slide, spec ElementSpec) RenderResult {
	if spec.Rect.W <= 0 || spec.Rect.H <= 0 {
		return skipped(spec, "empty rectangle")
	}
	if spec.Fill == nil {
		return skipped(spec, "no fill specified")
	}

	shape := slide.CreateAutoShape()
	shape.SetName(spec.Name)
	if spec.Rounded {
		shape.SetAutoShapeType(pptx.AutoShapeRoundedRect)
	}
	shape.SetPosition(pptx.Inch(spec.Rect.X), pptx.Inch(spec.Rect.Y))
	shape.SetSize(pptx.Inch(spec.Rect.W), pptx.Inch(spec.Rect.H))
	if spec.Rotation != 0 {
		shape.SetRotation(spec.Rotation)
	}

	fill, reason := buildFill(spec.Fill)
	shape.SetFill(fill)

	if spec.Outline != nil {
		shape.GetBorder().SetSolid(spec.Outline.Color.color(), pptx.Point(spec.Outline.WidthPt))
	}
	if spec.Shadow != nil {
		shape.GetShadow().
			SetVisible(true).
			SetBlurRadius(spec.Shadow.BlurPt).
			SetDistance(spec.Shadow.DistPt).
			SetAlpha(spec.Shadow.Opacity)
	}

	if reason != "" {
		return degraded(spec, reason)
	}
	return applied(spec)
}

func renderText(slide *pptx.Slide, spec ElementSpec) (RenderResult, error) {
	if spec.Text == nil {
		if spec.Mandatory {
			return RenderResult{}, fmt.Errorf("element %q: mandatory text element has no text style", spec.Name)
		}
		return skipped(spec, "no text style"), nil
	}
	if len(spec.Lines) == 0 {
		// An empty content area is an accepted outcome, not an error.
		return skipped(spec, "no lines"), nil
	}

	box := slide.CreateRichTextShape()
	box.SetName(spec.Name)
	box.SetPosition(pptx.Inch(spec.Rect.X), pptx.Inch(spec.Rect.Y))
	box.SetSize(pptx.Inch(spec.Rect.W), pptx.Inch(spec.Rect.H))
	box.SetWordWrap(spec.Text.Wrap)

	for i, line := range spec.Lines {
		para := box.GetActiveParagraph()
		if i > 0 {
			para = box.CreateParagraph()
		}
		if spec.Text.Align != "" {
			para.GetAlignment().SetHorizontal(spec.Text.Align)
		}
		if spec.Text.Bulleted {
			para.SetBullet(pptx.NewCharBullet("•"))
		}
		if spec.Text.LineSpacing > 0 {
			para.SetLineSpacing(spec.Text.LineSpacing)
		}
		if spec.Text.SpacePt > 0 {
			para.SetSpaceBefore(spec.Text.SpacePt * 100)
			para.SetSpaceAfter(spec.Text.SpacePt * 100)
		}

		run := para.CreateTextRun(line)
		run.GetFont().
			SetSize(spec.Text.SizePt).
			SetBold(spec.Text.Bold).
			SetColor(spec.Text.Color.color())
	}

	return applied(spec), nil
}

// buildFill converts a FillStyle into a pptx fill, degrading an
// unusable gradient to a solid fill of its start color. The returned
// reason is empty when the fill was applied exactly as specified.
func buildFill(fs *FillStyle) (*pptx.Fill, string) {
	fill := pptx.NewFill()
	if fs.Gradient {
		if fs.Start == fs.End {
			fill.SetSolid(fs.Start.color())
			return fill, "gradient stops identical, using solid fill"
		}
		fill.SetGradientLinear(fs.Start.color(), fs.End.color(), fs.Angle)
		return fill, ""
	}
	if fs.Opacity > 0 && fs.Opacity < 100 {
		fill.SetSolidWithAlpha(fs.Start.color(), fs.Opacity)
	} else {
		fill.SetSolid(fs.Start.color())
	}
	return fill, ""
}
