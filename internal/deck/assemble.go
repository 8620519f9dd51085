package deck

import (
	"fmt"
	"strings"

	"github.com/docsmith-ai/docsmith/internal/logger"
	"github.com/docsmith-ai/docsmith/pptx"
)

// ContentType is the MIME type of the serialized deck.
const ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// Section is one titled unit of content, mapped to one content slide.
type Section struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Outline is the full input to deck generation. Section order is
// significant and preserved end-to-end.
type Outline struct {
	Topic    string
	Sections []Section
	ThemeID  string
}

// Filename derives the download filename for a topic: spaces become
// underscores, with the deck extension appended.
func Filename(topic string) string {
	return strings.ReplaceAll(topic, " ", "_") + ".pptx"
}

// Assembler builds complete decks from outlines. It holds no mutable
// state, so a single Assembler may serve concurrent calls.
type Assembler struct {
	log *logger.Logger
}

// NewAssembler creates an Assembler logging render degradations to the
// given logger.
func NewAssembler(log *logger.Logger) *Assembler {
	return &Assembler{log: log}
}

// BuildDeck renders one title slide plus one content slide per section,
// in section order, and serializes the deck to PPTX bytes. Identical
// outlines produce byte-identical output.
func (a *Assembler) BuildDeck(outline Outline) ([]byte, error) {
	if outline.Topic == "" {
		return nil, fmt.Errorf("deck outline has no topic")
	}

	theme := ResolveTheme(outline.ThemeID)
	style := DeriveStyle(theme)

	p := pptx.New()
	p.GetDocumentProperties().Title = outline.Topic

	if err := a.renderSlide(p, TitleSlidePlan(outline.Topic, style), "title"); err != nil {
		return nil, err
	}

	for i, section := range outline.Sections {
		plan := ContentSlidePlan(
			i+1,
			section.Title,
			MatchIcon(section.Title),
			Normalize(section.Content),
			style,
		)
		if err := a.renderSlide(p, plan, section.Title); err != nil {
			return nil, fmt.Errorf("section %d: %w", section.ID, err)
		}
	}

	data, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serialize deck: %w", err)
	}
	return data, nil
}

func (a *Assembler) renderSlide(p *pptx.Presentation, plan SlidePlan, name string) error {
	slide := p.CreateSlide()
	slide.SetName(name)

	for _, spec := range plan.Elements {
		result, err := RenderElement(slide, spec)
		if err != nil {
			return err
		}
		if result.Outcome != OutcomeApplied {
			a.log.Debug("element not fully rendered",
				"slide", name,
				"element", result.Element,
				"outcome", result.Outcome.String(),
				"reason", result.Reason,
			)
		}
	}
	return nil
}
