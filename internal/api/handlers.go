// Package api implements the HTTP handlers of the document generation
// service.
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docsmith-ai/docsmith/internal/deck"
	"github.com/docsmith-ai/docsmith/internal/docgen"
	"github.com/docsmith-ai/docsmith/internal/llm"
	"github.com/docsmith-ai/docsmith/internal/logger"
)

// Handler bundles the collaborators behind the HTTP routes.
type Handler struct {
	llm       llm.Client
	assembler *deck.Assembler
	log       *logger.Logger
}

// NewHandler creates the route handler set.
func NewHandler(client llm.Client, assembler *deck.Assembler, log *logger.Logger) *Handler {
	return &Handler{llm: client, assembler: assembler, log: log}
}

type generateSectionRequest struct {
	Topic        string `json:"topic" binding:"required"`
	SectionTitle string `json:"sectionTitle" binding:"required"`
	DocType      string `json:"docType"`
}

type refineRequest struct {
	CurrentContent string `json:"currentContent"`
	Instruction    string `json:"instruction" binding:"required"`
}

type exportRequest struct {
	Topic    string         `json:"topic" binding:"required"`
	Sections []deck.Section `json:"sections"`
	DocType  string         `json:"docType"`
	Theme    string         `json:"theme"`
}

func errorResponse(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"detail": err.Error()})
}

// Root reports service liveness.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Document Generator API is running"})
}

// Themes lists the available deck theme ids.
func (h *Handler) Themes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": deck.ThemeIDs(), "default": deck.DefaultThemeID})
}

// GenerateSection produces content for a single section title.
func (h *Handler) GenerateSection(c *gin.Context) {
	var req generateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err)
		return
	}

	prompt := llm.SectionPrompt(req.Topic, req.SectionTitle, req.DocType)
	content, err := h.llm.GenerateText(c.Request.Context(), prompt)
	if err != nil {
		h.log.Error("section generation failed", "title", req.SectionTitle, "error", err)
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// RefineSection rewrites existing content under a user instruction.
func (h *Handler) RefineSection(c *gin.Context) {
	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err)
		return
	}

	prompt := llm.RefinePrompt(req.CurrentContent, req.Instruction)
	refined, err := h.llm.GenerateText(c.Request.Context(), prompt)
	if err != nil {
		h.log.Error("refinement failed", "error", err)
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"refinedContent": refined})
}

// ExportDocument serializes the outline to a DOCX or PPTX download.
func (h *Handler) ExportDocument(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err)
		return
	}

	var (
		data     []byte
		filename string
		mime     string
		err      error
	)
	if req.DocType == "docx" {
		data, err = docgen.BuildDocument(req.Topic, req.Sections)
		filename = docgen.Filename(req.Topic)
		mime = docgen.ContentType
	} else {
		data, err = h.assembler.BuildDeck(deck.Outline{
			Topic:    req.Topic,
			Sections: req.Sections,
			ThemeID:  req.Theme,
		})
		filename = deck.Filename(req.Topic)
		mime = deck.ContentType
	}
	if err != nil {
		h.log.Error("export failed", "topic", req.Topic, "doc_type", req.DocType, "error", err)
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}

	h.log.Info("document exported",
		"topic", req.Topic,
		"doc_type", req.DocType,
		"sections", len(req.Sections),
		"bytes", len(data),
	)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Access-Control-Expose-Headers", "Content-Disposition")
	c.Data(http.StatusOK, mime, data)
}

// GenerateTemplate suggests a numbered outline for a topic. Parameters
// arrive as query values: topic, doc_type and num_sections.
func (h *Handler) GenerateTemplate(c *gin.Context) {
	topic := c.Query("topic")
	if topic == "" {
		errorResponse(c, http.StatusBadRequest, fmt.Errorf("topic is required"))
		return
	}
	docType := c.DefaultQuery("doc_type", "pptx")
	numSections, err := strconv.Atoi(c.DefaultQuery("num_sections", "5"))
	if err != nil || numSections < 1 {
		errorResponse(c, http.StatusBadRequest, fmt.Errorf("num_sections must be a positive integer"))
		return
	}

	text, err := h.llm.GenerateText(c.Request.Context(), llm.TemplatePrompt(topic, docType, numSections))
	if err != nil {
		h.log.Error("template generation failed", "topic", topic, "error", err)
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sections": parseOutline(text, numSections)})
}

// parseOutline turns numbered outline text into empty sections,
// stripping "1." style prefixes and skipping blank lines.
func parseOutline(text string, max int) []deck.Section {
	sections := make([]deck.Section, 0, max)
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if len(sections) == max {
			break
		}
		title := strings.TrimSpace(line)
		if i := strings.Index(title, "."); i >= 0 {
			title = strings.TrimSpace(title[i+1:])
		}
		if title == "" {
			continue
		}
		sections = append(sections, deck.Section{ID: len(sections) + 1, Title: title})
	}
	return sections
}
