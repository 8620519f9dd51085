package api

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith-ai/docsmith/internal/deck"
	"github.com/docsmith-ai/docsmith/internal/logger"
)

type stubLLM struct {
	reply string
	err   error
	// last prompt received, for assertions
	prompt string
}

func (s *stubLLM) GenerateText(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestRouter(client *stubLLM) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	h := NewHandler(client, deck.NewAssembler(log), log)

	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/api/themes", h.Themes)
	r.POST("/api/generate-section", h.GenerateSection)
	r.POST("/api/refine-section", h.RefineSection)
	r.POST("/api/export-document", h.ExportDocument)
	r.POST("/api/generate-template", h.GenerateTemplate)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	w := doJSON(t, newTestRouter(&stubLLM{}), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}

func TestThemes(t *testing.T) {
	w := doJSON(t, newTestRouter(&stubLLM{}), http.MethodGet, "/api/themes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Themes  []string `json:"themes"`
		Default string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, deck.DefaultThemeID, resp.Default)
	assert.Contains(t, resp.Themes, "modern_dark")
}

func TestGenerateSection(t *testing.T) {
	client := &stubLLM{reply: "• point one\n• point two"}
	w := doJSON(t, newTestRouter(client), http.MethodPost, "/api/generate-section", gin.H{
		"topic":        "Solar Power",
		"sectionTitle": "Market Overview",
		"docType":      "pptx",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "• point one\n• point two", resp["content"])
	assert.Contains(t, client.prompt, "Solar Power")
	assert.Contains(t, client.prompt, "Market Overview")
	assert.Contains(t, client.prompt, "bullet points")
}

func TestGenerateSectionValidation(t *testing.T) {
	w := doJSON(t, newTestRouter(&stubLLM{}), http.MethodPost, "/api/generate-section", gin.H{
		"topic": "Missing Title",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateSectionUpstreamError(t *testing.T) {
	client := &stubLLM{err: errors.New("quota exceeded")}
	w := doJSON(t, newTestRouter(client), http.MethodPost, "/api/generate-section", gin.H{
		"topic":        "T",
		"sectionTitle": "S",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "quota exceeded")
}

func TestRefineSection(t *testing.T) {
	client := &stubLLM{reply: "shorter version"}
	w := doJSON(t, newTestRouter(client), http.MethodPost, "/api/refine-section", gin.H{
		"currentContent": "a very long text",
		"instruction":    "make it shorter",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "shorter version", resp["refinedContent"])
	assert.Contains(t, client.prompt, "make it shorter")
}

func TestExportDocumentPPTX(t *testing.T) {
	w := doJSON(t, newTestRouter(&stubLLM{}), http.MethodPost, "/api/export-document", gin.H{
		"topic":   "Annual Review",
		"docType": "pptx",
		"theme":   "nature_green",
		"sections": []gin.H{
			{"id": 1, "title": "Overview", "content": "- a\n- b"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, deck.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Annual_Review.pptx", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Content-Disposition", w.Header().Get("Access-Control-Expose-Headers"))

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err, "response body is not a valid pptx package")
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "ppt/slides/slide1.xml")
	assert.Contains(t, names, "ppt/slides/slide2.xml")
}

func TestExportDocumentDOCX(t *testing.T) {
	w := doJSON(t, newTestRouter(&stubLLM{}), http.MethodPost, "/api/export-document", gin.H{
		"topic":   "Annual Review",
		"docType": "docx",
		"sections": []gin.H{
			{"id": 1, "title": "Overview", "content": "text"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Header().Get("Content-Type"), "wordprocessingml"))
	assert.Equal(t, "attachment; filename=Annual_Review.docx", w.Header().Get("Content-Disposition"))
}

func TestExportDocumentValidation(t *testing.T) {
	w := doJSON(t, newTestRouter(&stubLLM{}), http.MethodPost, "/api/export-document", gin.H{
		"docType": "pptx",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateTemplate(t *testing.T) {
	client := &stubLLM{reply: "1. Introduction\n2. Key Findings\n\n3. Next Steps"}
	w := doJSON(t, newTestRouter(client), http.MethodPost,
		"/api/generate-template?topic=Robotics&doc_type=pptx&num_sections=3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Sections []deck.Section `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sections, 3)
	assert.Equal(t, deck.Section{ID: 1, Title: "Introduction"}, resp.Sections[0])
	assert.Equal(t, deck.Section{ID: 2, Title: "Key Findings"}, resp.Sections[1])
	assert.Equal(t, deck.Section{ID: 3, Title: "Next Steps"}, resp.Sections[2])
}

func TestGenerateTemplateRequiresTopic(t *testing.T) {
	w := doJSON(t, newTestRouter(&stubLLM{}), http.MethodPost, "/api/generate-template", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseOutline(t *testing.T) {
	sections := parseOutline("1. One\nplain line\n10. Ten", 5)
	require.Len(t, sections, 3)
	assert.Equal(t, "One", sections[0].Title)
	assert.Equal(t, "plain line", sections[1].Title)
	assert.Equal(t, "Ten", sections[2].Title)

	assert.Len(t, parseOutline("1. A\n2. B\n3. C", 2), 2)
	assert.Empty(t, parseOutline("", 5))
}
