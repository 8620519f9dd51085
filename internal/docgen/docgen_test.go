package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith-ai/docsmith/internal/deck"
)

func documentPart(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err, "output is not a valid zip")
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatal("word/document.xml missing")
	return ""
}

func TestBuildDocument(t *testing.T) {
	data, err := BuildDocument("Annual Report", []deck.Section{
		{ID: 1, Title: "Introduction", Content: "First paragraph.\nSecond paragraph."},
		{ID: 2, Title: "Details", Content: "**Bold** text here."},
	})
	require.NoError(t, err)

	doc := documentPart(t, data)
	assert.Contains(t, doc, "Annual Report")
	assert.Contains(t, doc, "Introduction")
	assert.Contains(t, doc, "First paragraph.")
	assert.Contains(t, doc, "Second paragraph.")
	assert.Contains(t, doc, "Bold text here.")
	assert.NotContains(t, doc, "**")

	// Sections appear in input order.
	assert.Less(t, strings.Index(doc, "Introduction"), strings.Index(doc, "Details"))
}

func TestBuildDocumentRequiresTopic(t *testing.T) {
	_, err := BuildDocument("", nil)
	assert.Error(t, err)
}

func TestBuildDocumentEmptySections(t *testing.T) {
	data, err := BuildDocument("Just a Title", nil)
	require.NoError(t, err)
	assert.Contains(t, documentPart(t, data), "Just a Title")
}

func TestBuildDocumentEscapesXML(t *testing.T) {
	data, err := BuildDocument("Q&A <Session>", []deck.Section{
		{ID: 1, Title: "A & B", Content: "x < y"},
	})
	require.NoError(t, err)

	doc := documentPart(t, data)
	assert.Contains(t, doc, "Q&amp;A &lt;Session&gt;")
	assert.Contains(t, doc, "x &lt; y")
}

func TestBuildDocumentDeterministic(t *testing.T) {
	sections := []deck.Section{{ID: 1, Title: "One", Content: "line"}}
	a, err := BuildDocument("Stable", sections)
	require.NoError(t, err)
	b, err := BuildDocument("Stable", sections)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Annual_Report_2026.docx", Filename("Annual Report 2026"))
}
