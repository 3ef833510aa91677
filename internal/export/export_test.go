package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/preview"
	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "ops-analyst-draft", SanitizeFileName("Ops Analyst Draft"))
	assert.Equal(t, "tailored-resume-draft", SanitizeFileName("  Tailored Resume Draft!  "))
	assert.Equal(t, "v2-acme", SanitizeFileName("v2 / Acme"))
	assert.Equal(t, "resume", SanitizeFileName(""))
	assert.Equal(t, "resume", SanitizeFileName("???"))
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "ops-analyst-draft.pdf", PDFFileName("Ops Analyst Draft"))
	assert.Equal(t, "resume.pdf", PDFFileName(""))
	// an existing .pdf suffix is not doubled or folded into the stem
	assert.Equal(t, "ops-draft.pdf", PDFFileName("Ops Draft.pdf"))
	assert.Equal(t, "ops-draft.pdf", PDFFileName("Ops Draft.PDF"))
}

func TestRenderHTML_IncludesDerivedContent(t *testing.T) {
	doc := preview.Derive(sample.Resume())

	html, err := RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Tobe Chanow</h1>")
	assert.Contains(t, html, "Business Operations Intern")
	assert.Contains(t, html, "Jun 2025 - Aug 2025")
	assert.Contains(t, html, "Analytics &amp; Tools")
	// summary is unselected in the seed resume
	assert.NotContains(t, html, "<h2>Summary</h2>")
}

func TestRenderHTML_HonorsHiddenHeader(t *testing.T) {
	doc := preview.Derive(sample.Resume())
	doc.Personal.Selected = false

	html, err := RenderHTML(doc)
	require.NoError(t, err)

	assert.NotContains(t, html, "<h1>")
	assert.NotContains(t, html, "tchanow@gatech.edu")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	doc := &types.ResumeDocument{
		VersionName: "Draft",
		Experience: []types.ResumeEntry{
			{
				ID: "exp-1", SectionKey: types.SectionExperience, Selected: true,
				Title: "Intern <script>",
				Bullets: []types.ResumeBullet{
					{ID: "b1", Text: "used <b>bold</b> moves", Selected: true},
				},
			},
		},
	}

	html, err := RenderHTML(preview.Derive(doc))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "used &lt;b&gt;bold&lt;/b&gt; moves")
}

func TestRenderHTML_NormalizesLinks(t *testing.T) {
	doc := preview.Derive(sample.Resume())

	html, err := RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "https://tobechanow.com")
	assert.Contains(t, html, "https://linkedin.com/in/tobechanow")
}
