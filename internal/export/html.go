package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-workspace/internal/preview"
	"github.com/jonathan/resume-workspace/internal/types"
)

// RenderHTML renders a derived preview document as a standalone print-ready
// HTML page. Callers pass the output of preview.Derive; this function only
// lays content out and never re-filters it, except for honoring the personal
// and summary selected flags, which are rendering-layer decisions.
func RenderHTML(doc *types.ResumeDocument) (string, error) {
	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, newPageModel(doc)); err != nil {
		return "", fmt.Errorf("failed to render resume HTML: %w", err)
	}
	return sb.String(), nil
}

type pageModel struct {
	VersionName string
	ShowHeader  bool
	FullName    string
	ContactLine string
	LinkLine    string
	ShowSummary bool
	SummaryText string
	Sections    []sectionModel
	SkillGroups []types.SkillGroup
}

type sectionModel struct {
	Label   string
	Entries []entryModel
}

type entryModel struct {
	Title        string
	Organization string
	Location     string
	DateRange    string
	Bullets      []string
}

func newPageModel(doc *types.ResumeDocument) pageModel {
	model := pageModel{
		VersionName: doc.VersionName,
		ShowHeader:  doc.Personal.Selected,
		FullName:    doc.Personal.FullName,
		ShowSummary: doc.Summary.Selected && doc.Summary.Text != "",
		SummaryText: doc.Summary.Text,
		SkillGroups: doc.Skills,
	}

	contact := make([]string, 0, 3)
	for _, part := range []string{doc.Personal.Email, doc.Personal.Phone, doc.Personal.Location} {
		if part != "" {
			contact = append(contact, part)
		}
	}
	model.ContactLine = strings.Join(contact, " | ")

	links := make([]string, 0, 2)
	for _, part := range []string{doc.Personal.Website, doc.Personal.LinkedIn} {
		if part != "" {
			links = append(links, preview.NormalizeURL(part))
		}
	}
	model.LinkLine = strings.Join(links, " | ")

	for _, sectionKey := range types.EntrySectionKeys {
		entries := doc.EntriesFor(sectionKey)
		if len(entries) == 0 {
			continue
		}
		section := sectionModel{Label: types.SectionLabels[sectionKey]}
		for _, entry := range entries {
			row := entryModel{
				Title:        entry.Title,
				Organization: entry.Organization,
				Location:     entry.Location,
				DateRange:    preview.FormatDateRange(entry.StartDate, entry.EndDate),
			}
			for _, b := range entry.Bullets {
				row.Bullets = append(row.Bullets, b.Text)
			}
			section.Entries = append(section.Entries, row)
		}
		model.Sections = append(model.Sections, section)
	}

	return model
}

var pageTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.VersionName}}</title>
<style>
  @page { size: letter portrait; margin: 0.5in; }
  body { font-family: Georgia, "Times New Roman", serif; font-size: 10.5pt; color: #111; margin: 0; }
  h1 { font-size: 18pt; margin: 0 0 2pt; text-align: center; }
  .contact { text-align: center; font-size: 9.5pt; margin-bottom: 10pt; }
  h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #111; margin: 12pt 0 4pt; }
  .entry { margin-bottom: 6pt; }
  .entry-head { display: flex; justify-content: space-between; font-weight: bold; }
  .entry-sub { display: flex; justify-content: space-between; font-style: italic; font-size: 9.5pt; }
  ul { margin: 2pt 0 0 14pt; padding: 0; }
  li { margin-bottom: 1pt; }
  .skills p { margin: 1pt 0; }
</style>
</head>
<body>
{{if .ShowHeader}}
<h1>{{.FullName}}</h1>
<div class="contact">{{.ContactLine}}{{if .LinkLine}}<br>{{.LinkLine}}{{end}}</div>
{{end}}
{{if .ShowSummary}}
<h2>Summary</h2>
<p>{{.SummaryText}}</p>
{{end}}
{{range .Sections}}
<h2>{{.Label}}</h2>
{{range .Entries}}
<div class="entry">
  <div class="entry-head"><span>{{.Title}}</span><span>{{.DateRange}}</span></div>
  <div class="entry-sub"><span>{{.Organization}}</span><span>{{.Location}}</span></div>
  {{if .Bullets}}
  <ul>
    {{range .Bullets}}<li>{{.}}</li>
    {{end}}
  </ul>
  {{end}}
</div>
{{end}}
{{end}}
{{if .SkillGroups}}
<h2>Skills</h2>
<div class="skills">
{{range .SkillGroups}}
  <p><strong>{{.GroupName}}:</strong>{{range $i, $item := .Items}}{{if $i}},{{end}} {{$item.Label}}{{end}}</p>
{{end}}
</div>
{{end}}
</body>
</html>
`))
