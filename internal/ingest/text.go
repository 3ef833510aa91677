// Package ingest loads pasted or saved job descriptions, reducing HTML
// postings to plain text before they reach the matcher.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var spaceRuns = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes whitespace in free text: CRLF to LF, runs of spaces
// collapsed, lines trimmed, and at most one blank line between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// FromHTML reduces a saved job posting page to plain text: script, style, and
// chrome elements are dropped, block elements become line breaks, and the
// result is whitespace-normalized.
func FromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	root.Find("h1, h2, h3, h4, h5, h6, p, li, td, div, span").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; containers repeat their children's text.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text = root.Text()
	}
	return CleanText(text), nil
}

// LoadJobDescription reads a job description from disk. Files ending in
// .html or .htm are reduced to text first; anything else is treated as plain
// text.
func LoadJobDescription(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FromHTML(string(raw))
	default:
		return CleanText(string(raw)), nil
	}
}
