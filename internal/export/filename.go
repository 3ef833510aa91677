// Package export renders a derived resume preview to HTML and prints it to
// PDF through a headless browser.
package export

import (
	"regexp"
	"strings"
)

var nonFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeFileName reduces a version name to a safe lowercase file stem
func SanitizeFileName(input string) string {
	cleaned := nonFileChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(input)), "-")
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		return "resume"
	}
	return cleaned
}

// PDFFileName builds the output file name for an exported resume. A .pdf
// suffix already on the name is stripped before sanitizing so it is not
// mangled into the stem.
func PDFFileName(name string) string {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".pdf")
	return SanitizeFileName(name) + ".pdf"
}
