package preview

import (
	"regexp"
	"strings"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var (
	yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	presentPattern   = regexp.MustCompile(`(?i)present`)
	schemePattern    = regexp.MustCompile(`(?i)^https?://`)
)

// FormatMonthYear renders a YYYY-MM date string as "Jan 2006". The literal
// "Present" (any case) is normalized; anything else passes through unchanged.
func FormatMonthYear(value string) string {
	if value == "" {
		return ""
	}
	if presentPattern.MatchString(value) {
		return "Present"
	}
	match := yearMonthPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return value
	}
	monthIndex := int(match[2][0]-'0')*10 + int(match[2][1]-'0') - 1
	if monthIndex < 0 || monthIndex > 11 {
		return value
	}
	return monthNames[monthIndex] + " " + match[1]
}

// FormatDateRange renders an entry's date range for display
func FormatDateRange(start, end string) string {
	left := FormatMonthYear(start)
	right := FormatMonthYear(end)
	if left == "" && right == "" {
		return ""
	}
	if left != "" && right != "" {
		return left + " - " + right
	}
	if left != "" {
		return left
	}
	return right
}

// NormalizeURL prefixes bare host values with https:// so links render
func NormalizeURL(value string) string {
	if value == "" {
		return ""
	}
	if schemePattern.MatchString(value) {
		return value
	}
	return "https://" + value
}

// AllowedZoomLevels are the zoom percentages the preview supports
var AllowedZoomLevels = []int{75, 90, 100, 110, 125}

// DefaultZoom is the fallback zoom percentage
const DefaultZoom = 100

// ClampZoom snaps an arbitrary zoom percentage onto the allowed levels,
// falling back to DefaultZoom for anything off the list.
func ClampZoom(zoomPercent int) int {
	for _, allowed := range AllowedZoomLevels {
		if zoomPercent == allowed {
			return zoomPercent
		}
	}
	return DefaultZoom
}
