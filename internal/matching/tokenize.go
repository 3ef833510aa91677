// Package matching scores structured resume bullets against free-text job
// descriptions using keyword, tag, and role-type overlap.
package matching

import "strings"

// stopwords are English filler and domain-generic words that carry no signal
// when matching a bullet against a job description.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "you": true, "your": true, "our": true, "are": true,
	"was": true, "were": true, "will": true, "have": true, "has": true,
	"had": true, "from": true, "into": true, "about": true, "over": true,
	"across": true, "through": true, "using": true, "used": true, "use": true,
	"role": true, "team": true, "teams": true, "work": true, "working": true,
	"experience": true, "preferred": true, "requirements": true,
	"responsibilities": true, "candidate": true, "ability": true, "skills": true,
}

func isTokenChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#' || r == '.'
}

// Tokenize normalizes free text into comparable tokens: lower-cased, split on
// runs of characters outside [a-z0-9+#.], with tokens shorter than two
// characters and stop-words dropped. Tech terms like "c++", "c#", and
// "node.js" survive intact. The result is a sequence, not a set; callers that
// need uniqueness dedupe with Unique. Empty input yields an empty sequence.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isTokenChar(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.TrimSpace(field)
		if len(token) < 2 || stopwords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Unique deduplicates tokens preserving first-occurrence order
func Unique(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}
	return out
}
