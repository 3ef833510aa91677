package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-workspace/internal/types"
)

// Scoring contributions. Overlap is capped so a keyword-stuffed bullet cannot
// drown out tag and role-type signal.
const (
	overlapCap         = 8
	overlapPointsEach  = 4
	tagMatchPointsEach = 5
	roleTypePoints     = 6
	selectedTieBreak   = 1
)

// BulletMatch is a flattened bullet plus its computed score and the
// human-readable reasons behind it. Recomputed on every match request.
type BulletMatch struct {
	FlattenedBullet
	Score   int
	Reasons []string
}

// Score ranks every achievement bullet in the document against a job
// description. Output is sorted by descending score; ties go first to bullets
// that were already selected in the document, then to ascending bullet text,
// so identical inputs always produce identical ordered output.
//
// Role-type matching is a plain case-insensitive substring check against the
// job description, so a role type with a common-word name (notably "Other")
// can match spuriously. The behavior is kept as-is.
func Score(doc *types.ResumeDocument, jobDescription string) []BulletMatch {
	flattened := Flatten(doc)
	jd := strings.ToLower(jobDescription)
	jdTokens := Unique(Tokenize(jobDescription))
	jdTokenSet := make(map[string]bool, len(jdTokens))
	for _, token := range jdTokens {
		jdTokenSet[token] = true
	}

	matches := make([]BulletMatch, 0, len(flattened))
	for _, row := range flattened {
		matches = append(matches, scoreRow(row, jd, jdTokenSet))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].OriginallySelected != matches[j].OriginallySelected {
			return matches[i].OriginallySelected
		}
		return matches[i].BulletText < matches[j].BulletText
	})

	return matches
}

func scoreRow(row FlattenedBullet, jd string, jdTokenSet map[string]bool) BulletMatch {
	bulletTokens := Unique(Tokenize(row.BulletText + " " + row.EntryTitle + " " + row.Organization))

	overlap := 0
	for _, token := range bulletTokens {
		if jdTokenSet[token] {
			overlap++
		}
	}

	matchingTags := make([]string, 0)
	for _, tag := range row.SkillTags {
		if tagMatches(string(tag), jd, jdTokenSet) {
			matchingTags = append(matchingTags, string(tag))
		}
	}

	roleTypeMatched := row.RoleType != "" && strings.Contains(jd, strings.ToLower(string(row.RoleType)))

	score := 0
	reasons := make([]string, 0, 3)

	if overlap > 0 {
		score += min(overlapCap, overlap) * overlapPointsEach
		reasons = append(reasons, fmt.Sprintf("%d keyword overlap", overlap))
	}
	if len(matchingTags) > 0 {
		score += len(matchingTags) * tagMatchPointsEach
		reasons = append(reasons, "tag match: "+strings.Join(matchingTags, ", "))
	}
	if roleTypeMatched {
		score += roleTypePoints
		reasons = append(reasons, "role type: "+string(row.RoleType))
	}
	if row.OriginallySelected {
		score += selectedTieBreak
	}

	return BulletMatch{FlattenedBullet: row, Score: score, Reasons: reasons}
}

// tagMatches reports whether a skill tag hits the job description, either
// through any of its tokens or as a whole lower-cased substring.
func tagMatches(tag, jd string, jdTokenSet map[string]bool) bool {
	for _, token := range Tokenize(tag) {
		if jdTokenSet[token] {
			return true
		}
	}
	return strings.Contains(jd, strings.ToLower(tag))
}
