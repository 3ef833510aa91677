package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

func singleBulletDoc(b types.ResumeBullet) *types.ResumeDocument {
	return &types.ResumeDocument{
		Experience: []types.ResumeEntry{
			{
				ID:         "exp-1",
				SectionKey: types.SectionExperience,
				Title:      "Intern",
				Selected:   true,
				Bullets:    []types.ResumeBullet{b},
			},
		},
	}
}

func TestScore_KeywordTagAndRoleContributions(t *testing.T) {
	doc := singleBulletDoc(types.ResumeBullet{
		ID:        "b1",
		Text:      "Built weekly KPI tracker using SQL",
		Selected:  false,
		RoleType:  types.RoleOperations,
		SkillTags: []types.SkillTag{"SQL", "Excel"},
	})

	matches := Score(doc, "Looking for an analyst with SQL and Excel skills in Operations.")
	require.Len(t, matches, 1)

	match := matches[0]
	// sql overlaps (1*4), both tags hit (2*5), role type substring hits (6)
	assert.Equal(t, 1*overlapPointsEach+2*tagMatchPointsEach+roleTypePoints, match.Score)
	require.Len(t, match.Reasons, 3)
	assert.Equal(t, "1 keyword overlap", match.Reasons[0])
	assert.Equal(t, "tag match: SQL, Excel", match.Reasons[1])
	assert.Equal(t, "role type: Operations", match.Reasons[2])
}

func TestScore_OverlapCapped(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliett", "kilo", "lima"}
	doc := singleBulletDoc(types.ResumeBullet{
		ID:   "b1",
		Text: strings.Join(words, " "),
	})

	matches := Score(doc, strings.Join(words, " "))
	require.Len(t, matches, 1)

	// 12 overlapping tokens plus "intern" from the entry title miss; cap holds at 8
	assert.Equal(t, overlapCap*overlapPointsEach, matches[0].Score)
	assert.Equal(t, "12 keyword overlap", matches[0].Reasons[0])
}

func TestScore_TieBreakPrefersOriginallySelected(t *testing.T) {
	doc := &types.ResumeDocument{
		Experience: []types.ResumeEntry{
			{
				ID:         "exp-1",
				SectionKey: types.SectionExperience,
				Selected:   true,
				Bullets: []types.ResumeBullet{
					{ID: "b-unselected", Text: "Shared phrase zebra", Selected: false},
					{ID: "b-selected", Text: "Shared phrase zebra too", Selected: true},
				},
			},
		},
	}

	matches := Score(doc, "nothing in common here")
	require.Len(t, matches, 2)

	// zero overlap for both; the selected bullet's +1 puts it first
	assert.Equal(t, "b-selected", matches[0].BulletID)
	assert.Equal(t, 1, matches[0].Score)
	assert.Equal(t, 0, matches[1].Score)
}

func TestScore_TieBreakLexicographicOnBulletText(t *testing.T) {
	doc := &types.ResumeDocument{
		Projects: []types.ResumeEntry{
			{
				ID:         "proj-1",
				SectionKey: types.SectionProjects,
				Selected:   true,
				Bullets: []types.ResumeBullet{
					{ID: "b-2", Text: "bbb unrelated"},
					{ID: "b-1", Text: "aaa unrelated"},
				},
			},
		},
	}

	matches := Score(doc, "completely different vocabulary")
	require.Len(t, matches, 2)
	assert.Equal(t, "b-1", matches[0].BulletID)
	assert.Equal(t, "b-2", matches[1].BulletID)
}

func TestScore_Deterministic(t *testing.T) {
	doc := sample.Resume()
	jd := "Seeking an operations analyst with SQL, Excel, and stakeholder communication experience."

	first := Score(doc, jd)
	second := Score(doc, jd)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].BulletID, second[i].BulletID)
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, first[i].Reasons, second[i].Reasons)
	}
}

func TestScore_EmptyJobDescription(t *testing.T) {
	doc := sample.Resume()

	matches := Score(doc, "")
	require.NotEmpty(t, matches)
	for _, match := range matches {
		// only the originally-selected tie-break can contribute
		assert.LessOrEqual(t, match.Score, 1)
		assert.Empty(t, match.Reasons)
	}
}

func TestFlatten_SkipsEducation(t *testing.T) {
	doc := sample.Resume()

	rows := Flatten(doc)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.NotEqual(t, types.SectionEducation, row.SectionKey)
	}

	// experience rows come first, in stored order
	assert.Equal(t, types.SectionExperience, rows[0].SectionKey)
	assert.Equal(t, "exp-1-b1", rows[0].BulletID)
}

func TestFlatten_CapturesEntryContext(t *testing.T) {
	doc := singleBulletDoc(types.ResumeBullet{ID: "b1", Text: "did things", Selected: true})
	doc.Experience[0].Organization = "Acme"

	rows := Flatten(doc)
	require.Len(t, rows, 1)
	assert.Equal(t, "exp-1", rows[0].EntryID)
	assert.Equal(t, "Intern", rows[0].EntryTitle)
	assert.Equal(t, "Acme", rows[0].Organization)
	assert.True(t, rows[0].OriginallySelected)
}

func TestFlatten_OriginallySelectedNeedsEntrySelected(t *testing.T) {
	doc := singleBulletDoc(types.ResumeBullet{ID: "b1", Text: "did things", Selected: true})
	doc.Experience[0].Selected = false

	rows := Flatten(doc)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].OriginallySelected)
}
