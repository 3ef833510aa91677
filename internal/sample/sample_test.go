package sample

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/types"
)

func TestNewID_PrefixAndUniqueness(t *testing.T) {
	first := NewID("bullet")
	second := NewID("bullet")

	assert.True(t, strings.HasPrefix(first, "bullet-"))
	assert.NotEqual(t, first, second)
}

func TestNewEntry_SectionShapes(t *testing.T) {
	edu := NewEntry(types.SectionEducation)
	assert.Equal(t, types.SectionEducation, edu.SectionKey)
	assert.Empty(t, edu.Bullets)
	assert.True(t, edu.Selected)

	exp := NewEntry(types.SectionExperience)
	require.Len(t, exp.Bullets, 1)
	assert.True(t, exp.Bullets[0].Selected)
}

func TestNewSkillItem_DefaultLabel(t *testing.T) {
	assert.Equal(t, "New Skill", NewSkillItem("").Label)
	assert.Equal(t, "SQL", NewSkillItem("SQL").Label)
}

func TestResume_Shape(t *testing.T) {
	doc := Resume()

	assert.Equal(t, "resume-master-001", doc.ID)
	assert.Equal(t, "Master Resume", doc.VersionName)
	assert.Len(t, doc.Education, 1)
	assert.Len(t, doc.Experience, 2)
	assert.Len(t, doc.Projects, 2)
	assert.Len(t, doc.Leadership, 1)
	assert.Len(t, doc.Skills, 3)
	assert.NotEmpty(t, doc.UpdatedAt)

	for _, key := range types.EntrySectionKeys {
		for _, entry := range doc.EntriesFor(key) {
			assert.Equal(t, key, entry.SectionKey)
			assert.True(t, entry.Selected)
			for _, b := range entry.Bullets {
				assert.NotEmpty(t, b.ID)
				assert.NotEmpty(t, b.Text)
				assert.True(t, b.Selected)
			}
		}
	}
}

func TestNormalizeResumeDocument_NilGetsSeed(t *testing.T) {
	doc := NormalizeResumeDocument(nil)

	assert.Equal(t, "resume-master-001", doc.ID)
	assert.Len(t, doc.Experience, 2)
}

func TestNormalizeResumeDocument_FillsGaps(t *testing.T) {
	doc := NormalizeResumeDocument(&types.ResumeDocument{
		Experience: []types.ResumeEntry{{ID: "exp-x"}},
	})

	assert.Equal(t, "resume-master-001", doc.ID)
	assert.Equal(t, "Master Resume", doc.VersionName)
	// missing sections come from the seed, present ones stay
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "exp-x", doc.Experience[0].ID)
	assert.NotEmpty(t, doc.Education)

	// entry-level repair
	assert.Equal(t, types.SectionExperience, doc.Experience[0].SectionKey)
	assert.NotNil(t, doc.Experience[0].Bullets)
}

func TestNormalizeResumeDocument_DoesNotMutateInput(t *testing.T) {
	input := &types.ResumeDocument{Experience: []types.ResumeEntry{{ID: "exp-x"}}}

	NormalizeResumeDocument(input)

	assert.Empty(t, input.ID)
	assert.Equal(t, types.SectionKey(""), input.Experience[0].SectionKey)
}

func TestNormalizeResumeDocument_FullDocPassesThrough(t *testing.T) {
	doc := Resume()

	normalized := NormalizeResumeDocument(doc)

	assert.Equal(t, doc, normalized)
}
