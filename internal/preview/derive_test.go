package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

func TestDerive_KeepsOnlySelectedEntriesAndBullets(t *testing.T) {
	doc := &types.ResumeDocument{
		Experience: []types.ResumeEntry{
			{
				ID: "exp-1", SectionKey: types.SectionExperience, Selected: true,
				Bullets: []types.ResumeBullet{
					{ID: "b1", Text: "kept", Selected: true},
					{ID: "b2", Text: "dropped", Selected: false},
				},
			},
			{
				ID: "exp-2", SectionKey: types.SectionExperience, Selected: false,
				Bullets: []types.ResumeBullet{{ID: "b3", Text: "gone", Selected: true}},
			},
		},
	}

	out := Derive(doc)

	require.Len(t, out.Experience, 1)
	assert.Equal(t, "exp-1", out.Experience[0].ID)
	require.Len(t, out.Experience[0].Bullets, 1)
	assert.Equal(t, "b1", out.Experience[0].Bullets[0].ID)
}

func TestDerive_FiltersEducationToo(t *testing.T) {
	doc := &types.ResumeDocument{
		Education: []types.ResumeEntry{
			{ID: "edu-1", SectionKey: types.SectionEducation, Selected: false},
			{ID: "edu-2", SectionKey: types.SectionEducation, Selected: true},
		},
	}

	out := Derive(doc)

	require.Len(t, out.Education, 1)
	assert.Equal(t, "edu-2", out.Education[0].ID)
}

func TestDerive_KeepsSelectedEntryWithNoSurvivingBullets(t *testing.T) {
	doc := &types.ResumeDocument{
		Projects: []types.ResumeEntry{
			{
				ID: "proj-1", SectionKey: types.SectionProjects, Selected: true,
				Bullets: []types.ResumeBullet{
					{ID: "b1", Text: "   ", Selected: true},
					{ID: "b2", Text: "real", Selected: false},
				},
			},
		},
	}

	out := Derive(doc)

	// the entry itself stays; only its bullets empty out
	require.Len(t, out.Projects, 1)
	assert.Empty(t, out.Projects[0].Bullets)
}

func TestDerive_SkillGroupRules(t *testing.T) {
	doc := &types.ResumeDocument{
		Skills: []types.SkillGroup{
			{ID: "g1", GroupName: "Tools", Items: []types.SkillItem{
				{ID: "i1", Label: "SQL", Selected: true},
				{ID: "i2", Label: "  ", Selected: true},
				{ID: "i3", Label: "Tableau", Selected: false},
			}},
			{ID: "g2", GroupName: "   ", Items: []types.SkillItem{
				{ID: "i4", Label: "Hidden", Selected: true},
			}},
			{ID: "g3", GroupName: "Empty", Items: []types.SkillItem{
				{ID: "i5", Label: "Off", Selected: false},
			}},
		},
	}

	out := Derive(doc)

	require.Len(t, out.Skills, 1)
	assert.Equal(t, "g1", out.Skills[0].ID)
	require.Len(t, out.Skills[0].Items, 1)
	assert.Equal(t, "SQL", out.Skills[0].Items[0].Label)
}

func TestDerive_TrimsPersonalAndSummary(t *testing.T) {
	doc := &types.ResumeDocument{
		Personal: types.PersonalInfo{FullName: "  Tobe Chanow  ", Email: " t@x.com ", Selected: false},
		Summary:  types.SummarySection{Text: "  summary text  ", Selected: false},
	}

	out := Derive(doc)

	assert.Equal(t, "Tobe Chanow", out.Personal.FullName)
	assert.Equal(t, "t@x.com", out.Personal.Email)
	assert.Equal(t, "summary text", out.Summary.Text)
	// visibility flags are left for the consumer
	assert.False(t, out.Personal.Selected)
	assert.False(t, out.Summary.Selected)
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	doc := sample.Resume()
	doc.Experience[0].Bullets[1].Selected = false
	snapshot := doc.Clone()

	Derive(doc)

	assert.Equal(t, snapshot, doc)
}

func TestCountSelected(t *testing.T) {
	doc := sample.Resume()

	assert.Equal(t, 1, CountSelected(doc, types.SectionPersonal))
	// summary has text but is not selected in the seed
	assert.Equal(t, 0, CountSelected(doc, types.SectionSummary))
	assert.Equal(t, 1, CountSelected(doc, types.SectionEducation))
	assert.Equal(t, 2, CountSelected(doc, types.SectionExperience))
	assert.Equal(t, 11, CountSelected(doc, types.SectionSkills))
}

func TestCountSelected_UnknownKey(t *testing.T) {
	assert.Equal(t, 0, CountSelected(sample.Resume(), types.SectionKey("bogus")))
}
