// Package preview filters resume documents down to render-ready content and
// provides the display formatting helpers the print layer uses.
package preview

import (
	"strings"

	"github.com/jonathan/resume-workspace/internal/types"
)

// Derive filters a document down to only the content that should render or
// print. Entry-bearing sections keep only selected entries, and within them
// only selected bullets with non-empty trimmed text. Skill groups keep only
// selected items with non-empty labels, and groups with a blank name or no
// surviving items are dropped. Personal fields and the summary text are
// trimmed; whether those blocks render at all stays a consumer decision based
// on their selected flags. The input document is never mutated.
func Derive(doc *types.ResumeDocument) *types.ResumeDocument {
	out := doc.Clone()

	for _, sectionKey := range types.EntrySectionKeys {
		out.SetEntriesFor(sectionKey, filterEntries(out.EntriesFor(sectionKey)))
	}
	out.Skills = filterSkillGroups(out.Skills)

	out.Personal.FullName = strings.TrimSpace(out.Personal.FullName)
	out.Personal.Email = strings.TrimSpace(out.Personal.Email)
	out.Personal.Phone = strings.TrimSpace(out.Personal.Phone)
	out.Personal.Location = strings.TrimSpace(out.Personal.Location)
	out.Personal.Website = strings.TrimSpace(out.Personal.Website)
	out.Personal.LinkedIn = strings.TrimSpace(out.Personal.LinkedIn)
	out.Summary.Text = strings.TrimSpace(out.Summary.Text)

	return out
}

func filterEntries(entries []types.ResumeEntry) []types.ResumeEntry {
	kept := make([]types.ResumeEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Selected {
			continue
		}
		bullets := make([]types.ResumeBullet, 0, len(entry.Bullets))
		for _, b := range entry.Bullets {
			if b.Selected && strings.TrimSpace(b.Text) != "" {
				bullets = append(bullets, b)
			}
		}
		entry.Bullets = bullets
		kept = append(kept, entry)
	}
	return kept
}

func filterSkillGroups(groups []types.SkillGroup) []types.SkillGroup {
	kept := make([]types.SkillGroup, 0, len(groups))
	for _, group := range groups {
		if strings.TrimSpace(group.GroupName) == "" {
			continue
		}
		items := make([]types.SkillItem, 0, len(group.Items))
		for _, item := range group.Items {
			if item.Selected && strings.TrimSpace(item.Label) != "" {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		group.Items = items
		kept = append(kept, group)
	}
	return kept
}

// CountSelected returns the read-only selection count shown for a section:
// selected entries for entry sections, selected items for skills, and 0/1 for
// the personal and summary blocks.
func CountSelected(doc *types.ResumeDocument, sectionKey types.SectionKey) int {
	switch sectionKey {
	case types.SectionPersonal:
		if doc.Personal.Selected {
			return 1
		}
		return 0
	case types.SectionSummary:
		if doc.Summary.Selected && strings.TrimSpace(doc.Summary.Text) != "" {
			return 1
		}
		return 0
	case types.SectionSkills:
		count := 0
		for _, group := range doc.Skills {
			for _, item := range group.Items {
				if item.Selected {
					count++
				}
			}
		}
		return count
	case types.SectionEducation, types.SectionExperience, types.SectionProjects, types.SectionLeadership:
		count := 0
		for _, entry := range doc.EntriesFor(sectionKey) {
			if entry.Selected {
				count++
			}
		}
		return count
	default:
		return 0
	}
}
