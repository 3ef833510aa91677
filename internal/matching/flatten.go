package matching

import "github.com/jonathan/resume-workspace/internal/types"

// FlattenedBullet is a read-only projection joining a bullet to its parent
// entry's identity. It exists only transiently during scoring and is never
// persisted.
type FlattenedBullet struct {
	SectionKey   types.SectionKey
	EntryID      string
	EntryTitle   string
	Organization string
	BulletID     string
	BulletText   string
	RoleType     types.RoleTypeTag
	SkillTags    []types.SkillTag
	// OriginallySelected captures bullet.Selected && entry.Selected at flatten
	// time, used as a tie-break signal later.
	OriginallySelected bool
}

// Flatten projects a resume document into a flat list of scorable bullet rows.
// Only the achievement sections (experience, projects, leadership, in that
// fixed order) are walked, so education bullets are never matched against a
// job description. Entries and bullets keep their stored order.
func Flatten(doc *types.ResumeDocument) []FlattenedBullet {
	rows := make([]FlattenedBullet, 0)
	for _, sectionKey := range types.AchievementSectionKeys {
		for _, entry := range doc.EntriesFor(sectionKey) {
			for _, b := range entry.Bullets {
				rows = append(rows, FlattenedBullet{
					SectionKey:         sectionKey,
					EntryID:            entry.ID,
					EntryTitle:         entry.Title,
					Organization:       entry.Organization,
					BulletID:           b.ID,
					BulletText:         b.Text,
					RoleType:           b.RoleType,
					SkillTags:          b.SkillTags,
					OriginallySelected: b.Selected && entry.Selected,
				})
			}
		}
	}
	return rows
}
