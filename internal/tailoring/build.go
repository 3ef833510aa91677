// Package tailoring derives tailored resume documents from a master document
// and a bullet selection set.
package tailoring

import (
	"strings"
	"time"

	"github.com/jonathan/resume-workspace/internal/types"
)

// DefaultVersionName is used when a tailored document is built with an empty
// or whitespace-only name.
const DefaultVersionName = "Tailored Resume Draft"

// Build produces a tailored document from the master and a selection set.
// The master is deep-copied and never mutated. In each achievement section,
// every bullet's selected flag becomes membership in selectedBulletIDs, and
// every entry's selected flag becomes "has at least one selected bullet".
// Entries are never force-included when none of their bullets were picked.
// Education and skills pass through untouched. Ids are preserved from the
// master; no new ids are minted here.
func Build(master *types.ResumeDocument, selectedBulletIDs map[string]bool, versionName string) *types.ResumeDocument {
	doc := master.Clone()

	for _, sectionKey := range types.AchievementSectionKeys {
		entries := doc.EntriesFor(sectionKey)
		for i := range entries {
			anySelected := false
			for j := range entries[i].Bullets {
				selected := selectedBulletIDs[entries[i].Bullets[j].ID]
				entries[i].Bullets[j].Selected = selected
				if selected {
					anySelected = true
				}
			}
			entries[i].Selected = anySelected
		}
	}

	doc.VersionName = strings.TrimSpace(versionName)
	if doc.VersionName == "" {
		doc.VersionName = DefaultVersionName
	}
	doc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	return doc
}
