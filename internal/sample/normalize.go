package sample

import "github.com/jonathan/resume-workspace/internal/types"

// NormalizeResumeDocument repairs a document loaded from storage so downstream
// code can assume a fully shaped ResumeDocument: nil section slices are filled
// from the seed resume, and blank identity fields fall back to seed values.
// Documents that are already fully shaped pass through with only nil-slice
// replacement.
func NormalizeResumeDocument(doc *types.ResumeDocument) *types.ResumeDocument {
	seed := Resume()
	if doc == nil {
		return seed
	}

	normalized := doc.Clone()
	if normalized.ID == "" {
		normalized.ID = seed.ID
	}
	if normalized.VersionName == "" {
		normalized.VersionName = seed.VersionName
	}
	if normalized.Education == nil {
		normalized.Education = seed.Education
	}
	if normalized.Experience == nil {
		normalized.Experience = seed.Experience
	}
	if normalized.Projects == nil {
		normalized.Projects = seed.Projects
	}
	if normalized.Leadership == nil {
		normalized.Leadership = seed.Leadership
	}
	if normalized.Skills == nil {
		normalized.Skills = seed.Skills
	}
	if normalized.UpdatedAt == "" {
		normalized.UpdatedAt = seed.UpdatedAt
	}
	for _, key := range types.EntrySectionKeys {
		entries := normalized.EntriesFor(key)
		for i := range entries {
			if entries[i].SectionKey == "" {
				entries[i].SectionKey = key
			}
			if entries[i].Bullets == nil {
				entries[i].Bullets = []types.ResumeBullet{}
			}
		}
	}
	return normalized
}
