package types

// Clone returns a deep copy of the document. The schema is closed and known,
// so the copy is written out field by field rather than round-tripping through
// a generic cloning primitive. Mutating the copy never affects the original.
func (d *ResumeDocument) Clone() *ResumeDocument {
	clone := &ResumeDocument{
		ID:          d.ID,
		VersionName: d.VersionName,
		Personal:    d.Personal,
		Summary:     d.Summary,
		Education:   cloneEntries(d.Education),
		Experience:  cloneEntries(d.Experience),
		Projects:    cloneEntries(d.Projects),
		Leadership:  cloneEntries(d.Leadership),
		Skills:      cloneSkillGroups(d.Skills),
		UpdatedAt:   d.UpdatedAt,
	}
	return clone
}

func cloneEntries(entries []ResumeEntry) []ResumeEntry {
	if entries == nil {
		return nil
	}
	out := make([]ResumeEntry, len(entries))
	for i, entry := range entries {
		out[i] = entry
		out[i].Bullets = cloneBullets(entry.Bullets)
	}
	return out
}

func cloneBullets(bullets []ResumeBullet) []ResumeBullet {
	if bullets == nil {
		return nil
	}
	out := make([]ResumeBullet, len(bullets))
	for i, bullet := range bullets {
		out[i] = bullet
		if bullet.SkillTags != nil {
			tags := make([]SkillTag, len(bullet.SkillTags))
			copy(tags, bullet.SkillTags)
			out[i].SkillTags = tags
		}
	}
	return out
}

func cloneSkillGroups(groups []SkillGroup) []SkillGroup {
	if groups == nil {
		return nil
	}
	out := make([]SkillGroup, len(groups))
	for i, group := range groups {
		out[i] = group
		if group.Items != nil {
			items := make([]SkillItem, len(group.Items))
			copy(items, group.Items)
			out[i].Items = items
		}
	}
	return out
}
