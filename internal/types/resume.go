// Package types provides type definitions for structured data used throughout the resume-workspace system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKey identifies one of the resume's top-level sections
type SectionKey string

// The fixed section vocabulary, in display order
const (
	SectionPersonal   SectionKey = "personal"
	SectionSummary    SectionKey = "summary"
	SectionEducation  SectionKey = "education"
	SectionExperience SectionKey = "experience"
	SectionProjects   SectionKey = "projects"
	SectionLeadership SectionKey = "leadership"
	SectionSkills     SectionKey = "skills"
)

// SectionKeys lists every section key in display order
var SectionKeys = []SectionKey{
	SectionPersonal,
	SectionSummary,
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionLeadership,
	SectionSkills,
}

// EntrySectionKeys lists the sections that hold entries, in display order
var EntrySectionKeys = []SectionKey{
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionLeadership,
}

// AchievementSectionKeys lists the sections whose bullets are scored against
// job descriptions. Education is deliberately absent.
var AchievementSectionKeys = []SectionKey{
	SectionExperience,
	SectionProjects,
	SectionLeadership,
}

// SectionLabels maps section keys to their display names
var SectionLabels = map[SectionKey]string{
	SectionPersonal:   "Personal Info",
	SectionSummary:    "Summary",
	SectionEducation:  "Education",
	SectionExperience: "Experience",
	SectionProjects:   "Projects",
	SectionLeadership: "Leadership",
	SectionSkills:     "Skills",
}

// IsEntrySectionKey reports whether key names an entry-bearing section
func IsEntrySectionKey(key SectionKey) bool {
	for _, candidate := range EntrySectionKeys {
		if candidate == key {
			return true
		}
	}
	return false
}

// RoleTypeTag classifies the kind of work a bullet describes.
// Every bullet carries exactly one.
type RoleTypeTag string

// The fixed role-type vocabulary
const (
	RoleConsulting  RoleTypeTag = "Consulting"
	RoleProduct     RoleTypeTag = "Product"
	RoleEngineering RoleTypeTag = "Engineering"
	RoleLeadership  RoleTypeTag = "Leadership"
	RoleResearch    RoleTypeTag = "Research"
	RoleOperations  RoleTypeTag = "Operations"
	RoleOther       RoleTypeTag = "Other"
)

// RoleTypeTags lists every role-type tag
var RoleTypeTags = []RoleTypeTag{
	RoleConsulting,
	RoleProduct,
	RoleEngineering,
	RoleLeadership,
	RoleResearch,
	RoleOperations,
	RoleOther,
}

// SkillTag is one value from the closed skill vocabulary a bullet can carry
type SkillTag string

// SkillTags lists the closed skill vocabulary
var SkillTags = []SkillTag{
	"Strategy",
	"SQL",
	"Leadership",
	"Data Analysis",
	"Communication",
	"Project Management",
	"Python",
	"Excel",
	"Presentation",
}

// ResumeBullet is a single achievement statement under an entry, the atomic
// unit of relevance scoring and selection
type ResumeBullet struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Selected  bool        `json:"selected"`
	RoleType  RoleTypeTag `json:"roleType"`
	SkillTags []SkillTag  `json:"skillTags"`
}

// ResumeEntry is a grouped block (job, project, leadership role, education
// item) containing bullets. An entry belongs to exactly one section for its
// whole lifetime.
type ResumeEntry struct {
	ID           string         `json:"id"`
	SectionKey   SectionKey     `json:"sectionKey"`
	Title        string         `json:"title"`
	Organization string         `json:"organization"`
	Location     string         `json:"location"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Selected     bool           `json:"selected"`
	Bullets      []ResumeBullet `json:"bullets"`
}

// SkillItem is one labeled skill inside a skill group
type SkillItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// SkillGroup is a named group owning an ordered list of skill items
type SkillGroup struct {
	ID        string      `json:"id"`
	GroupName string      `json:"groupName"`
	Items     []SkillItem `json:"items"`
}

// PersonalInfo is the contact block at the top of a resume
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	Selected bool   `json:"selected"`
}

// SummarySection is the optional free-text summary block
type SummarySection struct {
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

// ResumeDocument is a master or tailored resume. Entry slices preserve
// insertion order; that order is the display and print order and is never
// rearranged by derivation.
type ResumeDocument struct {
	ID          string         `json:"id"`
	VersionName string         `json:"versionName"`
	Personal    PersonalInfo   `json:"personal"`
	Summary     SummarySection `json:"summary"`
	Education   []ResumeEntry  `json:"education"`
	Experience  []ResumeEntry  `json:"experience"`
	Projects    []ResumeEntry  `json:"projects"`
	Leadership  []ResumeEntry  `json:"leadership"`
	Skills      []SkillGroup   `json:"skills"`
	UpdatedAt   string         `json:"updatedAt"`
}

// EntriesFor returns the entry slice for an entry-bearing section key.
// Handing it a non-entry section key is a programmer error.
func (d *ResumeDocument) EntriesFor(key SectionKey) []ResumeEntry {
	switch key {
	case SectionEducation:
		return d.Education
	case SectionExperience:
		return d.Experience
	case SectionProjects:
		return d.Projects
	case SectionLeadership:
		return d.Leadership
	default:
		panic("types: not an entry section key: " + string(key))
	}
}

// SetEntriesFor replaces the entry slice for an entry-bearing section key
func (d *ResumeDocument) SetEntriesFor(key SectionKey, entries []ResumeEntry) {
	switch key {
	case SectionEducation:
		d.Education = entries
	case SectionExperience:
		d.Experience = entries
	case SectionProjects:
		d.Projects = entries
	case SectionLeadership:
		d.Leadership = entries
	default:
		panic("types: not an entry section key: " + string(key))
	}
}
