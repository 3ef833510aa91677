// Package sample provides the seed master resume and constructors for new
// resume building blocks with freshly minted ids.
package sample

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-workspace/internal/types"
)

// NewID mints a stable opaque id with a readable prefix. Ids are assigned at
// creation and never reused.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewBullet returns a fresh placeholder bullet, selected by default
func NewBullet() types.ResumeBullet {
	return types.ResumeBullet{
		ID:        NewID("bullet"),
		Text:      "Describe impact using action + scope + measurable result.",
		Selected:  true,
		RoleType:  types.RoleOther,
		SkillTags: []types.SkillTag{},
	}
}

// NewEntry returns a fresh placeholder entry for the given section
func NewEntry(sectionKey types.SectionKey) types.ResumeEntry {
	entry := types.ResumeEntry{
		ID:         NewID(string(sectionKey)),
		SectionKey: sectionKey,
		Selected:   true,
	}
	switch sectionKey {
	case types.SectionEducation:
		entry.Title = "B.S. in Business Administration"
		entry.Organization = "Georgia Institute of Technology"
		entry.Location = "Atlanta, GA"
		entry.StartDate = "2023-08"
		entry.EndDate = "2027-05"
		entry.Bullets = []types.ResumeBullet{}
	case types.SectionProjects:
		entry.Title = "Project Title"
		entry.Organization = "Organization / Class / Personal"
		entry.Location = "City, ST"
		entry.StartDate = "2025-01"
		entry.EndDate = "Present"
		entry.Bullets = []types.ResumeBullet{NewBullet()}
	case types.SectionLeadership:
		entry.Title = "Leadership Role"
		entry.Organization = "Organization Name"
		entry.Location = "City, ST"
		entry.StartDate = "2025-01"
		entry.EndDate = "Present"
		entry.Bullets = []types.ResumeBullet{NewBullet()}
	default:
		entry.Title = "Role Title"
		entry.Organization = "Organization Name"
		entry.Location = "City, ST"
		entry.StartDate = "2025-01"
		entry.EndDate = "Present"
		entry.Bullets = []types.ResumeBullet{NewBullet()}
	}
	return entry
}

// NewSkillItem returns a fresh skill item with the given label
func NewSkillItem(label string) types.SkillItem {
	if label == "" {
		label = "New Skill"
	}
	return types.SkillItem{
		ID:       NewID("skill-item"),
		Label:    label,
		Selected: true,
	}
}

// NewSkillGroup returns a fresh skill group seeded with one item
func NewSkillGroup(name string) types.SkillGroup {
	if name == "" {
		name = "New Group"
	}
	return types.SkillGroup{
		ID:        NewID("skill-group"),
		GroupName: name,
		Items:     []types.SkillItem{NewSkillItem("")},
	}
}

func bullet(id, text string, roleType types.RoleTypeTag, tags []types.SkillTag) types.ResumeBullet {
	return types.ResumeBullet{
		ID:        id,
		Text:      text,
		Selected:  true,
		RoleType:  roleType,
		SkillTags: tags,
	}
}

func entry(id string, sectionKey types.SectionKey, title, organization, location, startDate, endDate string, bullets []types.ResumeBullet) types.ResumeEntry {
	return types.ResumeEntry{
		ID:           id,
		SectionKey:   sectionKey,
		Title:        title,
		Organization: organization,
		Location:     location,
		StartDate:    startDate,
		EndDate:      endDate,
		Selected:     true,
		Bullets:      bullets,
	}
}

// Resume builds the seed master resume used when no persisted master exists
func Resume() *types.ResumeDocument {
	return &types.ResumeDocument{
		ID:          "resume-master-001",
		VersionName: "Master Resume",
		Personal: types.PersonalInfo{
			FullName: "Tobe Chanow",
			Email:    "tchanow@gatech.edu",
			Phone:    "(404) 555-0184",
			Location: "Atlanta, GA",
			Website:  "tobechanow.com",
			LinkedIn: "linkedin.com/in/tobechanow",
			Selected: true,
		},
		Summary: types.SummarySection{
			Selected: false,
			Text:     "Georgia Tech business student with experience in product strategy, operations, and student consulting. Strong in structured problem solving, stakeholder communication, and data-backed recommendations using SQL and Excel.",
		},
		Education: []types.ResumeEntry{
			entry("edu-1", types.SectionEducation,
				"B.S. in Business Administration (Strategy & Innovation / Finance)",
				"Georgia Institute of Technology, Scheller College of Business",
				"Atlanta, GA", "2023-08", "2027-05",
				[]types.ResumeBullet{
					bullet("edu-1-b1",
						"GPA: 3.8/4.0. Dean's List (3 semesters). Relevant coursework: Corporate Finance, Marketing Research, Operations, Data & Visual Analytics, Business Law.",
						types.RoleResearch,
						[]types.SkillTag{"Data Analysis", "Excel", "Communication"}),
					bullet("edu-1-b2",
						"Selected for CREATE-X startup practicum cohort to develop and pitch a student productivity concept with cross-functional teammates.",
						types.RoleLeadership,
						[]types.SkillTag{"Presentation", "Leadership", "Project Management"}),
				}),
		},
		Experience: []types.ResumeEntry{
			entry("exp-1", types.SectionExperience,
				"Business Operations Intern", "Peachtree Mobility",
				"Atlanta, GA", "2025-06", "2025-08",
				[]types.ResumeBullet{
					bullet("exp-1-b1",
						"Built weekly KPI tracker for sales, fulfillment, and support teams and used trend analysis to highlight bottlenecks, helping managers cut order-to-ship time by 14%.",
						types.RoleOperations,
						[]types.SkillTag{"Strategy", "Excel", "Presentation", "Data Analysis"}),
					bullet("exp-1-b2",
						"Queried CRM and support data in SQL to identify high-volume issue categories, informing process changes that reduced repeat tickets during peak weeks.",
						types.RoleOperations,
						[]types.SkillTag{"SQL", "Data Analysis", "Communication"}),
					bullet("exp-1-b3",
						"Partnered with product and operations leads to document requirements for a route scheduling automation pilot and coordinate rollout updates across teams.",
						types.RoleProduct,
						[]types.SkillTag{"Leadership", "Project Management", "Communication"}),
				}),
			entry("exp-2", types.SectionExperience,
				"Analyst, Student Consulting Practicum", "Georgia Tech Student Consulting",
				"Atlanta, GA", "2024-09", "2025-05",
				[]types.ResumeBullet{
					bullet("exp-2-b1",
						"Led a 5-student team delivering go-to-market recommendations for an Atlanta startup through customer interviews, competitor benchmarking, and pricing analysis.",
						types.RoleConsulting,
						[]types.SkillTag{"Strategy", "Leadership", "Communication"}),
					bullet("exp-2-b2",
						"Built Excel scenario models and presented trade-offs to the client leadership team, influencing phased market launch decisions.",
						types.RoleConsulting,
						[]types.SkillTag{"Excel", "Presentation", "Data Analysis"}),
				}),
		},
		Projects: []types.ResumeEntry{
			entry("proj-1", types.SectionProjects,
				"Campus Event Demand Forecasting Model", "Georgia Tech Coursework / Personal Extension",
				"Remote", "2025-10", "Present",
				[]types.ResumeBullet{
					bullet("proj-1-b1",
						"Built a forecasting model for student event attendance using historical sign-up and turnout data to improve staffing and supply planning for club events.",
						types.RoleResearch,
						[]types.SkillTag{"Excel", "Data Analysis", "Presentation"}),
					bullet("proj-1-b2",
						"Presented demand planning recommendations to student organization officers and created a reusable planning template for semester programming.",
						types.RoleLeadership,
						[]types.SkillTag{"Project Management", "Communication", "Presentation"}),
				}),
			entry("proj-2", types.SectionProjects,
				"Internship Application Tracker + Resume Tailoring Tool", "Personal Project",
				"Atlanta, GA", "2025-11", "Present",
				[]types.ResumeBullet{
					bullet("proj-2-b1",
						"Designed a structured resume database with taggable bullets to support tailored resume generation and application tracking workflows.",
						types.RoleProduct,
						[]types.SkillTag{"Project Management", "Strategy", "Communication"}),
					bullet("proj-2-b2",
						"Prototyped local-first workflow for generating and saving resume versions linked to job descriptions and application status tracking.",
						types.RoleProduct,
						[]types.SkillTag{"Data Analysis", "Excel", "Leadership"}),
				}),
		},
		Leadership: []types.ResumeEntry{
			entry("lead-1", types.SectionLeadership,
				"Vice President, Professional Development", "Georgia Tech Undergraduate Consulting Club",
				"Atlanta, GA", "2024-05", "Present",
				[]types.ResumeBullet{
					bullet("lead-1-b1",
						"Expanded active membership from 55 to 130 students by launching case prep workshops, alumni panels, and first-year onboarding sessions.",
						types.RoleLeadership,
						[]types.SkillTag{"Leadership", "Communication", "Presentation"}),
					bullet("lead-1-b2",
						"Managed a 10-person executive board and coordinated semester programming with campus partners, alumni mentors, and recruiting organizations.",
						types.RoleLeadership,
						[]types.SkillTag{"Leadership", "Project Management"}),
				}),
		},
		Skills: []types.SkillGroup{
			{
				ID:        "skills-1",
				GroupName: "Analytics & Tools",
				Items: []types.SkillItem{
					{ID: "skills-1-i1", Label: "SQL", Selected: true},
					{ID: "skills-1-i2", Label: "Python (basic)", Selected: true},
					{ID: "skills-1-i3", Label: "Excel / Sheets", Selected: true},
					{ID: "skills-1-i4", Label: "Tableau", Selected: true},
				},
			},
			{
				ID:        "skills-2",
				GroupName: "Business & Strategy",
				Items: []types.SkillItem{
					{ID: "skills-2-i1", Label: "Market Sizing", Selected: true},
					{ID: "skills-2-i2", Label: "Go-to-Market Strategy", Selected: true},
					{ID: "skills-2-i3", Label: "Operations Analysis", Selected: true},
					{ID: "skills-2-i4", Label: "Scenario Modeling", Selected: true},
				},
			},
			{
				ID:        "skills-3",
				GroupName: "Communication",
				Items: []types.SkillItem{
					{ID: "skills-3-i1", Label: "Executive Presentations", Selected: true},
					{ID: "skills-3-i2", Label: "Stakeholder Alignment", Selected: true},
					{ID: "skills-3-i3", Label: "Client Interviews", Selected: true},
				},
			},
		},
		UpdatedAt: nowISO(),
	}
}
