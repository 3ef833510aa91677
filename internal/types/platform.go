package types

// ApplicationStatus tracks where a job application sits in its pipeline
type ApplicationStatus string

// The fixed application status vocabulary
const (
	StatusWishlist  ApplicationStatus = "Wishlist"
	StatusApplied   ApplicationStatus = "Applied"
	StatusInterview ApplicationStatus = "Interview"
	StatusOffer     ApplicationStatus = "Offer"
	StatusRejected  ApplicationStatus = "Rejected"
)

// ApplicationStatuses lists every application status
var ApplicationStatuses = []ApplicationStatus{
	StatusWishlist,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// ResumeVersionRecord is a persisted snapshot of a tailored resume: the name it
// was saved under, the job description it was matched against, the bullet ids
// selected at save time, and the fully materialized document. Content is
// immutable once saved except for full overwrite by id.
type ResumeVersionRecord struct {
	ID                     string         `json:"id" validate:"required"`
	VersionName            string         `json:"versionName" validate:"required"`
	JobDescriptionSnapshot string         `json:"jobDescriptionSnapshot"`
	SelectedBulletIDs      []string       `json:"selectedBulletIds"`
	FinalResumeContent     ResumeDocument `json:"finalResumeContent"`
	Timestamp              string         `json:"timestamp" validate:"required"`
}

// ApplicationRecord is one row in the job application tracker
type ApplicationRecord struct {
	ID                     string            `json:"id" validate:"required"`
	Company                string            `json:"company" validate:"required"`
	Role                   string            `json:"role" validate:"required"`
	JobLink                string            `json:"jobLink"`
	DateApplied            string            `json:"dateApplied"`
	Status                 ApplicationStatus `json:"status" validate:"required,oneof=Wishlist Applied Interview Offer Rejected"`
	ResumeVersionID        string            `json:"resumeVersionId,omitempty"`
	Notes                  string            `json:"notes"`
	JobDescriptionSnapshot string            `json:"jobDescriptionSnapshot,omitempty"`
}

// CommentScope says what a reviewer comment is anchored to
type CommentScope string

// Comment anchor scopes
const (
	CommentScopeResume CommentScope = "resume"
	CommentScopeBullet CommentScope = "bullet"
)

// CommentAnchor pins a comment to a whole resume or to a single bullet.
// BulletID is set only when Scope is CommentScopeBullet.
type CommentAnchor struct {
	Scope    CommentScope `json:"scope" validate:"required,oneof=resume bullet"`
	BulletID string       `json:"bulletId,omitempty"`
}

// CommentRecord is a reviewer comment left on a student's resume
type CommentRecord struct {
	ID              string        `json:"id" validate:"required"`
	TargetStudentID string        `json:"targetStudentId" validate:"required"`
	ResumeVersionID string        `json:"resumeVersionId,omitempty"`
	Anchor          CommentAnchor `json:"anchor"`
	AuthorName      string        `json:"authorName" validate:"required"`
	Body            string        `json:"body" validate:"required"`
	CreatedAt       string        `json:"createdAt" validate:"required"`
	Reviewed        bool          `json:"reviewed"`
}
