package models

import "time"

// Candidate review workflow statuses. Ingestion only ever creates
// candidates as StatusPending; later transitions happen via the status
// endpoint or interview scheduling.
const (
	StatusPending            = "pending"
	StatusReviewed           = "reviewed"
	StatusInterviewScheduled = "interview-scheduled"
	StatusHired              = "hired"
	StatusRejected           = "rejected"
)

// ValidStatuses guards the status update endpoint.
var ValidStatuses = map[string]bool{
	StatusPending:            true,
	StatusReviewed:           true,
	StatusInterviewScheduled: true,
	StatusHired:              true,
	StatusRejected:           true,
}

// Candidate is one tracked applicant. Uniqueness per email is enforced by
// the pre-insert lookup in the ingestion pipeline, not by a DB constraint,
// so Email carries a plain index only.
type Candidate struct {
	ID                 uint `gorm:"primaryKey"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time `gorm:"index"`
	Name               string     `gorm:"size:255;not null"`
	Email              string     `gorm:"size:255;index"`
	Phone              string     `gorm:"size:64"`
	ExperienceYears    float64
	PreviousExperience string `gorm:"size:512"`
	Age                int
	PhotoPath          string `gorm:"size:512"` // public relative path (e.g. public/candidates/xxx.png)
	Status             string `gorm:"size:32;default:pending;index"`
	CreatedBy          uint   `gorm:"index"` // users.id of the staff member who added the record
	Interviews         []Interview `gorm:"foreignKey:CandidateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
