package models

import "time"

// Interview is one scheduled interview slot for a candidate.
type Interview struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CandidateID uint      `gorm:"index;not null"`
	Candidate   Candidate `gorm:"foreignKey:CandidateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ScheduledAt time.Time `gorm:"index;not null"`
	Interviewer string    `gorm:"size:255"`
	Location    string    `gorm:"size:255"`
	Notes       string    `gorm:"size:1024"`
	CreatedBy   uint      `gorm:"index"`
}
