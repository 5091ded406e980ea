package model

import "time"

// Domain is a subject area candidates are assigned to; it scopes which
// questions are eligible for their exam.
type Domain struct {
	ID          uint      `gorm:"primarykey" json:"domain_id"`
	Name        string    `json:"domain_name" gorm:"not null;uniqueIndex"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
