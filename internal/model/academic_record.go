package model

import "time"

// AcademicRecord is one entry of a candidate's academic history. A candidate
// may list each exam name only once.
type AcademicRecord struct {
	ID                uint      `gorm:"primarykey" json:"history_id"`
	CandidateID       uint      `json:"candidate_id" gorm:"not null;uniqueIndex:uk_candidate_exam"`
	ExamName          string    `json:"exam_name" gorm:"size:100;not null;uniqueIndex:uk_candidate_exam"`
	BoardOrUniversity string    `json:"board_or_university" gorm:"size:150;not null"`
	PassingYear       int       `json:"passing_year" gorm:"not null"`
	PercentageOrCGPA  float64   `json:"percentage_or_cgpa" gorm:"type:numeric(5,2);not null"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
