package model

import "time"

// Result statuses.
const (
	StatusPass = "Pass"
	StatusFail = "Fail"
)

// ExamResult is the single attempt record per candidate. The unique index on
// CandidateID is the authoritative enforcement of the at-most-one-attempt
// invariant; the proactive existence check in the service layer is only a
// fast path. Rows are never updated or deleted.
type ExamResult struct {
	ID             uint      `gorm:"primarykey" json:"result_id"`
	CandidateID    uint      `json:"candidate_id" gorm:"not null;uniqueIndex"`
	DomainID       *uint     `json:"domain_id,omitempty"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CorrectAnswers int       `json:"correct_answers" gorm:"not null"`
	WrongAnswers   int       `json:"wrong_answers" gorm:"not null"`
	Score          float64   `json:"score" gorm:"type:numeric(5,2);not null"`
	Status         string    `json:"status" gorm:"type:varchar(10);not null"`
	ExamDate       time.Time `json:"exam_date" gorm:"autoCreateTime"`
}
