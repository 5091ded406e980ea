package dto

import (
	"time"

	"github.com/hireloop/examportal/internal/model"
)

// CreateQuestionRequest is the admin payload for a new multiple-choice question.
type CreateQuestionRequest struct {
	DomainID        uint   `json:"domain_id" binding:"required"`
	QuestionText    string `json:"question_text" binding:"required,min=5"`
	OptionA         string `json:"option_a" binding:"required,max=255"`
	OptionB         string `json:"option_b" binding:"required,max=255"`
	OptionC         string `json:"option_c" binding:"required,max=255"`
	OptionD         string `json:"option_d" binding:"required,max=255"`
	CorrectOption   string `json:"correct_option" binding:"required,oneof=A B C D"`
	DifficultyLevel string `json:"difficulty_level" binding:"required,oneof=Easy Medium Hard Expert"`
}

// QuestionListResponse is a paginated admin view of the question bank.
type QuestionListResponse struct {
	Data  []QuestionAdminDTO `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// QuestionAdminDTO includes the correct option; it is admin-only.
type QuestionAdminDTO struct {
	ID              uint      `json:"question_id"`
	DomainID        uint      `json:"domain_id"`
	DomainName      string    `json:"domain_name,omitempty"`
	QuestionText    string    `json:"question_text"`
	OptionA         string    `json:"option_a"`
	OptionB         string    `json:"option_b"`
	OptionC         string    `json:"option_c"`
	OptionD         string    `json:"option_d"`
	CorrectOption   string    `json:"correct_option"`
	DifficultyLevel string    `json:"difficulty_level"`
	CreatedAt       time.Time `json:"created_at"`
}

// ResultSearchFilter collects the admin result-listing filters. DateFilter is
// one of today, last_week, last_month, last_year or custom (with StartDate and
// EndDate set).
type ResultSearchFilter struct {
	DomainName    string
	CandidateName string
	DateFilter    string
	StartDate     *time.Time
	EndDate       *time.Time
}

// ResultRowDTO is one row of the admin result listing, joined with the
// candidate and domain.
type ResultRowDTO struct {
	ResultID       uint      `json:"result_id"`
	CandidateID    uint      `json:"candidate_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email,omitempty"`
	DomainName     string    `json:"domain_name,omitempty"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	WrongAnswers   int       `json:"wrong_answers"`
	Score          float64   `json:"score"`
	Status         string    `json:"status"`
	ExamDate       time.Time `json:"exam_date"`
}

// CandidateListResponse is a paginated admin view of registered candidates.
type CandidateListResponse struct {
	Data  []CandidateProfile `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// CandidateDetailDTO is the full admin drill-down for one candidate.
type CandidateDetailDTO struct {
	Profile         CandidateProfile       `json:"profile"`
	AcademicHistory []model.AcademicRecord `json:"academic_history"`
	Result          *ExamResultDTO         `json:"result,omitempty"`
}
