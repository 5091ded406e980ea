package dto

// AcademicRecordRequest creates or replaces one academic history entry.
type AcademicRecordRequest struct {
	ExamName          string  `json:"exam_name" binding:"required,max=100"`
	BoardOrUniversity string  `json:"board_or_university" binding:"required,max=150"`
	PassingYear       int     `json:"passing_year" binding:"required,min=1901"`
	PercentageOrCGPA  float64 `json:"percentage_or_cgpa" binding:"required,min=0,max=100"`
}
