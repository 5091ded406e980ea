package dto

import "time"

// ExamQuestionDTO is a question as delivered to a candidate: the correct
// option is deliberately absent.
type ExamQuestionDTO struct {
	QuestionID      uint   `json:"question_id"`
	QuestionText    string `json:"question_text"`
	OptionA         string `json:"option_a"`
	OptionB         string `json:"option_b"`
	OptionC         string `json:"option_c"`
	OptionD         string `json:"option_d"`
	DifficultyLevel string `json:"difficulty_level"`
}

type ExamMetaDTO struct {
	TotalQuestions  int  `json:"total_questions"`
	DurationMinutes int  `json:"duration_minutes"`
	DomainID        uint `json:"domain_id"`
	TotalPages      int  `json:"total_pages"`
}

// GeneratedExamDTO is the full generation response: the flat shuffled paper
// plus the same sequence partitioned into fixed-size pages keyed "page_1"...
// The paper is ephemeral; nothing here is persisted.
type GeneratedExamDTO struct {
	Message            string                       `json:"message"`
	ExamMeta           ExamMetaDTO                  `json:"exam_meta"`
	QuestionsFlat      []ExamQuestionDTO            `json:"questions_flat"`
	QuestionsPaginated map[string][]ExamQuestionDTO `json:"questions_paginated"`
}

// SubmittedAnswerDTO is one (question, selected option) pair.
type SubmittedAnswerDTO struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option" binding:"required,oneof=A B C D"`
}

type ExamSubmitRequest struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

type ExamResultDTO struct {
	ResultID       uint      `json:"result_id"`
	ExamDate       time.Time `json:"exam_date"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	WrongAnswers   int       `json:"wrong_answers"`
	Score          float64   `json:"score"`
	Status         string    `json:"status"`
}

type ExamSubmitResponse struct {
	Message string        `json:"message"`
	Result  ExamResultDTO `json:"result"`
}

// ExamResultStatusDTO distinguishes "not taken yet" from an actual result
// without treating the former as an error.
type ExamResultStatusDTO struct {
	Taken bool           `json:"taken"`
	Data  *ExamResultDTO `json:"data,omitempty"`
}
