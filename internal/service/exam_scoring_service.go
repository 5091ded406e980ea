package service

import (
	"math"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
	"github.com/hireloop/examportal/internal/repository"
)

// PassThreshold is the minimum score (out of 100) for a Pass status.
const PassThreshold = 60.0

// Outcome is the computed result of one submission, prior to persistence.
type Outcome struct {
	TotalQuestions int
	CorrectAnswers int
	WrongAnswers   int
	Score          float64
	Status         string
}

// ScoringService evaluates submitted answers against the canonical answer
// key. It never persists anything; the exam service owns the single insert.
type ScoringService interface {
	Evaluate(answers []dto.SubmittedAnswerDTO) (*Outcome, error)
}

type scoringService struct {
	questionRepo repository.QuestionRepository
}

func NewScoringService(questionRepo repository.QuestionRepository) ScoringService {
	return &scoringService{questionRepo: questionRepo}
}

// Evaluate validates the submission, re-reads the live correct options in one
// batched lookup, and computes the outcome fully in memory.
//
// An answer referencing a question with no canonical entry (a deleted
// question) is skipped silently: it counts toward neither correct nor wrong,
// but still counts toward the total, which is always the number of submitted
// answers.
func (s *scoringService) Evaluate(answers []dto.SubmittedAnswerDTO) (*Outcome, error) {
	if len(answers) == 0 {
		return nil, apperr.Validationf("no answers submitted")
	}
	for _, a := range answers {
		if a.QuestionID == 0 {
			return nil, apperr.Validationf("answer is missing a question_id")
		}
		if !model.ValidOption(a.SelectedOption) {
			return nil, apperr.Validationf("selected_option %q is not one of A, B, C, D", a.SelectedOption)
		}
	}

	seen := make(map[uint]struct{}, len(answers))
	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		if _, ok := seen[a.QuestionID]; ok {
			continue
		}
		seen[a.QuestionID] = struct{}{}
		ids = append(ids, a.QuestionID)
	}

	answerKey, err := s.questionRepo.CorrectOptionsByIDs(ids)
	if err != nil {
		return nil, err
	}

	var correct, wrong int
	for _, a := range answers {
		correctOption, known := answerKey[a.QuestionID]
		if !known {
			continue
		}
		if a.SelectedOption == correctOption {
			correct++
		} else {
			wrong++
		}
	}

	total := len(answers)
	score := roundScore(float64(correct) / float64(total) * 100)

	status := model.StatusFail
	if score >= PassThreshold {
		status = model.StatusPass
	}

	return &Outcome{
		TotalQuestions: total,
		CorrectAnswers: correct,
		WrongAnswers:   wrong,
		Score:          score,
		Status:         status,
	}, nil
}

// roundScore rounds half-up to two decimal places.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
