package service

import (
	"testing"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
)

// answerKeyRepo builds a fake question repo whose canonical answer for every
// listed question id is "A".
func answerKeyRepo(ids ...uint) *fakeQuestionRepo {
	key := make(map[uint]string, len(ids))
	for _, id := range ids {
		key[id] = model.OptionA
	}
	return &fakeQuestionRepo{key: key}
}

// nAnswers builds answers for questions 1..n; the first `correct` of them
// select "A" and the rest select "B".
func nAnswers(n, correct int) []dto.SubmittedAnswerDTO {
	answers := make([]dto.SubmittedAnswerDTO, n)
	for i := range answers {
		selected := model.OptionB
		if i < correct {
			selected = model.OptionA
		}
		answers[i] = dto.SubmittedAnswerDTO{QuestionID: uint(i + 1), SelectedOption: selected}
	}
	return answers
}

func keyIDs(n int) []uint {
	out := make([]uint, n)
	for i := range out {
		out[i] = uint(i + 1)
	}
	return out
}

func TestEvaluateScoring(t *testing.T) {
	tests := []struct {
		name        string
		answers     []dto.SubmittedAnswerDTO
		known       []uint
		wantCorrect int
		wantWrong   int
		wantScore   float64
		wantStatus  string
	}{
		{
			name:        "thirteen of twenty passes",
			answers:     nAnswers(20, 13),
			known:       keyIDs(20),
			wantCorrect: 13,
			wantWrong:   7,
			wantScore:   65.00,
			wantStatus:  model.StatusPass,
		},
		{
			name:        "eleven of twenty fails",
			answers:     nAnswers(20, 11),
			known:       keyIDs(20),
			wantCorrect: 11,
			wantWrong:   9,
			wantScore:   55.00,
			wantStatus:  model.StatusFail,
		},
		{
			name:        "exactly sixty passes",
			answers:     nAnswers(5, 3),
			known:       keyIDs(5),
			wantCorrect: 3,
			wantWrong:   2,
			wantScore:   60.00,
			wantStatus:  model.StatusPass,
		},
		{
			name:        "repeating decimal rounds to two places",
			answers:     nAnswers(3, 1),
			known:       keyIDs(3),
			wantCorrect: 1,
			wantWrong:   2,
			wantScore:   33.33,
			wantStatus:  model.StatusFail,
		},
		{
			name:        "two thirds rounds half up",
			answers:     nAnswers(3, 2),
			known:       keyIDs(3),
			wantCorrect: 2,
			wantWrong:   1,
			wantScore:   66.67,
			wantStatus:  model.StatusPass,
		},
		{
			// Question 3 was deleted after generation: it counts toward the
			// denominator but neither correct nor wrong.
			name:        "unknown question skipped silently",
			answers:     nAnswers(4, 2),
			known:       []uint{1, 2, 4},
			wantCorrect: 2,
			wantWrong:   1,
			wantScore:   50.00,
			wantStatus:  model.StatusFail,
		},
		{
			name:        "all questions unknown scores zero",
			answers:     nAnswers(2, 2),
			known:       nil,
			wantCorrect: 0,
			wantWrong:   0,
			wantScore:   0.00,
			wantStatus:  model.StatusFail,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewScoringService(answerKeyRepo(tc.known...))
			outcome, err := svc.Evaluate(tc.answers)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if outcome.TotalQuestions != len(tc.answers) {
				t.Errorf("total = %d, want %d", outcome.TotalQuestions, len(tc.answers))
			}
			if outcome.CorrectAnswers != tc.wantCorrect {
				t.Errorf("correct = %d, want %d", outcome.CorrectAnswers, tc.wantCorrect)
			}
			if outcome.WrongAnswers != tc.wantWrong {
				t.Errorf("wrong = %d, want %d", outcome.WrongAnswers, tc.wantWrong)
			}
			if outcome.Score != tc.wantScore {
				t.Errorf("score = %.2f, want %.2f", outcome.Score, tc.wantScore)
			}
			if outcome.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", outcome.Status, tc.wantStatus)
			}
		})
	}
}

func TestEvaluateValidation(t *testing.T) {
	tests := []struct {
		name    string
		answers []dto.SubmittedAnswerDTO
	}{
		{name: "empty answers", answers: nil},
		{
			name:    "option outside enum",
			answers: []dto.SubmittedAnswerDTO{{QuestionID: 1, SelectedOption: "E"}},
		},
		{
			name:    "lowercase option rejected",
			answers: []dto.SubmittedAnswerDTO{{QuestionID: 1, SelectedOption: "a"}},
		},
		{
			name:    "missing question id",
			answers: []dto.SubmittedAnswerDTO{{SelectedOption: model.OptionA}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewScoringService(answerKeyRepo(1))
			if _, err := svc.Evaluate(tc.answers); !apperr.IsValidation(err) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestEvaluateDuplicateAnswersCountIndividually(t *testing.T) {
	svc := NewScoringService(answerKeyRepo(1))
	answers := []dto.SubmittedAnswerDTO{
		{QuestionID: 1, SelectedOption: model.OptionA},
		{QuestionID: 1, SelectedOption: model.OptionB},
	}

	outcome, err := svc.Evaluate(answers)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if outcome.TotalQuestions != 2 || outcome.CorrectAnswers != 1 || outcome.WrongAnswers != 1 {
		t.Fatalf("got total=%d correct=%d wrong=%d, want 2/1/1",
			outcome.TotalQuestions, outcome.CorrectAnswers, outcome.WrongAnswers)
	}
}
