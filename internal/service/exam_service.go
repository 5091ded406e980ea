package service

import (
	"errors"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
	"github.com/hireloop/examportal/internal/repository"
	"github.com/rs/zerolog/log"
)

// ExamService drives the single-attempt exam lifecycle: paper generation,
// submission scoring and result retrieval.
//
// The existence check before generation and submission is only a fast path.
// Two concurrent submissions can both pass it; the unique index on the result
// table decides the winner, and the loser's conflict is surfaced with the
// same already-attempted semantics as the proactive check.
type ExamService interface {
	GenerateExam(candidateID uint) (*dto.GeneratedExamDTO, error)
	SubmitExam(candidateID uint, req dto.ExamSubmitRequest) (*dto.ExamSubmitResponse, error)
	GetResult(candidateID uint) (*dto.ExamResultStatusDTO, error)
}

type examService struct {
	candidateRepo repository.CandidateRepository
	resultRepo    repository.ResultRepository
	paperService  PaperService
	scoring       ScoringService
}

func NewExamService(
	candidateRepo repository.CandidateRepository,
	resultRepo repository.ResultRepository,
	paperService PaperService,
	scoring ScoringService,
) ExamService {
	return &examService{
		candidateRepo: candidateRepo,
		resultRepo:    resultRepo,
		paperService:  paperService,
		scoring:       scoring,
	}
}

func (s *examService) GenerateExam(candidateID uint) (*dto.GeneratedExamDTO, error) {
	if err := s.rejectIfAttempted(candidateID); err != nil {
		return nil, err
	}

	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	if candidate.DomainID == nil {
		return nil, apperr.ErrDomainNotAssigned
	}

	paper, err := s.paperService.BuildPaper(*candidate.DomainID)
	if err != nil {
		return nil, err
	}

	flat := make([]dto.ExamQuestionDTO, len(paper))
	for i, q := range paper {
		flat[i] = dto.ExamQuestionDTO{
			QuestionID:      q.ID,
			QuestionText:    q.QuestionText,
			OptionA:         q.OptionA,
			OptionB:         q.OptionB,
			OptionC:         q.OptionC,
			OptionD:         q.OptionD,
			DifficultyLevel: q.DifficultyLevel,
		}
	}
	pages, totalPages := Paginate(flat)

	log.Info().
		Uint("candidateID", candidateID).
		Uint("domainID", *candidate.DomainID).
		Int("questions", len(flat)).
		Msg("Exam generated")

	return &dto.GeneratedExamDTO{
		Message: "Exam generated successfully",
		ExamMeta: dto.ExamMetaDTO{
			TotalQuestions:  len(flat),
			DurationMinutes: ExamDurationMinutes,
			DomainID:        *candidate.DomainID,
			TotalPages:      totalPages,
		},
		QuestionsFlat:      flat,
		QuestionsPaginated: pages,
	}, nil
}

func (s *examService) SubmitExam(candidateID uint, req dto.ExamSubmitRequest) (*dto.ExamSubmitResponse, error) {
	if err := s.rejectIfAttempted(candidateID); err != nil {
		return nil, err
	}

	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}

	outcome, err := s.scoring.Evaluate(req.Answers)
	if err != nil {
		return nil, err
	}

	result := model.ExamResult{
		CandidateID:    candidateID,
		DomainID:       candidate.DomainID,
		TotalQuestions: outcome.TotalQuestions,
		CorrectAnswers: outcome.CorrectAnswers,
		WrongAnswers:   outcome.WrongAnswers,
		Score:          outcome.Score,
		Status:         outcome.Status,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			// Lost the race against a concurrent submission. Same outcome as
			// the proactive check.
			log.Warn().Uint("candidateID", candidateID).Msg("Concurrent duplicate submission rejected by store")
			return nil, apperr.ErrAlreadyAttempted
		}
		return nil, err
	}

	log.Info().
		Uint("candidateID", candidateID).
		Uint("resultID", result.ID).
		Float64("score", result.Score).
		Str("status", result.Status).
		Msg("Exam submitted")

	return &dto.ExamSubmitResponse{
		Message: "Exam submitted successfully",
		Result:  toResultDTO(&result),
	}, nil
}

func (s *examService) GetResult(candidateID uint) (*dto.ExamResultStatusDTO, error) {
	result, err := s.resultRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &dto.ExamResultStatusDTO{Taken: false}, nil
	}
	data := toResultDTO(result)
	return &dto.ExamResultStatusDTO{Taken: true, Data: &data}, nil
}

func (s *examService) rejectIfAttempted(candidateID uint) error {
	taken, err := s.resultRepo.ExistsForCandidate(candidateID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.ErrAlreadyAttempted
	}
	return nil
}

func toResultDTO(result *model.ExamResult) dto.ExamResultDTO {
	return dto.ExamResultDTO{
		ResultID:       result.ID,
		ExamDate:       result.ExamDate,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		WrongAnswers:   result.WrongAnswers,
		Score:          result.Score,
		Status:         result.Status,
	}
}
