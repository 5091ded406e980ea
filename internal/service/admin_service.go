package service

import (
	"errors"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
	"github.com/hireloop/examportal/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminService backs the admin console: result inspection, candidate review
// and question bank management.
type AdminService interface {
	SearchResults(filter dto.ResultSearchFilter) ([]dto.ResultRowDTO, error)
	ResultDetail(resultID uint) (*dto.ResultRowDTO, error)

	ListCandidates(search string, page, limit int) (*dto.CandidateListResponse, error)
	CandidateDetail(candidateID uint) (*dto.CandidateDetailDTO, error)

	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionAdminDTO, error)
	GetQuestion(id uint) (*dto.QuestionAdminDTO, error)
	UpdateQuestion(id uint, req dto.CreateQuestionRequest) (*dto.QuestionAdminDTO, error)
	DeleteQuestion(id uint) error
	ListQuestions(domainID *uint, page, limit int) (*dto.QuestionListResponse, error)
}

type adminService struct {
	candidateRepo repository.CandidateRepository
	questionRepo  repository.QuestionRepository
	resultRepo    repository.ResultRepository
	academicRepo  repository.AcademicRepository
	domainRepo    repository.DomainRepository
}

func NewAdminService(
	candidateRepo repository.CandidateRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	academicRepo repository.AcademicRepository,
	domainRepo repository.DomainRepository,
) AdminService {
	return &adminService{
		candidateRepo: candidateRepo,
		questionRepo:  questionRepo,
		resultRepo:    resultRepo,
		academicRepo:  academicRepo,
		domainRepo:    domainRepo,
	}
}

func (s *adminService) SearchResults(filter dto.ResultSearchFilter) ([]dto.ResultRowDTO, error) {
	return s.resultRepo.Search(filter)
}

func (s *adminService) ResultDetail(resultID uint) (*dto.ResultRowDTO, error) {
	return s.resultRepo.FindRowByID(resultID)
}

func (s *adminService) ListCandidates(search string, page, limit int) (*dto.CandidateListResponse, error) {
	candidates, total, err := s.candidateRepo.List(search, page, limit)
	if err != nil {
		return nil, err
	}

	profiles := make([]dto.CandidateProfile, len(candidates))
	for i := range candidates {
		if err := copier.Copy(&profiles[i], &candidates[i]); err != nil {
			return nil, err
		}
		if candidates[i].Domain != nil {
			profiles[i].DomainName = candidates[i].Domain.Name
		}
	}
	return &dto.CandidateListResponse{Data: profiles, Total: total, Page: page, Limit: limit}, nil
}

func (s *adminService) CandidateDetail(candidateID uint) (*dto.CandidateDetailDTO, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}

	var profile dto.CandidateProfile
	if err := copier.Copy(&profile, candidate); err != nil {
		return nil, err
	}
	if candidate.Domain != nil {
		profile.DomainName = candidate.Domain.Name
	}

	history, err := s.academicRepo.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}

	detail := dto.CandidateDetailDTO{Profile: profile, AcademicHistory: history}

	result, err := s.resultRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	if result != nil {
		resultDTO := toResultDTO(result)
		detail.Result = &resultDTO
	}
	return &detail, nil
}

func (s *adminService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionAdminDTO, error) {
	domain, err := s.domainRepo.FindByID(req.DomainID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Validationf("domain %d does not exist", req.DomainID)
		}
		return nil, err
	}

	question := model.Question{
		DomainID:        req.DomainID,
		QuestionText:    req.QuestionText,
		OptionA:         req.OptionA,
		OptionB:         req.OptionB,
		OptionC:         req.OptionC,
		OptionD:         req.OptionD,
		CorrectOption:   req.CorrectOption,
		DifficultyLevel: req.DifficultyLevel,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, err
	}

	log.Info().Uint("questionID", question.ID).Str("domain", domain.Name).Msg("Question created")
	return toQuestionAdminDTO(&question, domain.Name)
}

func (s *adminService) GetQuestion(id uint) (*dto.QuestionAdminDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toQuestionAdminDTO(question, question.Domain.Name)
}

func (s *adminService) UpdateQuestion(id uint, req dto.CreateQuestionRequest) (*dto.QuestionAdminDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.DomainID != question.DomainID {
		if _, err := s.domainRepo.FindByID(req.DomainID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.Validationf("domain %d does not exist", req.DomainID)
			}
			return nil, err
		}
	}

	question.DomainID = req.DomainID
	question.QuestionText = req.QuestionText
	question.OptionA = req.OptionA
	question.OptionB = req.OptionB
	question.OptionC = req.OptionC
	question.OptionD = req.OptionD
	question.CorrectOption = req.CorrectOption
	question.DifficultyLevel = req.DifficultyLevel

	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return toQuestionAdminDTO(question, "")
}

func (s *adminService) DeleteQuestion(id uint) error {
	return s.questionRepo.Delete(id)
}

func (s *adminService) ListQuestions(domainID *uint, page, limit int) (*dto.QuestionListResponse, error) {
	questions, total, err := s.questionRepo.List(domainID, page, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.QuestionAdminDTO, len(questions))
	for i := range questions {
		row, err := toQuestionAdminDTO(&questions[i], questions[i].Domain.Name)
		if err != nil {
			return nil, err
		}
		rows[i] = *row
	}
	return &dto.QuestionListResponse{Data: rows, Total: total, Page: page, Limit: limit}, nil
}

func toQuestionAdminDTO(question *model.Question, domainName string) (*dto.QuestionAdminDTO, error) {
	var row dto.QuestionAdminDTO
	if err := copier.Copy(&row, question); err != nil {
		return nil, err
	}
	row.DomainName = domainName
	return &row, nil
}
