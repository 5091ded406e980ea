package service

import (
	"errors"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/auth"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
	"github.com/hireloop/examportal/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService covers candidate registration/login, the admin login, and the
// candidate self-view. This is portal glue around the exam core.
type AuthService interface {
	RegisterCandidate(req dto.RegisterCandidateRequest) (*dto.RegisterCandidateResponse, error)
	LoginCandidate(req dto.LoginRequest) (*dto.LoginResponse, error)
	LoginAdmin(req dto.AdminLoginRequest) (*dto.LoginResponse, error)
	GetCandidateProfile(candidateID uint) (*dto.CandidateProfile, error)
	ListDomains() (*dto.DropdownsResponse, error)
}

type authService struct {
	candidateRepo repository.CandidateRepository
	adminRepo     repository.AdminRepository
	domainRepo    repository.DomainRepository
	tokens        *auth.TokenIssuer
}

func NewAuthService(
	candidateRepo repository.CandidateRepository,
	adminRepo repository.AdminRepository,
	domainRepo repository.DomainRepository,
	tokens *auth.TokenIssuer,
) AuthService {
	return &authService{
		candidateRepo: candidateRepo,
		adminRepo:     adminRepo,
		domainRepo:    domainRepo,
		tokens:        tokens,
	}
}

func (s *authService) RegisterCandidate(req dto.RegisterCandidateRequest) (*dto.RegisterCandidateResponse, error) {
	if req.DomainID != nil {
		if _, err := s.domainRepo.FindByID(*req.DomainID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.Validationf("domain %d does not exist", *req.DomainID)
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	candidate := model.Candidate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PasswordHash:    string(hash),
		PhoneNumber:     req.PhoneNumber,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		Address:         req.Address,
		City:            req.City,
		LinkedinProfile: req.LinkedinProfile,
		IsActive:        true,
		DomainID:        req.DomainID,
	}
	if err := s.candidateRepo.Create(&candidate); err != nil {
		return nil, err
	}

	log.Info().Uint("candidateID", candidate.ID).Str("email", candidate.Email).Msg("Candidate registered")

	profile, err := s.buildProfile(&candidate)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterCandidateResponse{
		Message:   "Candidate registered successfully.",
		Candidate: *profile,
	}, nil
}

func (s *authService) LoginCandidate(req dto.LoginRequest) (*dto.LoginResponse, error) {
	candidate, err := s.candidateRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if !candidate.IsActive {
		return nil, apperr.ErrAccountInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(candidate.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueCandidate(candidate)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserSummary{
			ID:        candidate.ID,
			FirstName: candidate.FirstName,
			Email:     candidate.Email,
		},
	}, nil
}

func (s *authService) LoginAdmin(req dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueAdmin(admin)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserSummary{
			ID:       admin.ID,
			Username: admin.Username,
		},
	}, nil
}

func (s *authService) GetCandidateProfile(candidateID uint) (*dto.CandidateProfile, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	return s.buildProfile(candidate)
}

func (s *authService) ListDomains() (*dto.DropdownsResponse, error) {
	domains, err := s.domainRepo.FindAll()
	if err != nil {
		return nil, err
	}
	options := make([]dto.DomainOption, len(domains))
	for i, d := range domains {
		options[i] = dto.DomainOption{ID: d.ID, Name: d.Name}
	}
	return &dto.DropdownsResponse{Domains: options}, nil
}

func (s *authService) buildProfile(candidate *model.Candidate) (*dto.CandidateProfile, error) {
	var profile dto.CandidateProfile
	if err := copier.Copy(&profile, candidate); err != nil {
		return nil, err
	}
	if candidate.Domain != nil {
		profile.DomainName = candidate.Domain.Name
	}
	return &profile, nil
}
