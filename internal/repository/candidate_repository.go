package repository

import (
	"errors"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/model"
	"gorm.io/gorm"
)

// CandidateRepository is the candidate directory. The exam engine only needs
// FindByID (for the assigned domain); the rest backs registration, login and
// the admin console.
type CandidateRepository interface {
	Create(candidate *model.Candidate) error
	FindByID(id uint) (*model.Candidate, error)
	FindByEmail(email string) (*model.Candidate, error)
	List(search string, page, limit int) ([]model.Candidate, int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *model.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Repositoryf("creating candidate", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id uint) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.Preload("Domain").First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Repositoryf("finding candidate", err)
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByEmail(email string) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.Where("email = ?", email).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Repositoryf("finding candidate by email", err)
	}
	return &candidate, nil
}

func (r *candidateRepository) List(search string, page, limit int) ([]model.Candidate, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if search != "" {
			pattern := "%" + search + "%"
			return db.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
		}
		return db
	}

	var total int64
	if err := scope(r.db.Model(&model.Candidate{})).Count(&total).Error; err != nil {
		return nil, 0, apperr.Repositoryf("counting candidates", err)
	}

	var candidates []model.Candidate
	offset := (page - 1) * limit
	err := scope(r.db.Preload("Domain")).
		Order("registered_at DESC").Limit(limit).Offset(offset).
		Find(&candidates).Error
	if err != nil {
		return nil, 0, apperr.Repositoryf("listing candidates", err)
	}
	return candidates, total, nil
}
