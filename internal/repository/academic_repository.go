package repository

import (
	"errors"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/model"
	"gorm.io/gorm"
)

// AcademicRepository stores a candidate's academic history. Updates and
// deletes are always scoped to the owning candidate so one candidate cannot
// touch another's records.
type AcademicRepository interface {
	ListByCandidate(candidateID uint) ([]model.AcademicRecord, error)
	Create(record *model.AcademicRecord) error
	Update(record *model.AcademicRecord) error
	Delete(candidateID, recordID uint) error
	FindOwned(candidateID, recordID uint) (*model.AcademicRecord, error)
}

type academicRepository struct {
	db *gorm.DB
}

func NewAcademicRepository(db *gorm.DB) AcademicRepository {
	return &academicRepository{db: db}
}

func (r *academicRepository) ListByCandidate(candidateID uint) ([]model.AcademicRecord, error) {
	var records []model.AcademicRecord
	err := r.db.Where("candidate_id = ?", candidateID).
		Order("passing_year DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperr.Repositoryf("listing academic history", err)
	}
	return records, nil
}

func (r *academicRepository) Create(record *model.AcademicRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Repositoryf("creating academic record", err)
	}
	return nil
}

func (r *academicRepository) Update(record *model.AcademicRecord) error {
	if err := r.db.Save(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Repositoryf("updating academic record", err)
	}
	return nil
}

func (r *academicRepository) Delete(candidateID, recordID uint) error {
	res := r.db.Where("candidate_id = ?", candidateID).Delete(&model.AcademicRecord{}, recordID)
	if res.Error != nil {
		return apperr.Repositoryf("deleting academic record", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *academicRepository) FindOwned(candidateID, recordID uint) (*model.AcademicRecord, error) {
	var record model.AcademicRecord
	err := r.db.Where("id = ? AND candidate_id = ?", recordID, candidateID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Repositoryf("finding academic record", err)
	}
	return &record, nil
}
