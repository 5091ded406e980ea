package service

import (
	"errors"
	"time"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
	"github.com/hireloop/examportal/internal/repository"
)

// AcademicService manages a candidate's own academic history entries.
type AcademicService interface {
	List(candidateID uint) ([]model.AcademicRecord, error)
	Add(candidateID uint, req dto.AcademicRecordRequest) (*model.AcademicRecord, error)
	Update(candidateID, recordID uint, req dto.AcademicRecordRequest) (*model.AcademicRecord, error)
	Remove(candidateID, recordID uint) error
}

type academicService struct {
	academicRepo repository.AcademicRepository
}

func NewAcademicService(academicRepo repository.AcademicRepository) AcademicService {
	return &academicService{academicRepo: academicRepo}
}

func (s *academicService) List(candidateID uint) ([]model.AcademicRecord, error) {
	return s.academicRepo.ListByCandidate(candidateID)
}

func (s *academicService) Add(candidateID uint, req dto.AcademicRecordRequest) (*model.AcademicRecord, error) {
	if err := validatePassingYear(req.PassingYear); err != nil {
		return nil, err
	}

	record := model.AcademicRecord{
		CandidateID:       candidateID,
		ExamName:          req.ExamName,
		BoardOrUniversity: req.BoardOrUniversity,
		PassingYear:       req.PassingYear,
		PercentageOrCGPA:  req.PercentageOrCGPA,
	}
	if err := s.academicRepo.Create(&record); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.Validationf("this exam record already exists for your profile")
		}
		return nil, err
	}
	return &record, nil
}

func (s *academicService) Update(candidateID, recordID uint, req dto.AcademicRecordRequest) (*model.AcademicRecord, error) {
	if err := validatePassingYear(req.PassingYear); err != nil {
		return nil, err
	}

	record, err := s.academicRepo.FindOwned(candidateID, recordID)
	if err != nil {
		return nil, err
	}

	record.ExamName = req.ExamName
	record.BoardOrUniversity = req.BoardOrUniversity
	record.PassingYear = req.PassingYear
	record.PercentageOrCGPA = req.PercentageOrCGPA

	if err := s.academicRepo.Update(record); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.Validationf("this exam record already exists for your profile")
		}
		return nil, err
	}
	return record, nil
}

func (s *academicService) Remove(candidateID, recordID uint) error {
	return s.academicRepo.Delete(candidateID, recordID)
}

func validatePassingYear(year int) error {
	if year > time.Now().Year() {
		return apperr.Validationf("passing_year %d is in the future", year)
	}
	return nil
}
