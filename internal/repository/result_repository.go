package repository

import (
	"errors"
	"time"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/dto"
	"github.com/hireloop/examportal/internal/model"
	"gorm.io/gorm"
)

// ResultRepository records and serves exam attempt records. Create is the
// authoritative enforcement point of the at-most-one-attempt invariant:
// the unique index on candidate_id makes the losing concurrent writer fail
// with apperr.ErrConflict.
type ResultRepository interface {
	Create(result *model.ExamResult) error
	ExistsForCandidate(candidateID uint) (bool, error)
	// FindByCandidate returns (nil, nil) when the candidate has not taken the
	// exam; absence is a normal state, not an error.
	FindByCandidate(candidateID uint) (*model.ExamResult, error)
	FindRowByID(resultID uint) (*dto.ResultRowDTO, error)
	Search(filter dto.ResultSearchFilter) ([]dto.ResultRowDTO, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.ExamResult) error {
	if err := r.db.Create(result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Repositoryf("creating exam result", err)
	}
	return nil
}

func (r *resultRepository) ExistsForCandidate(candidateID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ExamResult{}).
		Where("candidate_id = ?", candidateID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, apperr.Repositoryf("checking existing attempt", err)
	}
	return count > 0, nil
}

func (r *resultRepository) FindByCandidate(candidateID uint) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.db.Where("candidate_id = ?", candidateID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Repositoryf("fetching exam result", err)
	}
	return &result, nil
}

const resultRowSelect = `exam_results.id AS result_id, exam_results.candidate_id, ` +
	`candidates.first_name, candidates.last_name, candidates.email, domains.name AS domain_name, ` +
	`exam_results.total_questions, exam_results.correct_answers, exam_results.wrong_answers, ` +
	`exam_results.score, exam_results.status, exam_results.exam_date`

func (r *resultRepository) FindRowByID(resultID uint) (*dto.ResultRowDTO, error) {
	var row dto.ResultRowDTO
	err := r.db.Model(&model.ExamResult{}).
		Select(resultRowSelect).
		Joins("JOIN candidates ON candidates.id = exam_results.candidate_id").
		Joins("LEFT JOIN domains ON domains.id = exam_results.domain_id").
		Where("exam_results.id = ?", resultID).
		Scan(&row).Error
	if err != nil {
		return nil, apperr.Repositoryf("fetching result detail", err)
	}
	if row.ResultID == 0 {
		return nil, apperr.ErrNotFound
	}
	return &row, nil
}

func (r *resultRepository) Search(filter dto.ResultSearchFilter) ([]dto.ResultRowDTO, error) {
	query := r.db.Model(&model.ExamResult{}).
		Select(resultRowSelect).
		Joins("JOIN candidates ON candidates.id = exam_results.candidate_id").
		Joins("LEFT JOIN domains ON domains.id = exam_results.domain_id")

	if filter.DomainName != "" {
		query = query.Where("domains.name = ?", filter.DomainName)
	}
	if filter.CandidateName != "" {
		pattern := "%" + filter.CandidateName + "%"
		query = query.Where("candidates.first_name ILIKE ? OR candidates.last_name ILIKE ?", pattern, pattern)
	}
	if from, to, ok := dateRange(filter); ok {
		if to != nil {
			query = query.Where("exam_results.exam_date BETWEEN ? AND ?", from, *to)
		} else {
			query = query.Where("exam_results.exam_date >= ?", from)
		}
	}

	var rows []dto.ResultRowDTO
	if err := query.Order("exam_results.exam_date DESC").Scan(&rows).Error; err != nil {
		return nil, apperr.Repositoryf("searching exam results", err)
	}
	return rows, nil
}

// dateRange translates the named date filters into a concrete window.
func dateRange(filter dto.ResultSearchFilter) (time.Time, *time.Time, bool) {
	now := time.Now()
	switch filter.DateFilter {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, nil, true
	case "last_week":
		return now.AddDate(0, 0, -7), nil, true
	case "last_month":
		return now.AddDate(0, -1, 0), nil, true
	case "last_year":
		return now.AddDate(-1, 0, 0), nil, true
	case "custom":
		if filter.StartDate != nil && filter.EndDate != nil {
			return *filter.StartDate, filter.EndDate, true
		}
	}
	return time.Time{}, nil, false
}
