package repository

import (
	"errors"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/model"
	"gorm.io/gorm"
)

// QuestionRepository is the question bank adapter. The exam engine consumes
// FindByDomainAndTiers (candidate-eligible pool for the sampler) and
// CorrectOptionsByIDs (batched answer-key lookup at scoring time); the rest
// serves the admin console.
type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
	List(domainID *uint, page, limit int) ([]model.Question, int64, error)

	FindByDomainAndTiers(domainID uint, tiers []string) ([]model.Question, error)
	CorrectOptionsByIDs(ids []uint) (map[uint]string, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return apperr.Repositoryf("creating question", err)
	}
	return nil
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Domain").First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Repositoryf("finding question", err)
	}
	return &question, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	if err := r.db.Save(question).Error; err != nil {
		return apperr.Repositoryf("updating question", err)
	}
	return nil
}

func (r *questionRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Question{}, id)
	if res.Error != nil {
		return apperr.Repositoryf("deleting question", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *questionRepository) List(domainID *uint, page, limit int) ([]model.Question, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if domainID != nil {
			return db.Where("domain_id = ?", *domainID)
		}
		return db
	}

	var total int64
	if err := scope(r.db.Model(&model.Question{})).Count(&total).Error; err != nil {
		return nil, 0, apperr.Repositoryf("counting questions", err)
	}

	var questions []model.Question
	offset := (page - 1) * limit
	err := scope(r.db.Preload("Domain")).
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&questions).Error
	if err != nil {
		return nil, 0, apperr.Repositoryf("listing questions", err)
	}
	return questions, total, nil
}

// FindByDomainAndTiers returns every live question of the domain in the given
// difficulty tiers. Order is whatever the store yields; randomized selection
// is the sampler's job, not the store's.
func (r *questionRepository) FindByDomainAndTiers(domainID uint, tiers []string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("domain_id = ? AND difficulty_level IN ?", domainID, tiers).
		Find(&questions).Error
	if err != nil {
		return nil, apperr.Repositoryf("fetching domain questions", err)
	}
	return questions, nil
}

// CorrectOptionsByIDs resolves the canonical answer key for the given question
// ids in one query. Ids that no longer exist are simply absent from the map;
// the scoring engine treats those as neither correct nor wrong.
func (r *questionRepository) CorrectOptionsByIDs(ids []uint) (map[uint]string, error) {
	type row struct {
		ID            uint
		CorrectOption string
	}
	var rows []row
	err := r.db.Model(&model.Question{}).
		Select("id", "correct_option").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Repositoryf("fetching answer key", err)
	}

	key := make(map[uint]string, len(rows))
	for _, q := range rows {
		key[q.ID] = q.CorrectOption
	}
	return key, nil
}
