package repository

import (
	"errors"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/model"
	"gorm.io/gorm"
)

type DomainRepository interface {
	FindAll() ([]model.Domain, error)
	FindByID(id uint) (*model.Domain, error)
}

type domainRepository struct {
	db *gorm.DB
}

func NewDomainRepository(db *gorm.DB) DomainRepository {
	return &domainRepository{db: db}
}

func (r *domainRepository) FindAll() ([]model.Domain, error) {
	var domains []model.Domain
	if err := r.db.Order("name ASC").Find(&domains).Error; err != nil {
		return nil, apperr.Repositoryf("listing domains", err)
	}
	return domains, nil
}

func (r *domainRepository) FindByID(id uint) (*model.Domain, error) {
	var domain model.Domain
	if err := r.db.First(&domain, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Repositoryf("finding domain", err)
	}
	return &domain, nil
}
