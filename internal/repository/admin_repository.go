package repository

import (
	"errors"

	"github.com/hireloop/examportal/internal/apperr"
	"github.com/hireloop/examportal/internal/model"
	"gorm.io/gorm"
)

type AdminRepository interface {
	FindByUsername(username string) (*model.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Repositoryf("finding admin", err)
	}
	return &admin, nil
}
