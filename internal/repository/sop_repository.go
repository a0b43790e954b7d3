package repository

import (
	"pltp-shift-backend/internal/model"

	"gorm.io/gorm"
)

type SOPRepository interface {
	GetAll(category, targetUnit string) ([]model.SOP, error)
	GetByID(id uint) (*model.SOP, error)
	Create(sop *model.SOP) error
	Update(sop *model.SOP) error
	Delete(id uint) error
}

type sopRepository struct {
	db *gorm.DB
}

func NewSOPRepository(db *gorm.DB) SOPRepository {
	return &sopRepository{db}
}

func (r *sopRepository) GetAll(category, targetUnit string) ([]model.SOP, error) {
	var sops []model.SOP
	q := r.db.Order("id asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if targetUnit != "" {
		q = q.Where("target_unit = ?", targetUnit)
	}
	err := q.Find(&sops).Error
	return sops, err
}

func (r *sopRepository) GetByID(id uint) (*model.SOP, error) {
	var sop model.SOP
	err := r.db.First(&sop, id).Error
	return &sop, err
}

func (r *sopRepository) Create(sop *model.SOP) error {
	return r.db.Create(sop).Error
}

func (r *sopRepository) Update(sop *model.SOP) error {
	return r.db.Save(sop).Error
}

func (r *sopRepository) Delete(id uint) error {
	return r.db.Delete(&model.SOP{}, id).Error
}
