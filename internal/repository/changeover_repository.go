package repository

import (
	"pltp-shift-backend/internal/model"

	"gorm.io/gorm"
)

type ChangeOverRepository interface {
	GetAll() ([]model.ChangeOverTask, error)
	GetByTargetUnit(targetUnit string) ([]model.ChangeOverTask, error)
	GetByID(id uint) (*model.ChangeOverTask, error)
	Create(task *model.ChangeOverTask) error
	Update(task *model.ChangeOverTask) error
	Delete(id uint) error
}

type changeOverRepository struct {
	db *gorm.DB
}

func NewChangeOverRepository(db *gorm.DB) ChangeOverRepository {
	return &changeOverRepository{db}
}

func (r *changeOverRepository) GetAll() ([]model.ChangeOverTask, error) {
	var tasks []model.ChangeOverTask
	err := r.db.Order("id asc").Find(&tasks).Error
	return tasks, err
}

func (r *changeOverRepository) GetByTargetUnit(targetUnit string) ([]model.ChangeOverTask, error) {
	var tasks []model.ChangeOverTask
	err := r.db.Where("target_unit = ?", targetUnit).Order("id asc").Find(&tasks).Error
	return tasks, err
}

func (r *changeOverRepository) GetByID(id uint) (*model.ChangeOverTask, error) {
	var task model.ChangeOverTask
	err := r.db.First(&task, id).Error
	return &task, err
}

func (r *changeOverRepository) Create(task *model.ChangeOverTask) error {
	return r.db.Create(task).Error
}

func (r *changeOverRepository) Update(task *model.ChangeOverTask) error {
	return r.db.Save(task).Error
}

func (r *changeOverRepository) Delete(id uint) error {
	return r.db.Delete(&model.ChangeOverTask{}, id).Error
}
