package repository

import (
	"pltp-shift-backend/internal/model"

	"gorm.io/gorm"
)

type LogEntryRepository interface {
	GetAll() ([]model.LogEntry, error)
	GetByTargetUnit(targetUnit string) ([]model.LogEntry, error)
	GetByID(id uint) (*model.LogEntry, error)
	Create(entry *model.LogEntry) error
	Delete(id uint) error
}

type logEntryRepository struct {
	db *gorm.DB
}

func NewLogEntryRepository(db *gorm.DB) LogEntryRepository {
	return &logEntryRepository{db}
}

func (r *logEntryRepository) GetAll() ([]model.LogEntry, error) {
	var entries []model.LogEntry
	err := r.db.Order("timestamp desc").Find(&entries).Error
	return entries, err
}

func (r *logEntryRepository) GetByTargetUnit(targetUnit string) ([]model.LogEntry, error) {
	var entries []model.LogEntry
	err := r.db.Where("target_unit = ?", targetUnit).Order("timestamp desc").Find(&entries).Error
	return entries, err
}

func (r *logEntryRepository) GetByID(id uint) (*model.LogEntry, error) {
	var entry model.LogEntry
	err := r.db.First(&entry, id).Error
	return &entry, err
}

func (r *logEntryRepository) Create(entry *model.LogEntry) error {
	return r.db.Create(entry).Error
}

func (r *logEntryRepository) Delete(id uint) error {
	return r.db.Delete(&model.LogEntry{}, id).Error
}
