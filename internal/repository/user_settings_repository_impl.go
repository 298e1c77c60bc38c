package repository

import (
	"errors"

	"clinic-api/internal/domain/entity"
	domainRepo "clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userSettingsRepository struct{}

func NewUserSettingsRepository() domainRepo.UserSettingsRepository {
	return &userSettingsRepository{}
}

func (r *userSettingsRepository) Create(db *gorm.DB, settings *entity.UserSettings) error {
	return db.Create(settings).Error
}

func (r *userSettingsRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserSettings, error) {
	var settings entity.UserSettings
	err := db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *userSettingsRepository) Update(db *gorm.DB, settings *entity.UserSettings) error {
	return db.Omit("User").Save(settings).Error
}
