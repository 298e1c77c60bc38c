package repository

import (
	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserSettingsRepository interface {
	Create(db *gorm.DB, settings *entity.UserSettings) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserSettings, error)
	Update(db *gorm.DB, settings *entity.UserSettings) error
}
