package repository

import (
	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByUserID(db *gorm.DB, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]entity.Notification, error)
	FindByIDAndUser(db *gorm.DB, id int64, userID uuid.UUID) (*entity.Notification, error)
	Update(db *gorm.DB, notification *entity.Notification) error
	Delete(db *gorm.DB, id int64) error
}
