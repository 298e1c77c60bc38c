package repository

import (
	"time"

	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRuleRepository interface {
	// FindActiveRule returns the doctor's active rule for the given
	// Monday=0 day of week, or nil when the doctor does not work that day.
	FindActiveRule(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityRule, error)
	// ReplaceForDoctor deletes every rule the doctor has and inserts the
	// given ones. Callers must pass a transaction handle; the delete and
	// inserts are not individually atomic.
	ReplaceForDoctor(tx *gorm.DB, doctorID uuid.UUID, rules []entity.AvailabilityRule) error
}

type BlockedTimeRepository interface {
	Create(db *gorm.DB, blocked *entity.BlockedTime) error
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.BlockedTime, error)
	// FindOverlapping returns the doctor's blocked intervals intersecting [from, to).
	FindOverlapping(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.BlockedTime, error)
	Delete(db *gorm.DB, doctorID uuid.UUID, id int) (int64, error)
}
