package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule represents a doctor's recurring weekly working window.
// DayOfWeek uses the Monday=0 .. Sunday=6 convention.
// A doctor has at most one rule per day, enforced by the composite unique index.
type AvailabilityRule struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_doctor_day" json:"doctor_id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_doctor_day" json:"day_of_week"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"` // "HH:MM"
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`   // "HH:MM"
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AvailabilityRule) TableName() string {
	return "availability_rules"
}

// DayName returns the English name for the rule's day of week
func (r *AvailabilityRule) DayName() string {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if r.DayOfWeek >= 0 && r.DayOfWeek < 7 {
		return days[r.DayOfWeek]
	}
	return ""
}
