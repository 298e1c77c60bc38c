package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlockedTime marks a doctor unavailable for an explicit interval
// (vacation, time off) regardless of the weekly rule.
type BlockedTime struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartAt   time.Time `gorm:"not null" json:"start_at"`
	EndAt     time.Time `gorm:"not null" json:"end_at"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (BlockedTime) TableName() string {
	return "blocked_times"
}

// Overlaps reports whether the interval [from, to) intersects this block
func (b *BlockedTime) Overlaps(from, to time.Time) bool {
	return from.Before(b.EndAt) && b.StartAt.Before(to)
}
