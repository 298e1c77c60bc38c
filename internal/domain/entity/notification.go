package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is a lookup row describing a notification category
type NotificationType struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (NotificationType) TableName() string {
	return "notification_types"
}

// Notification type ID constants (seeded by migration)
const (
	NotificationTypeReminder      = 1
	NotificationTypeResult        = 2
	NotificationTypeDoctorMessage = 3
)

// Notification is an in-app message addressed to a user account
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TypeID    int       `gorm:"not null" json:"type_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User             User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	NotificationType NotificationType `gorm:"foreignKey:TypeID" json:"notification_type,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
