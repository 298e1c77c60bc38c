package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalNote is a free-form clinical note written by a doctor for a patient,
// optionally tied to an appointment.
type MedicalNote struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null" json:"doctor_id"`
	AppointmentID *uuid.UUID `gorm:"type:uuid" json:"appointment_id,omitempty"`
	Title         string     `gorm:"type:varchar(100);not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalNote) TableName() string {
	return "medical_notes"
}
