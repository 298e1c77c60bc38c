package entity

import (
	"time"

	"github.com/google/uuid"
)

// VitalSign is a single measurement recorded for a patient
type VitalSign struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID   *uuid.UUID `gorm:"type:uuid" json:"doctor_id,omitempty"`
	TypeName   string     `gorm:"type:varchar(100);not null" json:"type_name"`
	Value      string     `gorm:"type:varchar(50);not null" json:"value"`
	Unit       string     `gorm:"type:varchar(50)" json:"unit,omitempty"`
	MeasuredAt time.Time  `gorm:"autoCreateTime" json:"measured_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (VitalSign) TableName() string {
	return "vital_signs"
}
