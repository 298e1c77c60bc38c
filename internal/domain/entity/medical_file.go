package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalFile is the metadata row for an uploaded patient document or image.
// The bytes live in the file store; FilePath is the store key.
type MedicalFile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	UploaderID  uuid.UUID `gorm:"type:uuid;not null" json:"uploader_id"`
	FilePath    string    `gorm:"type:varchar(255);not null" json:"file_path"`
	Description string    `gorm:"type:varchar(255)" json:"description,omitempty"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	// Relationships
	Patient  Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Uploader User    `gorm:"foreignKey:UploaderID" json:"uploader,omitempty"`
}

func (MedicalFile) TableName() string {
	return "medical_files"
}
