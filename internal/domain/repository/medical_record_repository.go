package repository

import (
	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalNoteRepository interface {
	Create(db *gorm.DB, note *entity.MedicalNote) error
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalNote, error)
	FindByIDAndPatient(db *gorm.DB, id int64, patientID uuid.UUID) (*entity.MedicalNote, error)
	Update(db *gorm.DB, note *entity.MedicalNote) error
	Delete(db *gorm.DB, id int64) error
}

type VitalSignRepository interface {
	Create(db *gorm.DB, vital *entity.VitalSign) error
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.VitalSign, error)
	FindByIDAndPatient(db *gorm.DB, id int64, patientID uuid.UUID) (*entity.VitalSign, error)
	Update(db *gorm.DB, vital *entity.VitalSign) error
	Delete(db *gorm.DB, id int64) error
}

type MedicalFileRepository interface {
	Create(db *gorm.DB, file *entity.MedicalFile) error
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalFile, error)
	FindByIDAndPatient(db *gorm.DB, id uuid.UUID, patientID uuid.UUID) (*entity.MedicalFile, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
