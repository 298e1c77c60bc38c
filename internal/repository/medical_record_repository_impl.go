package repository

import (
	"errors"

	"clinic-api/internal/domain/entity"
	domainRepo "clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalNoteRepository struct{}

func NewMedicalNoteRepository() domainRepo.MedicalNoteRepository {
	return &medicalNoteRepository{}
}

func (r *medicalNoteRepository) Create(db *gorm.DB, note *entity.MedicalNote) error {
	return db.Create(note).Error
}

func (r *medicalNoteRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalNote, error) {
	var notes []entity.MedicalNote
	err := db.Where("patient_id = ?", patientID).Order("created_at DESC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *medicalNoteRepository) FindByIDAndPatient(db *gorm.DB, id int64, patientID uuid.UUID) (*entity.MedicalNote, error) {
	var note entity.MedicalNote
	err := db.Where("id = ? AND patient_id = ?", id, patientID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *medicalNoteRepository) Update(db *gorm.DB, note *entity.MedicalNote) error {
	return db.Omit("Patient", "Doctor").Save(note).Error
}

func (r *medicalNoteRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.MedicalNote{}).Error
}

type vitalSignRepository struct{}

func NewVitalSignRepository() domainRepo.VitalSignRepository {
	return &vitalSignRepository{}
}

func (r *vitalSignRepository) Create(db *gorm.DB, vital *entity.VitalSign) error {
	return db.Create(vital).Error
}

func (r *vitalSignRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.VitalSign, error) {
	var vitals []entity.VitalSign
	err := db.Where("patient_id = ?", patientID).Order("measured_at DESC").Find(&vitals).Error
	if err != nil {
		return nil, err
	}
	return vitals, nil
}

func (r *vitalSignRepository) FindByIDAndPatient(db *gorm.DB, id int64, patientID uuid.UUID) (*entity.VitalSign, error) {
	var vital entity.VitalSign
	err := db.Where("id = ? AND patient_id = ?", id, patientID).First(&vital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vital, nil
}

func (r *vitalSignRepository) Update(db *gorm.DB, vital *entity.VitalSign) error {
	return db.Omit("Patient").Save(vital).Error
}

func (r *vitalSignRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.VitalSign{}).Error
}

type medicalFileRepository struct{}

func NewMedicalFileRepository() domainRepo.MedicalFileRepository {
	return &medicalFileRepository{}
}

func (r *medicalFileRepository) Create(db *gorm.DB, file *entity.MedicalFile) error {
	return db.Create(file).Error
}

func (r *medicalFileRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalFile, error) {
	var files []entity.MedicalFile
	err := db.Where("patient_id = ?", patientID).Order("uploaded_at DESC").Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *medicalFileRepository) FindByIDAndPatient(db *gorm.DB, id uuid.UUID, patientID uuid.UUID) (*entity.MedicalFile, error) {
	var file entity.MedicalFile
	err := db.Where("id = ? AND patient_id = ?", id, patientID).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *medicalFileRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.MedicalFile{}).Error
}
