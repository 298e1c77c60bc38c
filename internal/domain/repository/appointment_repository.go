package repository

import (
	"time"

	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	// FindForDoctorInRange returns the doctor's appointments with
	// appointment_date in [from, to] and status in statuses.
	FindForDoctorInRange(db *gorm.DB, doctorID uuid.UUID, from, to time.Time, statuses []entity.AppointmentStatus) ([]entity.Appointment, error)
	CountForDoctorAfter(db *gorm.DB, doctorID uuid.UUID, after time.Time, statuses []entity.AppointmentStatus) (int64, error)
	CountForDoctorInRange(db *gorm.DB, doctorID uuid.UUID, from, to time.Time, status entity.AppointmentStatus) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
