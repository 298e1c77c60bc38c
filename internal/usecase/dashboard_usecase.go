package usecase

import (
	"context"
	"time"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, doctorID uuid.UUID) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	appointRepo repository.AppointmentRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		appointRepo: appointRepo,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, doctorID uuid.UUID) (*dto.DashboardResponse, error) {
	db := u.db.WithContext(ctx)
	now := time.Now()

	totalPatients, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	upcoming, err := u.appointRepo.CountForDoctorAfter(db, doctorID, now, []entity.AppointmentStatus{
		entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
	})
	if err != nil {
		u.log.Warnf("Failed to count upcoming appointments: %+v", err)
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	completedToday, err := u.appointRepo.CountForDoctorInRange(db, doctorID, dayStart, dayEnd, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to count completed appointments: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalPatients:        totalPatients,
		UpcomingAppointments: upcoming,
		CompletedToday:       completedToday,
	}, nil
}
