package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/repository"
	"clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newScheduleTestUsecase wires the availability usecase against a throwaway
// sqlite database so the repository queries run for real. The schema mirrors
// the migrations in sqlite dialect; _loc=auto keeps timestamps in local time
// across the round trip.
func newScheduleTestUsecase(t *testing.T) (AvailabilityUsecase, *gorm.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "clinic_test.db") + "?_loc=auto"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range []string{
		`CREATE TABLE availability_rules (
			id integer PRIMARY KEY AUTOINCREMENT,
			doctor_id text NOT NULL,
			day_of_week integer NOT NULL,
			start_time text NOT NULL,
			end_time text NOT NULL,
			is_active numeric NOT NULL DEFAULT true,
			created_at datetime,
			updated_at datetime,
			CONSTRAINT idx_doctor_day UNIQUE (doctor_id, day_of_week)
		)`,
		`CREATE TABLE blocked_times (
			id integer PRIMARY KEY AUTOINCREMENT,
			doctor_id text NOT NULL,
			start_at datetime NOT NULL,
			end_at datetime NOT NULL,
			reason text,
			created_at datetime
		)`,
		`CREATE TABLE appointments (
			id text PRIMARY KEY,
			patient_id text NOT NULL,
			doctor_id text NOT NULL,
			appointment_date datetime NOT NULL,
			status text NOT NULL DEFAULT 'pending',
			reason text,
			notes text,
			cancellation_reason text,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE audit_logs (
			id integer PRIMARY KEY AUTOINCREMENT,
			user_id text,
			action text NOT NULL,
			metadata text,
			created_at datetime
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	log := logrus.New()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())

	u := NewAvailabilityUsecase(db, log,
		repository.NewAvailabilityRuleRepository(),
		repository.NewBlockedTimeRepository(),
		repository.NewAppointmentRepository(),
		auditService,
	)
	return u, db
}

func seedAppointment(t *testing.T, db *gorm.DB, doctorID uuid.UUID, at time.Time, status entity.AppointmentStatus) {
	t.Helper()
	require.NoError(t, repository.NewAppointmentRepository().Create(db, &entity.Appointment{
		ID:              uuid.New(),
		PatientID:       uuid.New(),
		DoctorID:        doctorID,
		AppointmentDate: at,
		Status:          status,
	}))
}

func TestSetSchedule_ReplaceRoundTrip(t *testing.T) {
	u, _ := newScheduleTestUsecase(t)
	doctorID := uuid.New()

	first, err := u.SetSchedule(context.Background(), doctorID, &dto.SetScheduleRequest{
		Rules: []dto.ScheduleRuleInput{
			{DayOfWeek: 2, StartTime: "13:00", EndTime: "17:00"},
			{DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, first.Total)

	// Stored rules come back sorted by day, not in request order
	schedule, err := u.GetSchedule(context.Background(), doctorID)
	require.NoError(t, err)
	require.Len(t, schedule.Rules, 2)
	assert.Equal(t, 0, schedule.Rules[0].DayOfWeek)
	assert.Equal(t, "09:00", schedule.Rules[0].StartTime)
	assert.Equal(t, 2, schedule.Rules[1].DayOfWeek)
	assert.Equal(t, "13:00", schedule.Rules[1].StartTime)

	// A second replace wipes every prior rule for the doctor
	second, err := u.SetSchedule(context.Background(), doctorID, &dto.SetScheduleRequest{
		Rules: []dto.ScheduleRuleInput{
			{DayOfWeek: 4, StartTime: "08:00", EndTime: "10:00"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, second.Total)
	assert.Equal(t, 4, second.Rules[0].DayOfWeek)

	schedule, err = u.GetSchedule(context.Background(), doctorID)
	require.NoError(t, err)
	require.Len(t, schedule.Rules, 1)
	assert.Equal(t, 4, schedule.Rules[0].DayOfWeek)
}

func TestSetSchedule_EmptyRequestClearsSchedule(t *testing.T) {
	u, _ := newScheduleTestUsecase(t)
	doctorID := uuid.New()

	_, err := u.SetSchedule(context.Background(), doctorID, &dto.SetScheduleRequest{
		Rules: []dto.ScheduleRuleInput{
			{DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00"},
		},
	})
	require.NoError(t, err)

	cleared, err := u.SetSchedule(context.Background(), doctorID, &dto.SetScheduleRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, cleared.Total)

	schedule, err := u.GetSchedule(context.Background(), doctorID)
	require.NoError(t, err)
	assert.Empty(t, schedule.Rules)
}

func TestGetAvailableSlots_OnlyHeldAppointmentsBlock(t *testing.T) {
	u, db := newScheduleTestUsecase(t)
	doctorID := uuid.New()

	// 2030-01-07 is a Monday, far in the future
	_, err := u.SetSchedule(context.Background(), doctorID, &dto.SetScheduleRequest{
		Rules: []dto.ScheduleRuleInput{
			{DayOfWeek: 0, StartTime: "09:00", EndTime: "11:00"},
		},
	})
	require.NoError(t, err)

	at := func(h, m int) time.Time {
		return time.Date(2030, 1, 7, h, m, 0, 0, time.Local)
	}
	seedAppointment(t, db, doctorID, at(10, 0), entity.AppointmentStatusConfirmed)
	seedAppointment(t, db, doctorID, at(9, 0), entity.AppointmentStatusCancelled)
	seedAppointment(t, db, doctorID, at(9, 30), entity.AppointmentStatusCompleted)

	resp, err := u.GetAvailableSlots(context.Background(), doctorID, "2030-01-07")
	require.NoError(t, err)

	// Cancelled and completed appointments free their slot; only the
	// confirmed 10:00 booking blocks
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "09:00", resp.Slots[0].Time)
	assert.Equal(t, "09:30", resp.Slots[1].Time)
	assert.Equal(t, "10:30", resp.Slots[2].Time)
}

func TestGetAvailableSlots_UnknownDoctorReturnsEmptyList(t *testing.T) {
	u, _ := newScheduleTestUsecase(t)

	resp, err := u.GetAvailableSlots(context.Background(), uuid.New(), "2030-01-07")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Slots)
}
