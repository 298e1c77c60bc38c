package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-api/internal/converter"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"
	"clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDayOfWeek    = errors.New("day_of_week must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange    = errors.New("start_time must be before end_time")
	ErrDuplicateDay        = errors.New("duplicate day_of_week in schedule")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrBlockedTimeNotFound = errors.New("blocked time not found")
)

type AvailabilityUsecase interface {
	GetSchedule(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleResponse, error)
	SetSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.SetScheduleRequest) (*dto.ScheduleResponse, error)
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.SlotListResponse, error)
	AddBlockedTime(ctx context.Context, doctorID uuid.UUID, req *dto.CreateBlockedTimeRequest) (*dto.BlockedTimeResponse, error)
	ListBlockedTimes(ctx context.Context, doctorID uuid.UUID) (*dto.BlockedTimeListResponse, error)
	RemoveBlockedTime(ctx context.Context, doctorID uuid.UUID, blockedID int) error
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	ruleRepo     repository.AvailabilityRuleRepository
	blockedRepo  repository.BlockedTimeRepository
	appointRepo  repository.AppointmentRepository
	auditService service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ruleRepo repository.AvailabilityRuleRepository,
	blockedRepo repository.BlockedTimeRepository,
	appointRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		ruleRepo:     ruleRepo,
		blockedRepo:  blockedRepo,
		appointRepo:  appointRepo,
		auditService: auditService,
	}
}

func (u *availabilityUsecase) GetSchedule(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleResponse, error) {
	rules, err := u.ruleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find availability rules: %+v", err)
		return nil, err
	}

	return converter.RulesToScheduleResponse(rules), nil
}

// SetSchedule replaces the doctor's entire weekly schedule in one
// transaction. Days missing from the request become unavailable.
func (u *availabilityUsecase) SetSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.SetScheduleRequest) (*dto.ScheduleResponse, error) {
	rules := make([]entity.AvailabilityRule, 0, len(req.Rules))
	seen := map[int]bool{}

	for _, in := range req.Rules {
		if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
			return nil, ErrInvalidDayOfWeek
		}
		if seen[in.DayOfWeek] {
			return nil, ErrDuplicateDay
		}
		seen[in.DayOfWeek] = true

		start, err := parseClock(in.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		end, err := parseClock(in.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if !start.Before(end) {
			return nil, ErrInvalidTimeRange
		}

		rules = append(rules, entity.AvailabilityRule{
			DoctorID:  doctorID,
			DayOfWeek: in.DayOfWeek,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			IsActive:  true,
		})
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ruleRepo.ReplaceForDoctor(tx, doctorID, rules); err != nil {
		u.log.Warnf("Failed to replace schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &doctorID, entity.AuditActionScheduleReplace, entity.JSON{
		"doctor_id":  doctorID.String(),
		"rule_count": len(rules),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	stored, err := u.ruleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to re-read schedule: %+v", err)
		return nil, err
	}

	return converter.RulesToScheduleResponse(stored), nil
}

// GetAvailableSlots computes the bookable slots for one doctor on one date.
// The result is derived on every call from the weekly rule, the doctor's
// blocked intervals and the appointments still holding their slot. An
// unknown doctor simply has no rules, so the response is an empty list
// rather than an error.
func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.SlotListResponse, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)

	rule, err := u.ruleRepo.FindActiveRule(db, doctorID, mondayDayOfWeek(date))
	if err != nil {
		u.log.Warnf("Failed to find availability rule: %+v", err)
		return nil, err
	}

	dayStart, nextDay := dayBounds(date)

	appointments, err := u.appointRepo.FindForDoctorInRange(db, doctorID, dayStart, nextDay.Add(-time.Nanosecond), []entity.AppointmentStatus{
		entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
	})
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	booked := make([]time.Time, len(appointments))
	for i := range appointments {
		booked[i] = appointments[i].AppointmentDate
	}

	blocked, err := u.blockedRepo.FindOverlapping(db, doctorID, dayStart, nextDay)
	if err != nil {
		u.log.Warnf("Failed to find blocked times: %+v", err)
		return nil, err
	}

	slots := computeSlots(rule, booked, blocked, date, time.Now())

	return &dto.SlotListResponse{
		DoctorID: doctorID.String(),
		Date:     dateStr,
		Slots:    slots,
		Total:    len(slots),
	}, nil
}

func (u *availabilityUsecase) AddBlockedTime(ctx context.Context, doctorID uuid.UUID, req *dto.CreateBlockedTimeRequest) (*dto.BlockedTimeResponse, error) {
	if !req.StartAt.Before(req.EndAt) {
		return nil, ErrInvalidTimeRange
	}

	blocked := &entity.BlockedTime{
		DoctorID: doctorID,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
		Reason:   req.Reason,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blockedRepo.Create(tx, blocked); err != nil {
		u.log.Warnf("Failed to create blocked time: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &doctorID, entity.AuditActionBlockedTimeCreate, entity.JSON{
		"blocked_time_id": blocked.ID,
		"start_at":        blocked.StartAt,
		"end_at":          blocked.EndAt,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BlockedTimeToResponse(blocked), nil
}

func (u *availabilityUsecase) ListBlockedTimes(ctx context.Context, doctorID uuid.UUID) (*dto.BlockedTimeListResponse, error) {
	blocked, err := u.blockedRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find blocked times: %+v", err)
		return nil, err
	}

	return converter.BlockedTimesToListResponse(blocked), nil
}

func (u *availabilityUsecase) RemoveBlockedTime(ctx context.Context, doctorID uuid.UUID, blockedID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.blockedRepo.Delete(tx, doctorID, blockedID)
	if err != nil {
		u.log.Warnf("Failed to delete blocked time: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrBlockedTimeNotFound
	}

	if err := u.auditService.Record(tx, &doctorID, entity.AuditActionBlockedTimeDelete, entity.JSON{
		"blocked_time_id": blockedID,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
