package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-api/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Schedule replacement validates every rule before touching the database,
// so the rejection paths are testable without a connection.
func newValidationOnlyUsecase() AvailabilityUsecase {
	log := logrus.New()
	return NewAvailabilityUsecase(nil, log, nil, nil, nil, nil)
}

func TestSetSchedule_RejectsDayOutOfRange(t *testing.T) {
	u := newValidationOnlyUsecase()

	for _, day := range []int{-1, 7, 42} {
		_, err := u.SetSchedule(context.Background(), uuid.New(), &dto.SetScheduleRequest{
			Rules: []dto.ScheduleRuleInput{
				{DayOfWeek: day, StartTime: "09:00", EndTime: "17:00"},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
	}
}

func TestSetSchedule_RejectsMalformedTimes(t *testing.T) {
	u := newValidationOnlyUsecase()

	cases := []dto.ScheduleRuleInput{
		{DayOfWeek: 0, StartTime: "9am", EndTime: "17:00"},
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "5pm"},
		{DayOfWeek: 0, StartTime: "09:60", EndTime: "17:00"},
		{DayOfWeek: 0, StartTime: "", EndTime: "17:00"},
	}

	for _, rule := range cases {
		_, err := u.SetSchedule(context.Background(), uuid.New(), &dto.SetScheduleRequest{
			Rules: []dto.ScheduleRuleInput{rule},
		})
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "rule %+v", rule)
	}
}

func TestSetSchedule_RejectsStartNotBeforeEnd(t *testing.T) {
	u := newValidationOnlyUsecase()

	for _, rule := range []dto.ScheduleRuleInput{
		{DayOfWeek: 0, StartTime: "17:00", EndTime: "09:00"},
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "09:00"},
	} {
		_, err := u.SetSchedule(context.Background(), uuid.New(), &dto.SetScheduleRequest{
			Rules: []dto.ScheduleRuleInput{rule},
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	}
}

func TestSetSchedule_RejectsDuplicateDays(t *testing.T) {
	u := newValidationOnlyUsecase()

	_, err := u.SetSchedule(context.Background(), uuid.New(), &dto.SetScheduleRequest{
		Rules: []dto.ScheduleRuleInput{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
			{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00"},
		},
	})
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func TestAddBlockedTime_RejectsInvertedInterval(t *testing.T) {
	u := newValidationOnlyUsecase()

	start := testDate().Add(10 * time.Hour)
	_, err := u.AddBlockedTime(context.Background(), uuid.New(), &dto.CreateBlockedTimeRequest{
		StartAt: start,
		EndAt:   start,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = u.AddBlockedTime(context.Background(), uuid.New(), &dto.CreateBlockedTimeRequest{
		StartAt: start,
		EndAt:   start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestGetAvailableSlots_RejectsMalformedDate(t *testing.T) {
	u := newValidationOnlyUsecase()

	for _, date := range []string{"03/02/2026", "2026-3-2x", "tomorrow", ""} {
		_, err := u.GetAvailableSlots(context.Background(), uuid.New(), date)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
	}
}
