package usecase

import (
	"testing"
	"time"

	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondayRule(start, end string) *entity.AvailabilityRule {
	return &entity.AvailabilityRule{
		ID:        1,
		DoctorID:  uuid.New(),
		DayOfWeek: 0,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
}

// 2026-03-02 is a Monday
func testDate() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
}

// a "now" well before the test date, so the past filter never triggers
func earlierNow() time.Time {
	return time.Date(2026, 2, 1, 8, 0, 0, 0, time.Local)
}

func TestComputeSlots_BasicWindow(t *testing.T) {
	slots := computeSlots(mondayRule("09:00", "11:00"), nil, nil, testDate(), earlierNow())

	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:30", slots[1].Time)
	assert.Equal(t, "10:00", slots[2].Time)
	assert.Equal(t, "10:30", slots[3].Time)
	for _, s := range slots {
		assert.True(t, s.IsAvailable)
	}
}

func TestComputeSlots_EndTimeIsExclusive(t *testing.T) {
	slots := computeSlots(mondayRule("09:00", "10:00"), nil, nil, testDate(), earlierNow())

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:30", slots[1].Time)
}

func TestComputeSlots_BookedSlotExcluded(t *testing.T) {
	date := testDate()
	booked := []time.Time{
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local),
	}

	slots := computeSlots(mondayRule("09:00", "11:00"), booked, nil, date, earlierNow())

	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.Time)
	}
}

func TestComputeSlots_BookedMatchesOnHourAndMinute(t *testing.T) {
	date := testDate()
	// Seconds on a stored appointment time must not affect matching
	booked := []time.Time{
		time.Date(2026, 3, 2, 9, 30, 45, 0, time.Local),
	}

	slots := computeSlots(mondayRule("09:00", "11:00"), booked, nil, date, earlierNow())

	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.NotEqual(t, "09:30", s.Time)
	}
}

func TestComputeSlots_NoRuleMeansNoSlots(t *testing.T) {
	slots := computeSlots(nil, nil, nil, testDate(), earlierNow())
	assert.Empty(t, slots)
}

func TestComputeSlots_InactiveRuleMeansNoSlots(t *testing.T) {
	rule := mondayRule("09:00", "11:00")
	rule.IsActive = false

	slots := computeSlots(rule, nil, nil, testDate(), earlierNow())
	assert.Empty(t, slots)
}

func TestComputeSlots_PastSlotsFilteredToday(t *testing.T) {
	date := testDate()
	now := time.Date(2026, 3, 2, 14, 5, 0, 0, time.Local)

	slots := computeSlots(mondayRule("09:00", "18:00"), nil, nil, date, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "14:30", slots[0].Time)
	assert.Equal(t, "17:30", slots[len(slots)-1].Time)
}

func TestComputeSlots_FutureDateKeepsMorningSlots(t *testing.T) {
	// The past filter only applies when the requested date is today
	date := testDate()
	now := time.Date(2026, 3, 1, 23, 0, 0, 0, time.Local)

	slots := computeSlots(mondayRule("09:00", "10:00"), nil, nil, date, now)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
}

func TestComputeSlots_BlockedIntervalExcluded(t *testing.T) {
	date := testDate()
	blocked := []entity.BlockedTime{
		{
			StartAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local),
			EndAt:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.Local),
		},
	}

	slots := computeSlots(mondayRule("09:00", "12:00"), nil, blocked, date, earlierNow())

	require.Len(t, slots, 4)
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.Time
	}
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, times)
}

func TestComputeSlots_BlockEndingAtSlotStartDoesNotExclude(t *testing.T) {
	date := testDate()
	blocked := []entity.BlockedTime{
		{
			StartAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
			EndAt:   time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local),
		},
	}

	slots := computeSlots(mondayRule("09:00", "11:00"), nil, blocked, date, earlierNow())

	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "10:30", slots[1].Time)
}

func TestComputeSlots_PartialBlockOverlapExcludesSlot(t *testing.T) {
	date := testDate()
	// Block covering only the last ten minutes of the 09:30 slot
	blocked := []entity.BlockedTime{
		{
			StartAt: time.Date(2026, 3, 2, 9, 50, 0, 0, time.Local),
			EndAt:   time.Date(2026, 3, 2, 9, 55, 0, 0, time.Local),
		},
	}

	slots := computeSlots(mondayRule("09:00", "10:30"), nil, blocked, date, earlierNow())

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "10:00", slots[1].Time)
}

func TestComputeSlots_OffsetStartKeepsAlignment(t *testing.T) {
	slots := computeSlots(mondayRule("09:15", "10:45"), nil, nil, testDate(), earlierNow())

	require.Len(t, slots, 3)
	assert.Equal(t, "09:15", slots[0].Time)
	assert.Equal(t, "09:45", slots[1].Time)
	assert.Equal(t, "10:15", slots[2].Time)
}

func TestComputeSlots_MalformedRuleTimes(t *testing.T) {
	assert.Empty(t, computeSlots(mondayRule("9am", "11:00"), nil, nil, testDate(), earlierNow()))
	assert.Empty(t, computeSlots(mondayRule("09:00", "eleven"), nil, nil, testDate(), earlierNow()))
}

func TestMondayDayOfWeek(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, mondayDayOfWeek(monday))
	assert.Equal(t, 2, mondayDayOfWeek(wednesday))
	assert.Equal(t, 6, mondayDayOfWeek(sunday))
}

func TestDayBounds(t *testing.T) {
	start, next := dayBounds(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), next)
}

func TestDayBounds_DSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 2026-03-08 loses an hour to DST; the day is 23 hours long
	start, next := dayBounds(time.Date(2026, 3, 8, 0, 0, 0, 0, loc))

	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), next)
	assert.Equal(t, 23*time.Hour, next.Sub(start))
}

func TestParseClock(t *testing.T) {
	parsed, err := parseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	_, err = parseClock("25:00")
	assert.Error(t, err)

	_, err = parseClock("2pm")
	assert.Error(t, err)
}
