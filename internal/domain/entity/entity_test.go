package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.IsValid())
	assert.True(t, AppointmentStatusConfirmed.IsValid())
	assert.True(t, AppointmentStatusCompleted.IsValid())
	assert.True(t, AppointmentStatusCancelled.IsValid())
	assert.False(t, AppointmentStatus("booked").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentOccupiesSlot(t *testing.T) {
	cases := []struct {
		status   AppointmentStatus
		occupies bool
	}{
		{AppointmentStatusPending, true},
		{AppointmentStatusConfirmed, true},
		{AppointmentStatusCompleted, false},
		{AppointmentStatusCancelled, false},
	}

	for _, tc := range cases {
		a := &Appointment{Status: tc.status}
		assert.Equal(t, tc.occupies, a.OccupiesSlot(), "status %s", tc.status)
	}
}

func TestBlockedTimeOverlaps(t *testing.T) {
	block := &BlockedTime{
		StartAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	}

	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	}

	// Fully inside
	assert.True(t, block.Overlaps(at(10, 15), at(10, 45)))
	// Straddling the start
	assert.True(t, block.Overlaps(at(9, 45), at(10, 15)))
	// Straddling the end
	assert.True(t, block.Overlaps(at(10, 45), at(11, 15)))
	// Containing the block
	assert.True(t, block.Overlaps(at(9, 0), at(12, 0)))
	// Touching boundaries only, half-open semantics
	assert.False(t, block.Overlaps(at(9, 30), at(10, 0)))
	assert.False(t, block.Overlaps(at(11, 0), at(11, 30)))
	// Disjoint
	assert.False(t, block.Overlaps(at(8, 0), at(9, 0)))
}

func TestAvailabilityRuleDayName(t *testing.T) {
	names := map[int]string{
		0: "Monday",
		1: "Tuesday",
		2: "Wednesday",
		3: "Thursday",
		4: "Friday",
		5: "Saturday",
		6: "Sunday",
	}

	for day, want := range names {
		r := &AvailabilityRule{DayOfWeek: day}
		assert.Equal(t, want, r.DayName())
	}

	assert.Equal(t, "", (&AvailabilityRule{DayOfWeek: 7}).DayName())
	assert.Equal(t, "", (&AvailabilityRule{DayOfWeek: -1}).DayName())
}

func TestUserRoleHelpers(t *testing.T) {
	admin := &User{RoleID: RoleIDAdmin}
	doctor := &User{RoleID: RoleIDDoctor}
	patient := &User{RoleID: RoleIDPatient}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsDoctor())
	assert.True(t, doctor.IsDoctor())
	assert.False(t, doctor.IsAdmin())
	assert.False(t, patient.IsAdmin())
	assert.False(t, patient.IsDoctor())
}
