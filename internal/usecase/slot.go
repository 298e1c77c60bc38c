package usecase

import (
	"time"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
)

// slotInterval is the fixed length of a bookable slot.
const slotInterval = 30 * time.Minute

// mondayDayOfWeek maps Go's Sunday=0 weekday to the Monday=0 convention
// used by availability rules.
func mondayDayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// parseClock parses an "HH:MM" wall-clock string.
func parseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}

// dayBounds returns the civil midnight starting date's day and the next
// civil midnight. Built from calendar components, not a 24h offset, so the
// bounds stay correct on days shortened or stretched by a DST transition.
func dayBounds(date time.Time) (time.Time, time.Time) {
	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	next := time.Date(year, month, day+1, 0, 0, 0, 0, date.Location())
	return start, next
}

// computeSlots derives the bookable slot list for one doctor on one date.
// Slots start at the rule's start time and advance in fixed increments; a
// slot whose start would reach or pass the rule's end time is not emitted.
// A slot is excluded when a booked appointment starts at the same
// hour and minute, when it falls inside a blocked interval, or when the
// date is today and the slot start is already in the past. Slots are
// never stored; callers recompute on every query.
func computeSlots(rule *entity.AvailabilityRule, booked []time.Time, blocked []entity.BlockedTime, date, now time.Time) []dto.TimeSlot {
	slots := []dto.TimeSlot{}
	if rule == nil || !rule.IsActive {
		return slots
	}

	start, err := parseClock(rule.StartTime)
	if err != nil {
		return slots
	}
	end, err := parseClock(rule.EndTime)
	if err != nil {
		return slots
	}

	year, month, day := date.Date()
	cur := time.Date(year, month, day, start.Hour(), start.Minute(), 0, 0, date.Location())
	dayEnd := time.Date(year, month, day, end.Hour(), end.Minute(), 0, 0, date.Location())

	today := now.Year() == year && now.Month() == month && now.Day() == day

	for cur.Before(dayEnd) {
		available := true

		if today && cur.Before(now) {
			available = false
		}

		if available {
			for _, b := range booked {
				if b.Hour() == cur.Hour() && b.Minute() == cur.Minute() {
					available = false
					break
				}
			}
		}

		if available {
			slotEnd := cur.Add(slotInterval)
			for i := range blocked {
				if blocked[i].Overlaps(cur, slotEnd) {
					available = false
					break
				}
			}
		}

		if available {
			slots = append(slots, dto.TimeSlot{
				Time:        cur.Format("15:04"),
				IsAvailable: true,
			})
		}

		cur = cur.Add(slotInterval)
	}

	return slots
}
