package dto

import "time"

// Request DTOs

type ScheduleRuleInput struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"` // Monday = 0
	StartTime string `json:"start_time" validate:"required"`     // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`       // Format: HH:MM
}

// SetScheduleRequest replaces a doctor's whole weekly schedule.
// Days not listed mean "not available".
type SetScheduleRequest struct {
	Rules []ScheduleRuleInput `json:"rules" validate:"dive"`
}

type CreateBlockedTimeRequest struct {
	StartAt time.Time `json:"start_at" validate:"required"`
	EndAt   time.Time `json:"end_at" validate:"required"`
	Reason  string    `json:"reason" validate:"max=500"`
}

// Response DTOs

type ScheduleRuleResponse struct {
	ID        int    `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

type ScheduleResponse struct {
	Rules []ScheduleRuleResponse `json:"rules"`
	Total int                    `json:"total"`
}

// TimeSlot is a derived bookable slot start. Slots are recomputed on every
// query and never persisted.
type TimeSlot struct {
	Time        string `json:"time"` // Format: HH:MM
	IsAvailable bool   `json:"is_available"`
}

type SlotListResponse struct {
	DoctorID string     `json:"doctor_id"`
	Date     string     `json:"date"`
	Slots    []TimeSlot `json:"slots"`
	Total    int        `json:"total"`
}

type BlockedTimeResponse struct {
	ID      int       `json:"id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Reason  string    `json:"reason,omitempty"`
}

type BlockedTimeListResponse struct {
	Blocked []BlockedTimeResponse `json:"blocked"`
	Total   int                   `json:"total"`
}
