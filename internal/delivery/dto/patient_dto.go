package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FullName  string `json:"full_name" validate:"required,max=100"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female other"`
	BirthDate string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

type UpdatePatientRequest struct {
	FullName  string `json:"full_name" validate:"omitempty,max=100"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female other"`
	BirthDate string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Gender    string     `json:"gender,omitempty"`
	BirthDate string     `json:"birth_date,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
