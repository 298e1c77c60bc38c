package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalNoteRequest struct {
	Title         string     `json:"title" validate:"required,max=100"`
	Content       string     `json:"content" validate:"required"`
	AppointmentID *uuid.UUID `json:"appointment_id" validate:"omitempty"`
}

type UpdateMedicalNoteRequest struct {
	Title   string `json:"title" validate:"omitempty,max=100"`
	Content string `json:"content" validate:"omitempty"`
}

type CreateVitalSignRequest struct {
	TypeName string `json:"type_name" validate:"required,max=100"`
	Value    string `json:"value" validate:"required,max=50"`
	Unit     string `json:"unit" validate:"omitempty,max=50"`
}

type UpdateVitalSignRequest struct {
	TypeName string `json:"type_name" validate:"omitempty,max=100"`
	Value    string `json:"value" validate:"omitempty,max=50"`
	Unit     string `json:"unit" validate:"omitempty,max=50"`
}

// Response DTOs

type MedicalNoteResponse struct {
	ID            int64      `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MedicalNoteListResponse struct {
	Notes []MedicalNoteResponse `json:"notes"`
	Total int                   `json:"total"`
}

type VitalSignResponse struct {
	ID         int64      `json:"id"`
	PatientID  uuid.UUID  `json:"patient_id"`
	DoctorID   *uuid.UUID `json:"doctor_id,omitempty"`
	TypeName   string     `json:"type_name"`
	Value      string     `json:"value"`
	Unit       string     `json:"unit,omitempty"`
	MeasuredAt time.Time  `json:"measured_at"`
}

type VitalSignListResponse struct {
	Vitals []VitalSignResponse `json:"vitals"`
	Total  int                 `json:"total"`
}

type MedicalFileResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	UploaderID  uuid.UUID `json:"uploader_id"`
	FilePath    string    `json:"file_path"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type MedicalFileListResponse struct {
	Files []MedicalFileResponse `json:"files"`
	Total int                   `json:"total"`
}
