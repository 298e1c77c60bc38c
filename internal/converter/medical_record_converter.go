package converter

import (
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
)

// MedicalNoteToResponse converts a MedicalNote entity to MedicalNoteResponse DTO
func MedicalNoteToResponse(note *entity.MedicalNote) *dto.MedicalNoteResponse {
	if note == nil {
		return nil
	}

	return &dto.MedicalNoteResponse{
		ID:            note.ID,
		PatientID:     note.PatientID,
		DoctorID:      note.DoctorID,
		AppointmentID: note.AppointmentID,
		Title:         note.Title,
		Content:       note.Content,
		CreatedAt:     note.CreatedAt,
	}
}

// MedicalNotesToResponses converts a slice of MedicalNote entities to MedicalNoteResponse DTOs
func MedicalNotesToResponses(notes []entity.MedicalNote) []dto.MedicalNoteResponse {
	responses := make([]dto.MedicalNoteResponse, len(notes))
	for i := range notes {
		responses[i] = *MedicalNoteToResponse(&notes[i])
	}
	return responses
}

// VitalSignToResponse converts a VitalSign entity to VitalSignResponse DTO
func VitalSignToResponse(vital *entity.VitalSign) *dto.VitalSignResponse {
	if vital == nil {
		return nil
	}

	return &dto.VitalSignResponse{
		ID:         vital.ID,
		PatientID:  vital.PatientID,
		DoctorID:   vital.DoctorID,
		TypeName:   vital.TypeName,
		Value:      vital.Value,
		Unit:       vital.Unit,
		MeasuredAt: vital.MeasuredAt,
	}
}

// VitalSignsToResponses converts a slice of VitalSign entities to VitalSignResponse DTOs
func VitalSignsToResponses(vitals []entity.VitalSign) []dto.VitalSignResponse {
	responses := make([]dto.VitalSignResponse, len(vitals))
	for i := range vitals {
		responses[i] = *VitalSignToResponse(&vitals[i])
	}
	return responses
}

// MedicalFileToResponse converts a MedicalFile entity to MedicalFileResponse DTO
func MedicalFileToResponse(file *entity.MedicalFile) *dto.MedicalFileResponse {
	if file == nil {
		return nil
	}

	return &dto.MedicalFileResponse{
		ID:          file.ID,
		PatientID:   file.PatientID,
		UploaderID:  file.UploaderID,
		FilePath:    file.FilePath,
		Description: file.Description,
		UploadedAt:  file.UploadedAt,
	}
}

// MedicalFilesToResponses converts a slice of MedicalFile entities to MedicalFileResponse DTOs
func MedicalFilesToResponses(files []entity.MedicalFile) []dto.MedicalFileResponse {
	responses := make([]dto.MedicalFileResponse, len(files))
	for i := range files {
		responses[i] = *MedicalFileToResponse(&files[i])
	}
	return responses
}
