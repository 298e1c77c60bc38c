package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/delivery/http/middleware"
	"clinic-api/internal/usecase"
	"clinic-api/pkg/response"
	"clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxUploadSize caps medical file uploads at 10 MB
const maxUploadSize = 10 << 20

type MedicalRecordHandler struct {
	medicalUsecase usecase.MedicalRecordUsecase
	validator      *validator.CustomValidator
}

func NewMedicalRecordHandler(medicalUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		medicalUsecase: medicalUsecase,
		validator:      validator,
	}
}

func patientIDFromPath(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func (h *MedicalRecordHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.CreateMedicalNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	note, err := h.medicalUsecase.CreateNote(r.Context(), doctorID, patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAppointmentNotFound:
			response.BadRequest(w, "Referenced appointment does not exist")
		default:
			response.InternalServerError(w, "Failed to create medical note")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical note created successfully", note)
}

func (h *MedicalRecordHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	notes, err := h.medicalUsecase.ListNotes(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list medical notes")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical notes retrieved successfully", notes)
}

func (h *MedicalRecordHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	noteID, err := strconv.ParseInt(mux.Vars(r)["noteId"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid note ID")
		return
	}

	var req dto.UpdateMedicalNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	note, err := h.medicalUsecase.UpdateNote(r.Context(), patientID, noteID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalNoteNotFound:
			response.NotFound(w, "Medical note not found")
		default:
			response.InternalServerError(w, "Failed to update medical note")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical note updated successfully", note)
}

func (h *MedicalRecordHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	noteID, err := strconv.ParseInt(mux.Vars(r)["noteId"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid note ID")
		return
	}

	if err := h.medicalUsecase.DeleteNote(r.Context(), patientID, noteID); err != nil {
		switch err {
		case usecase.ErrMedicalNoteNotFound:
			response.NotFound(w, "Medical note not found")
		default:
			response.InternalServerError(w, "Failed to delete medical note")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical note deleted successfully", nil)
}

func (h *MedicalRecordHandler) CreateVitalSign(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.CreateVitalSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vital, err := h.medicalUsecase.CreateVitalSign(r.Context(), doctorID, patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create vital sign")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vital sign created successfully", vital)
}

func (h *MedicalRecordHandler) ListVitalSigns(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	vitals, err := h.medicalUsecase.ListVitalSigns(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list vital signs")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vital signs retrieved successfully", vitals)
}

func (h *MedicalRecordHandler) UpdateVitalSign(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	vitalID, err := strconv.ParseInt(mux.Vars(r)["vitalId"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid vital sign ID")
		return
	}

	var req dto.UpdateVitalSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vital, err := h.medicalUsecase.UpdateVitalSign(r.Context(), patientID, vitalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVitalSignNotFound:
			response.NotFound(w, "Vital sign not found")
		default:
			response.InternalServerError(w, "Failed to update vital sign")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vital sign updated successfully", vital)
}

func (h *MedicalRecordHandler) DeleteVitalSign(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	vitalID, err := strconv.ParseInt(mux.Vars(r)["vitalId"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid vital sign ID")
		return
	}

	if err := h.medicalUsecase.DeleteVitalSign(r.Context(), patientID, vitalID); err != nil {
		switch err {
		case usecase.ErrVitalSignNotFound:
			response.NotFound(w, "Vital sign not found")
		default:
			response.InternalServerError(w, "Failed to delete vital sign")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vital sign deleted successfully", nil)
}

// UploadFile accepts a multipart form with a "file" part and an optional
// "description" field
func (h *MedicalRecordHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	uploaderID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	description := r.FormValue("description")

	uploaded, err := h.medicalUsecase.UploadFile(r.Context(), uploaderID, patientID, header.Filename, description, file)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to upload file")
		}
		return
	}

	response.Success(w, http.StatusCreated, "File uploaded successfully", uploaded)
}

func (h *MedicalRecordHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	files, err := h.medicalUsecase.ListFiles(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list files")
		}
		return
	}

	response.Success(w, http.StatusOK, "Files retrieved successfully", files)
}

func (h *MedicalRecordHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	fileID, err := uuid.Parse(mux.Vars(r)["fileId"])
	if err != nil {
		response.BadRequest(w, "Invalid file ID")
		return
	}

	if err := h.medicalUsecase.DeleteFile(r.Context(), patientID, fileID); err != nil {
		switch err {
		case usecase.ErrMedicalFileNotFound:
			response.NotFound(w, "Medical file not found")
		default:
			response.InternalServerError(w, "Failed to delete file")
		}
		return
	}

	response.Success(w, http.StatusOK, "File deleted successfully", nil)
}
