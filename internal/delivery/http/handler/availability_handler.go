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

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// GetMySchedule returns the calling doctor's weekly schedule
func (h *AvailabilityHandler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	schedule, err := h.availabilityUsecase.GetSchedule(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// SetMySchedule replaces the calling doctor's weekly schedule
// @Summary Replace weekly schedule
// @Description Replace the doctor's entire weekly schedule. Days not listed become unavailable.
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetScheduleRequest true "Schedule"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /availability/me [put]
func (h *AvailabilityHandler) SetMySchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.availabilityUsecase.SetSchedule(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDayOfWeek, usecase.ErrInvalidTimeFormat,
			usecase.ErrInvalidTimeRange, usecase.ErrDuplicateDay:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to set schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", schedule)
}

// GetSlots returns the bookable slots for a doctor on a date. This route is
// public so patients can browse availability before logging in. A doctor
// without a schedule, including an unknown doctor id, gets an empty list.
// @Summary Get available slots
// @Description Compute the 30 minute bookable slots for a doctor on a date
// @Tags Availability
// @Produce json
// @Param doctor_id query string true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /availability/slots [get]
func (h *AvailabilityHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	doctorIDStr := r.URL.Query().Get("doctor_id")
	dateStr := r.URL.Query().Get("date")

	if doctorIDStr == "" || dateStr == "" {
		response.BadRequest(w, "doctor_id and date query parameters are required")
		return
	}

	doctorID, err := uuid.Parse(doctorIDStr)
	if err != nil {
		response.BadRequest(w, "Invalid doctor_id")
		return
	}

	slots, err := h.availabilityUsecase.GetAvailableSlots(r.Context(), doctorID, dateStr)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

// AddBlockedTime marks the calling doctor unavailable for an interval
func (h *AvailabilityHandler) AddBlockedTime(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBlockedTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	blocked, err := h.availabilityUsecase.AddBlockedTime(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "start_at must be before end_at")
		default:
			response.InternalServerError(w, "Failed to add blocked time")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blocked time created successfully", blocked)
}

// ListBlockedTimes returns the calling doctor's blocked intervals
func (h *AvailabilityHandler) ListBlockedTimes(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	blocked, err := h.availabilityUsecase.ListBlockedTimes(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list blocked times")
		return
	}

	response.Success(w, http.StatusOK, "Blocked times retrieved successfully", blocked)
}

// RemoveBlockedTime deletes one of the calling doctor's blocked intervals
func (h *AvailabilityHandler) RemoveBlockedTime(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	blockedID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid blocked time ID")
		return
	}

	if err := h.availabilityUsecase.RemoveBlockedTime(r.Context(), doctorID, blockedID); err != nil {
		switch err {
		case usecase.ErrBlockedTimeNotFound:
			response.NotFound(w, "Blocked time not found")
		default:
			response.InternalServerError(w, "Failed to remove blocked time")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blocked time removed successfully", nil)
}
