package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-api/internal/converter"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"
	"clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound            = errors.New("doctor not found")
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrNoPatientProfile          = errors.New("no patient record is linked to this account")
	ErrNotAppointmentOwner       = errors.New("appointment belongs to another patient")
	ErrInvalidStatus             = errors.New("invalid appointment status")
	ErrCancellationReasonMissing = errors.New("cancellation_reason is required when cancelling")
	ErrAppointmentImmutable      = errors.New("only pending appointments can be modified")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) error
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointRepo      repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	auditService     service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointRepo:      appointRepo,
		patientRepo:      patientRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		auditService:     auditService,
	}
}

func isStaff(roleID int) bool {
	return roleID == entity.RoleIDAdmin || roleID == entity.RoleIDDoctor
}

// CreateAppointment books a slot for the calling patient. The account must
// have a linked patient record; staff create appointments on behalf of
// patients through the patient endpoints instead.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, userID uuid.UUID, roleID int, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient by user: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrNoPatientProfile
	}

	doctor, err := u.userRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Status:          entity.AppointmentStatusPending,
		Reason:          req.Reason,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &userID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      req.DoctorID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient by user: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrNoPatientProfile
	}

	appointments, err := u.appointRepo.FindByPatientID(db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findVisible(ctx, userID, roleID, id)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findVisible(ctx, userID, roleID, id)
	if err != nil {
		return nil, err
	}

	// Patients may only reschedule while the appointment is still pending
	if !isStaff(roleID) && appointment.Status != entity.AppointmentStatusPending {
		return nil, ErrAppointmentImmutable
	}

	if req.AppointmentDate != nil {
		appointment.AppointmentDate = *req.AppointmentDate
	}
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Notes != "" {
		if !isStaff(roleID) {
			return nil, ErrNotAppointmentOwner
		}
		appointment.Notes = req.Notes
	}

	if err := u.appointRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// Cancelling requires a reason; confirming clears any stale one. A status
// change notifies the patient's linked account when one exists.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	newStatus := entity.AppointmentStatus(req.Status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	oldStatus := appointment.Status
	appointment.Status = newStatus

	switch newStatus {
	case entity.AppointmentStatusCancelled:
		if req.CancellationReason == "" {
			return nil, ErrCancellationReasonMissing
		}
		appointment.CancellationReason = req.CancellationReason
	case entity.AppointmentStatusConfirmed:
		appointment.CancellationReason = ""
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	if err := u.notifyStatusChange(tx, appointment); err != nil {
		return nil, err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionAppointmentStatus, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"old_status":     string(oldStatus),
		"new_status":     string(newStatus),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) error {
	if _, err := u.findVisible(ctx, userID, roleID, id); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.Record(tx, &userID, entity.AuditActionAppointmentDelete, entity.JSON{
		"appointment_id": id.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// findVisible loads an appointment and enforces the owner-or-staff rule.
func (u *appointmentUsecase) findVisible(ctx context.Context, userID uuid.UUID, roleID int, id uuid.UUID) (*entity.Appointment, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if isStaff(roleID) {
		return appointment, nil
	}

	patient, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient by user: %+v", err)
		return nil, err
	}
	if patient == nil || patient.ID != appointment.PatientID {
		return nil, ErrNotAppointmentOwner
	}

	return appointment, nil
}

func (u *appointmentUsecase) notifyStatusChange(tx *gorm.DB, appointment *entity.Appointment) error {
	patient, err := u.patientRepo.FindByID(tx, appointment.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient for notification: %+v", err)
		return err
	}
	if patient == nil || patient.UserID == nil {
		return nil
	}

	notification := &entity.Notification{
		UserID:  *patient.UserID,
		TypeID:  entity.NotificationTypeDoctorMessage,
		Message: fmt.Sprintf("Your appointment on %s is now %s", appointment.AppointmentDate.Format("2006-01-02 15:04"), appointment.Status),
	}

	if err := u.notificationRepo.Create(tx, notification); err != nil {
		u.log.Warnf("Failed to create notification: %+v", err)
		return err
	}

	return nil
}
