package usecase

import (
	"context"
	"errors"
	"io"

	"clinic-api/internal/converter"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"
	"clinic-api/internal/infrastructure/storage"
	"clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicalNoteNotFound = errors.New("medical note not found")
	ErrVitalSignNotFound   = errors.New("vital sign not found")
	ErrMedicalFileNotFound = errors.New("medical file not found")
)

type MedicalRecordUsecase interface {
	CreateNote(ctx context.Context, doctorID uuid.UUID, patientID uuid.UUID, req *dto.CreateMedicalNoteRequest) (*dto.MedicalNoteResponse, error)
	ListNotes(ctx context.Context, patientID uuid.UUID) (*dto.MedicalNoteListResponse, error)
	UpdateNote(ctx context.Context, patientID uuid.UUID, noteID int64, req *dto.UpdateMedicalNoteRequest) (*dto.MedicalNoteResponse, error)
	DeleteNote(ctx context.Context, patientID uuid.UUID, noteID int64) error

	CreateVitalSign(ctx context.Context, doctorID uuid.UUID, patientID uuid.UUID, req *dto.CreateVitalSignRequest) (*dto.VitalSignResponse, error)
	ListVitalSigns(ctx context.Context, patientID uuid.UUID) (*dto.VitalSignListResponse, error)
	UpdateVitalSign(ctx context.Context, patientID uuid.UUID, vitalID int64, req *dto.UpdateVitalSignRequest) (*dto.VitalSignResponse, error)
	DeleteVitalSign(ctx context.Context, patientID uuid.UUID, vitalID int64) error

	UploadFile(ctx context.Context, uploaderID uuid.UUID, patientID uuid.UUID, filename, description string, content io.Reader) (*dto.MedicalFileResponse, error)
	ListFiles(ctx context.Context, patientID uuid.UUID) (*dto.MedicalFileListResponse, error)
	DeleteFile(ctx context.Context, patientID uuid.UUID, fileID uuid.UUID) error
}

type medicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	noteRepo     repository.MedicalNoteRepository
	vitalRepo    repository.VitalSignRepository
	fileRepo     repository.MedicalFileRepository
	fileStore    storage.FileStore
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	noteRepo repository.MedicalNoteRepository,
	vitalRepo repository.VitalSignRepository,
	fileRepo repository.MedicalFileRepository,
	fileStore storage.FileStore,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		noteRepo:     noteRepo,
		vitalRepo:    vitalRepo,
		fileRepo:     fileRepo,
		fileStore:    fileStore,
		auditService: auditService,
	}
}

func (u *medicalRecordUsecase) requirePatient(db *gorm.DB, patientID uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return nil
}

func (u *medicalRecordUsecase) CreateNote(ctx context.Context, doctorID uuid.UUID, patientID uuid.UUID, req *dto.CreateMedicalNoteRequest) (*dto.MedicalNoteResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requirePatient(db, patientID); err != nil {
		return nil, err
	}

	note := &entity.MedicalNote{
		PatientID:     patientID,
		DoctorID:      doctorID,
		AppointmentID: req.AppointmentID,
		Title:         req.Title,
		Content:       req.Content,
	}

	if err := u.noteRepo.Create(db, note); err != nil {
		if isForeignKeyError(err, "appointment") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create medical note: %+v", err)
		return nil, err
	}

	return converter.MedicalNoteToResponse(note), nil
}

func (u *medicalRecordUsecase) ListNotes(ctx context.Context, patientID uuid.UUID) (*dto.MedicalNoteListResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requirePatient(db, patientID); err != nil {
		return nil, err
	}

	notes, err := u.noteRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list medical notes: %+v", err)
		return nil, err
	}

	return &dto.MedicalNoteListResponse{
		Notes: converter.MedicalNotesToResponses(notes),
		Total: len(notes),
	}, nil
}

func (u *medicalRecordUsecase) UpdateNote(ctx context.Context, patientID uuid.UUID, noteID int64, req *dto.UpdateMedicalNoteRequest) (*dto.MedicalNoteResponse, error) {
	db := u.db.WithContext(ctx)

	note, err := u.noteRepo.FindByIDAndPatient(db, noteID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find medical note: %+v", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrMedicalNoteNotFound
	}

	if req.Title != "" {
		note.Title = req.Title
	}
	if req.Content != "" {
		note.Content = req.Content
	}

	if err := u.noteRepo.Update(db, note); err != nil {
		u.log.Warnf("Failed to update medical note: %+v", err)
		return nil, err
	}

	return converter.MedicalNoteToResponse(note), nil
}

func (u *medicalRecordUsecase) DeleteNote(ctx context.Context, patientID uuid.UUID, noteID int64) error {
	db := u.db.WithContext(ctx)

	note, err := u.noteRepo.FindByIDAndPatient(db, noteID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find medical note: %+v", err)
		return err
	}
	if note == nil {
		return ErrMedicalNoteNotFound
	}

	if err := u.noteRepo.Delete(db, noteID); err != nil {
		u.log.Warnf("Failed to delete medical note: %+v", err)
		return err
	}

	return nil
}

func (u *medicalRecordUsecase) CreateVitalSign(ctx context.Context, doctorID uuid.UUID, patientID uuid.UUID, req *dto.CreateVitalSignRequest) (*dto.VitalSignResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requirePatient(db, patientID); err != nil {
		return nil, err
	}

	vital := &entity.VitalSign{
		PatientID: patientID,
		DoctorID:  &doctorID,
		TypeName:  req.TypeName,
		Value:     req.Value,
		Unit:      req.Unit,
	}

	if err := u.vitalRepo.Create(db, vital); err != nil {
		u.log.Warnf("Failed to create vital sign: %+v", err)
		return nil, err
	}

	return converter.VitalSignToResponse(vital), nil
}

func (u *medicalRecordUsecase) ListVitalSigns(ctx context.Context, patientID uuid.UUID) (*dto.VitalSignListResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requirePatient(db, patientID); err != nil {
		return nil, err
	}

	vitals, err := u.vitalRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list vital signs: %+v", err)
		return nil, err
	}

	return &dto.VitalSignListResponse{
		Vitals: converter.VitalSignsToResponses(vitals),
		Total:  len(vitals),
	}, nil
}

func (u *medicalRecordUsecase) UpdateVitalSign(ctx context.Context, patientID uuid.UUID, vitalID int64, req *dto.UpdateVitalSignRequest) (*dto.VitalSignResponse, error) {
	db := u.db.WithContext(ctx)

	vital, err := u.vitalRepo.FindByIDAndPatient(db, vitalID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find vital sign: %+v", err)
		return nil, err
	}
	if vital == nil {
		return nil, ErrVitalSignNotFound
	}

	if req.TypeName != "" {
		vital.TypeName = req.TypeName
	}
	if req.Value != "" {
		vital.Value = req.Value
	}
	if req.Unit != "" {
		vital.Unit = req.Unit
	}

	if err := u.vitalRepo.Update(db, vital); err != nil {
		u.log.Warnf("Failed to update vital sign: %+v", err)
		return nil, err
	}

	return converter.VitalSignToResponse(vital), nil
}

func (u *medicalRecordUsecase) DeleteVitalSign(ctx context.Context, patientID uuid.UUID, vitalID int64) error {
	db := u.db.WithContext(ctx)

	vital, err := u.vitalRepo.FindByIDAndPatient(db, vitalID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find vital sign: %+v", err)
		return err
	}
	if vital == nil {
		return ErrVitalSignNotFound
	}

	if err := u.vitalRepo.Delete(db, vitalID); err != nil {
		u.log.Warnf("Failed to delete vital sign: %+v", err)
		return err
	}

	return nil
}

// UploadFile stores the bytes first, then the metadata row. On a metadata
// failure the stored file is removed so the store holds no orphans.
func (u *medicalRecordUsecase) UploadFile(ctx context.Context, uploaderID uuid.UUID, patientID uuid.UUID, filename, description string, content io.Reader) (*dto.MedicalFileResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requirePatient(db, patientID); err != nil {
		return nil, err
	}

	key, err := u.fileStore.Save(filename, content)
	if err != nil {
		u.log.Warnf("Failed to store file: %+v", err)
		return nil, err
	}

	file := &entity.MedicalFile{
		PatientID:   patientID,
		UploaderID:  uploaderID,
		FilePath:    key,
		Description: description,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.fileRepo.Create(tx, file); err != nil {
		u.log.Warnf("Failed to create medical file record: %+v", err)
		if removeErr := u.fileStore.Remove(key); removeErr != nil {
			u.log.Warnf("Failed to remove orphaned file %s: %+v", key, removeErr)
		}
		return nil, err
	}

	if err := u.auditService.Record(tx, &uploaderID, entity.AuditActionMedicalFileUpload, entity.JSON{
		"file_id":    file.ID.String(),
		"patient_id": patientID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		if removeErr := u.fileStore.Remove(key); removeErr != nil {
			u.log.Warnf("Failed to remove orphaned file %s: %+v", key, removeErr)
		}
		return nil, err
	}

	return converter.MedicalFileToResponse(file), nil
}

func (u *medicalRecordUsecase) ListFiles(ctx context.Context, patientID uuid.UUID) (*dto.MedicalFileListResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requirePatient(db, patientID); err != nil {
		return nil, err
	}

	files, err := u.fileRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list medical files: %+v", err)
		return nil, err
	}

	return &dto.MedicalFileListResponse{
		Files: converter.MedicalFilesToResponses(files),
		Total: len(files),
	}, nil
}

func (u *medicalRecordUsecase) DeleteFile(ctx context.Context, patientID uuid.UUID, fileID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	file, err := u.fileRepo.FindByIDAndPatient(db, fileID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find medical file: %+v", err)
		return err
	}
	if file == nil {
		return ErrMedicalFileNotFound
	}

	if err := u.fileRepo.Delete(db, fileID); err != nil {
		u.log.Warnf("Failed to delete medical file record: %+v", err)
		return err
	}

	if err := u.fileStore.Remove(file.FilePath); err != nil {
		u.log.Warnf("Failed to remove stored file %s: %+v", file.FilePath, err)
	}

	return nil
}
