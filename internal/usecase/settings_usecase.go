package usecase

import (
	"context"

	"clinic-api/internal/converter"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
	"clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SettingsUsecase interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.UserSettingsRepository
}

func NewSettingsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.UserSettingsRepository,
) SettingsUsecase {
	return &settingsUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
	}
}

// findOrCreate returns the user's settings row, creating the defaults on
// first access.
func (u *settingsUsecase) findOrCreate(db *gorm.DB, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := u.settingsRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user settings: %+v", err)
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.UserSettings{
		UserID:               userID,
		DarkMode:             false,
		Language:             "en",
		NotificationsEnabled: true,
	}
	if err := u.settingsRepo.Create(db, settings); err != nil {
		u.log.Warnf("Failed to create default settings: %+v", err)
		return nil, err
	}

	return settings, nil
}

func (u *settingsUsecase) GetSettings(ctx context.Context, userID uuid.UUID) (*dto.SettingsResponse, error) {
	settings, err := u.findOrCreate(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	return converter.SettingsToResponse(settings), nil
}

func (u *settingsUsecase) UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	db := u.db.WithContext(ctx)

	settings, err := u.findOrCreate(db, userID)
	if err != nil {
		return nil, err
	}

	if req.DarkMode != nil {
		settings.DarkMode = *req.DarkMode
	}
	if req.Language != "" {
		settings.Language = req.Language
	}
	if req.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *req.NotificationsEnabled
	}

	if err := u.settingsRepo.Update(db, settings); err != nil {
		u.log.Warnf("Failed to update user settings: %+v", err)
		return nil, err
	}

	return converter.SettingsToResponse(settings), nil
}
