package usecase

import (
	"context"
	"errors"

	"clinic-api/internal/converter"
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, userID uuid.UUID, notificationID int64) (*dto.NotificationResponse, error)
	DeleteNotification(ctx context.Context, userID uuid.UUID, notificationID int64) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) (*dto.NotificationListResponse, error) {
	notifications, err := u.notificationRepo.FindByUserID(u.db.WithContext(ctx), userID, unreadOnly, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
	}, nil
}

func (u *notificationUsecase) MarkAsRead(ctx context.Context, userID uuid.UUID, notificationID int64) (*dto.NotificationResponse, error) {
	db := u.db.WithContext(ctx)

	notification, err := u.notificationRepo.FindByIDAndUser(db, notificationID, userID)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if !notification.IsRead {
		notification.IsRead = true
		if err := u.notificationRepo.Update(db, notification); err != nil {
			u.log.Warnf("Failed to mark notification as read: %+v", err)
			return nil, err
		}
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) DeleteNotification(ctx context.Context, userID uuid.UUID, notificationID int64) error {
	db := u.db.WithContext(ctx)

	notification, err := u.notificationRepo.FindByIDAndUser(db, notificationID, userID)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}

	if err := u.notificationRepo.Delete(db, notificationID); err != nil {
		u.log.Warnf("Failed to delete notification: %+v", err)
		return err
	}

	return nil
}
