package usecase

import (
	"context"
	"errors"

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
	ErrInvalidRole    = errors.New("invalid role id")
	ErrSelfRoleChange = errors.New("admins cannot change their own role")
)

type AdminUsecase interface {
	ListUsers(ctx context.Context, offset, limit int) (*dto.UserListResponse, error)
	UpdateUserRole(ctx context.Context, actorID uuid.UUID, targetID uuid.UUID, req *dto.UpdateUserRoleRequest) (*dto.UserResponse, error)
	ListAuditLogs(ctx context.Context, offset, limit int) (*dto.AuditLogListResponse, error)
}

type adminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	auditRepo    repository.AuditLogRepository
	auditService service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	auditRepo repository.AuditLogRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		auditRepo:    auditRepo,
		auditService: auditService,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context, offset, limit int) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// UpdateUserRole promotes or demotes a user. Admins cannot change their
// own role, so the system always keeps at least the acting admin.
func (u *adminUsecase) UpdateUserRole(ctx context.Context, actorID uuid.UUID, targetID uuid.UUID, req *dto.UpdateUserRoleRequest) (*dto.UserResponse, error) {
	if actorID == targetID {
		return nil, ErrSelfRoleChange
	}

	db := u.db.WithContext(ctx)

	role, err := u.roleRepo.FindByID(db, req.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrInvalidRole
	}

	user, err := u.userRepo.FindByID(db, targetID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldRoleID := user.RoleID
	user.RoleID = req.RoleID

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user role: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionUserRoleChange, entity.JSON{
		"user_id":     targetID.String(),
		"old_role_id": oldRoleID,
		"new_role_id": req.RoleID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	resp := converter.UserToResponse(user)
	resp.Role = role.RoleName
	return resp, nil
}

func (u *adminUsecase) ListAuditLogs(ctx context.Context, offset, limit int) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
