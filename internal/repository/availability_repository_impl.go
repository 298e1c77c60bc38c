package repository

import (
	"errors"
	"time"

	"clinic-api/internal/domain/entity"
	domainRepo "clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityRuleRepository struct{}

func NewAvailabilityRuleRepository() domainRepo.AvailabilityRuleRepository {
	return &availabilityRuleRepository{}
}

func (r *availabilityRuleRepository) FindActiveRule(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.AvailabilityRule, error) {
	var rule entity.AvailabilityRule
	err := db.Where("doctor_id = ? AND day_of_week = ? AND is_active = ?", doctorID, dayOfWeek, true).
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *availabilityRuleRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityRule, error) {
	var rules []entity.AvailabilityRule
	err := db.Where("doctor_id = ?", doctorID).Order("day_of_week ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *availabilityRuleRepository) ReplaceForDoctor(tx *gorm.DB, doctorID uuid.UUID, rules []entity.AvailabilityRule) error {
	if err := tx.Where("doctor_id = ?", doctorID).Delete(&entity.AvailabilityRule{}).Error; err != nil {
		return err
	}
	if len(rules) == 0 {
		return nil
	}
	for i := range rules {
		rules[i].DoctorID = doctorID
	}
	return tx.Create(&rules).Error
}

type blockedTimeRepository struct{}

func NewBlockedTimeRepository() domainRepo.BlockedTimeRepository {
	return &blockedTimeRepository{}
}

func (r *blockedTimeRepository) Create(db *gorm.DB, blocked *entity.BlockedTime) error {
	return db.Create(blocked).Error
}

func (r *blockedTimeRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.BlockedTime, error) {
	var blocks []entity.BlockedTime
	err := db.Where("doctor_id = ?", doctorID).Order("start_at ASC").Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *blockedTimeRepository) FindOverlapping(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.BlockedTime, error) {
	var blocks []entity.BlockedTime
	err := db.Where("doctor_id = ? AND start_at < ? AND end_at > ?", doctorID, to, from).
		Order("start_at ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *blockedTimeRepository) Delete(db *gorm.DB, doctorID uuid.UUID, id int) (int64, error) {
	result := db.Where("id = ? AND doctor_id = ?", id, doctorID).Delete(&entity.BlockedTime{})
	return result.RowsAffected, result.Error
}
