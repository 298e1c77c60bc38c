package converter

import (
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
)

// RuleToResponse converts an AvailabilityRule entity to ScheduleRuleResponse DTO
func RuleToResponse(rule *entity.AvailabilityRule) *dto.ScheduleRuleResponse {
	if rule == nil {
		return nil
	}

	return &dto.ScheduleRuleResponse{
		ID:        rule.ID,
		DayOfWeek: rule.DayOfWeek,
		DayName:   rule.DayName(),
		StartTime: rule.StartTime,
		EndTime:   rule.EndTime,
		IsActive:  rule.IsActive,
	}
}

// RulesToScheduleResponse converts a doctor's rules to a ScheduleResponse DTO
func RulesToScheduleResponse(rules []entity.AvailabilityRule) *dto.ScheduleResponse {
	responses := make([]dto.ScheduleRuleResponse, len(rules))
	for i := range rules {
		responses[i] = *RuleToResponse(&rules[i])
	}
	return &dto.ScheduleResponse{
		Rules: responses,
		Total: len(responses),
	}
}

// BlockedTimeToResponse converts a BlockedTime entity to BlockedTimeResponse DTO
func BlockedTimeToResponse(blocked *entity.BlockedTime) *dto.BlockedTimeResponse {
	if blocked == nil {
		return nil
	}

	return &dto.BlockedTimeResponse{
		ID:      blocked.ID,
		StartAt: blocked.StartAt,
		EndAt:   blocked.EndAt,
		Reason:  blocked.Reason,
	}
}

// BlockedTimesToListResponse converts blocked intervals to a BlockedTimeListResponse DTO
func BlockedTimesToListResponse(blocked []entity.BlockedTime) *dto.BlockedTimeListResponse {
	responses := make([]dto.BlockedTimeResponse, len(blocked))
	for i := range blocked {
		responses[i] = *BlockedTimeToResponse(&blocked[i])
	}
	return &dto.BlockedTimeListResponse{
		Blocked: responses,
		Total:   len(responses),
	}
}
