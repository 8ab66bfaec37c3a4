package balance

import "leaveflow/internal/domain"

type UpdateCapacityRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	LeaveType string `json:"leave_type" binding:"required"`
	TotalDays *int   `json:"total_days" binding:"required,min=0"`
}

type BalanceResponse struct {
	UserID        string `json:"user_id"`
	LeaveType     string `json:"leave_type"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	AvailableDays int    `json:"available_days"`
	Color         string `json:"color"`
}

func ToResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		UserID:        b.UserID.String(),
		LeaveType:     b.LeaveType,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		AvailableDays: b.AvailableDays(),
		Color:         domain.LeaveType(b.LeaveType).Color(),
	}
}

func ToListResponse(rows []Balance) []BalanceResponse {
	resp := make([]BalanceResponse, len(rows))
	for i, b := range rows {
		resp[i] = ToResponse(b)
	}
	return resp
}
