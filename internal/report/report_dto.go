package report

import (
	"leaveflow/internal/balance"
	"leaveflow/internal/leave"
	"leaveflow/internal/user"
)

const (
	statusFilterQuery = "status"
	statusFilterAll   = "all"
)

type DashboardResponse struct {
	Role         string                    `json:"role"`
	Balances     []balance.BalanceResponse `json:"balances"`
	Recent       []leave.LeaveResponse     `json:"recent_requests"`
	PendingCount int64                     `json:"pending_count"`
	Stats        *AdminStats               `json:"stats,omitempty"`
}

type AdminStats struct {
	EmployeeCount int64 `json:"employee_count"`
	ApprovedCount int64 `json:"approved_count"`
}

type EmployeeSummaryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	AvailableDays int    `json:"available_days"`
}

type EmployeeDetailResponse struct {
	Employee user.UserResponse         `json:"employee"`
	Balances []balance.BalanceResponse `json:"balances"`
	Leaves   []leave.LeaveResponse     `json:"leaves"`
}

func toSummaryResponse(rows []EmployeeSummary) []EmployeeSummaryResponse {
	resp := make([]EmployeeSummaryResponse, len(rows))
	for i, r := range rows {
		resp[i] = EmployeeSummaryResponse{
			ID:            r.ID.String(),
			Name:          r.Name,
			Email:         r.Email,
			Department:    r.Department,
			TotalDays:     r.TotalDays,
			UsedDays:      r.UsedDays,
			AvailableDays: r.TotalDays - r.UsedDays,
		}
	}
	return resp
}
