package leave

import (
	"time"

	"leaveflow/internal/domain"
)

const dateLayout = "2006-01-02"

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=2000"`
}

type DecisionRequest struct {
	Comment string `json:"comment" binding:"max=2000"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Department   string  `json:"department,omitempty"`
	Email        string  `json:"email,omitempty"`
	LeaveType    string  `json:"leave_type"`
	Color        string  `json:"color"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment,omitempty"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	AppliedOn    string  `json:"applied_on"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		UserID:       l.UserID.String(),
		LeaveType:    l.LeaveType,
		Color:        domain.LeaveType(l.LeaveType).Color(),
		StartDate:    l.StartDate.Format(dateLayout),
		EndDate:      l.EndDate.Format(dateLayout),
		Days:         l.Days,
		Reason:       l.Reason,
		Status:       l.Status,
		AdminComment: l.AdminComment,
		AppliedOn:    l.AppliedOn.UTC().Format(time.RFC3339),
	}
	if l.User != nil {
		resp.EmployeeName = l.User.Name
		resp.Department = l.User.Department
		resp.Email = l.User.Email
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func ToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = ToResponse(l)
	}
	return resp
}
