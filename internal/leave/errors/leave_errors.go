package leaveerrors

import (
	"fmt"
	"net/http"

	"leaveflow/internal/domain"
	"leaveflow/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave type must be one of Annual, Sick, Casual, Maternity",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must be on or after start date",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"you can only access your own leave requests",
		http.StatusForbidden,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only admins can decide leave requests",
		http.StatusForbidden,
	)
	ErrInvalidTransition = apperror.Wrap(
		domain.ErrInvalidTransition,
		apperror.CodeInvalidState,
		"leave request is no longer pending",
		http.StatusConflict,
	)
)

// InvalidTransition reports why action was refused for a request in
// current. It matches both ErrInvalidTransition and domain.ErrInvalidTransition
// under errors.Is.
func InvalidTransition(action domain.LeaveAction, current domain.LeaveStatus) *apperror.AppError {
	return ErrInvalidTransition.Derive(
		fmt.Sprintf("cannot %s a request that is %s", action, current),
		map[string]any{"status": current.String()},
	)
}
