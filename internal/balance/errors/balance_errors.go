package balanceerrors

import (
	"errors"
	"fmt"
	"net/http"

	"leaveflow/internal/shared/apperror"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found",
		http.StatusNotFound,
	)
	ErrBalanceAlreadyInitialized = apperror.New(
		apperror.CodeConflict,
		"leave balances already initialized for this user",
		http.StatusConflict,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave type must be one of Annual, Sick, Casual, Maternity",
		http.StatusBadRequest,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"days must be at least 1",
		http.StatusBadRequest,
	)
	ErrInvalidTotalDays = apperror.New(
		apperror.CodeInvalidInput,
		"total days cannot be negative",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"only admins can change leave capacity",
		http.StatusForbidden,
	)
)

// InsufficientBalance reports the exact remaining days of leaveType. The
// result matches ErrInsufficientBalance under errors.Is.
func InsufficientBalance(leaveType string, available int) *apperror.AppError {
	return ErrInsufficientBalance.Derive(
		fmt.Sprintf("only %d %s days remaining", available, leaveType),
		map[string]any{
			"leave_type":     leaveType,
			"available_days": available,
		},
	)
}

// AvailableDays extracts the remaining day count carried by an
// InsufficientBalance error.
func AvailableDays(err error) (int, bool) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Details == nil {
		return 0, false
	}
	v, ok := appErr.Details["available_days"].(int)
	return v, ok
}
