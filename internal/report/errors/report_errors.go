package reporterrors

import (
	"net/http"

	"leaveflow/internal/shared/apperror"
)

var (
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be all, pending, approved, rejected or cancelled",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only admins can view this report",
		http.StatusForbidden,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to build export",
		http.StatusInternalServerError,
	)
)
