package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"leaveflow/internal/balance"
	balanceerrors "leaveflow/internal/balance/errors"
	"leaveflow/internal/domain"
	leaveerrors "leaveflow/internal/leave/errors"
	"leaveflow/internal/shared/apperror"
	"leaveflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the leave request lifecycle. Every status change is a
// compare-and-set on the stored status, so concurrent decisions on one
// request resolve to a single winner.
type Service interface {
	Submit(ctx context.Context, caller domain.Caller, req SubmitLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, caller domain.Caller, id string) (LeaveResponse, error)
	Approve(ctx context.Context, caller domain.Caller, id, comment string) (LeaveResponse, error)
	Reject(ctx context.Context, caller domain.Caller, id, comment string) (LeaveResponse, error)
	GetMine(ctx context.Context, caller domain.Caller) ([]LeaveResponse, error)
	GetByID(ctx context.Context, caller domain.Caller, id string) (LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger balance.Ledger
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, ledger balance.Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, ledger: ledger, logger: l}
}

func (s *service) Submit(ctx context.Context, caller domain.Caller, req SubmitLeaveRequest) (LeaveResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if !caller.Authenticated() {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}

	leaveType, startDate, endDate, days, err := validateSubmitRequest(req)
	if err != nil {
		l.Warn("submit leave validation failed", zap.String("user_id", caller.UserID.String()), zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	available, err := s.ledger.WithTx(tx).AvailableDays(ctx, caller.UserID, leaveType)
	if err != nil {
		if !errors.Is(err, balanceerrors.ErrBalanceNotFound) {
			l.Error("submit leave balance lookup failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		available = 0
	}
	if available < days {
		l.Info("submit leave insufficient balance",
			zap.String("user_id", caller.UserID.String()),
			zap.String("leave_type", leaveType.String()),
			zap.Int("requested", days),
			zap.Int("available", available),
		)
		return LeaveResponse{}, balanceerrors.InsufficientBalance(leaveType.String(), available)
	}

	lr := &LeaveRequest{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		LeaveType: leaveType.String(),
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    domain.LeaveStatusPending.String(),
		AppliedOn: time.Now().UTC(),
	}
	if err := s.repo.WithTx(tx).Create(ctx, lr); err != nil {
		l.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l.Info("leave submitted",
		zap.String("leave_id", lr.ID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.String("leave_type", lr.LeaveType),
		zap.Int("days", days),
	)
	return ToResponse(*lr), nil
}

func (s *service) Cancel(ctx context.Context, caller domain.Caller, id string) (LeaveResponse, error) {
	if !caller.Authenticated() {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}
	return s.transition(ctx, caller, id, domain.LeaveActionCancel, nil)
}

func (s *service) Approve(ctx context.Context, caller domain.Caller, id, comment string) (LeaveResponse, error) {
	if !caller.Authenticated() {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return LeaveResponse{}, leaveerrors.ErrAdminOnly
	}
	return s.transition(ctx, caller, id, domain.LeaveActionApprove, &comment)
}

func (s *service) Reject(ctx context.Context, caller domain.Caller, id, comment string) (LeaveResponse, error) {
	if !caller.Authenticated() {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return LeaveResponse{}, leaveerrors.ErrAdminOnly
	}
	return s.transition(ctx, caller, id, domain.LeaveActionReject, &comment)
}

// transition applies action to a pending request inside one transaction.
// Approval consumes the request's days from the ledger on the same
// transaction, so a refused consumption leaves the request pending.
func (s *service) transition(ctx context.Context, caller domain.Caller, id string, action domain.LeaveAction, comment *string) (LeaveResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("leave transition requested",
		zap.String("leave_id", id),
		zap.String("actor_id", caller.UserID.String()),
		zap.String("action", string(action)),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("leave transition begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if action == domain.LeaveActionCancel && !caller.Owns(lr.UserID) {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}

	current := domain.LeaveStatus(lr.Status)
	next, err := current.Apply(action)
	if err != nil {
		l.Warn("leave transition refused",
			zap.String("leave_id", id),
			zap.String("status", current.String()),
			zap.String("action", string(action)),
		)
		return LeaveResponse{}, leaveerrors.InvalidTransition(action, current)
	}

	update := StatusUpdate{ID: id, From: current, To: next}
	if action != domain.LeaveActionCancel {
		now := time.Now().UTC()
		update.AdminComment = comment
		update.DecidedBy = &caller.UserID
		update.DecidedAt = &now
	}

	ok, err := qtx.UpdateStatus(ctx, update)
	if err != nil {
		l.Error("leave transition persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !ok {
		// lost a race with another decision on the same request
		latest := current
		if fresh, findErr := qtx.FindByID(ctx, id); findErr == nil {
			latest = domain.LeaveStatus(fresh.Status)
		}
		l.Warn("leave transition lost race",
			zap.String("leave_id", id),
			zap.String("status", latest.String()),
			zap.String("action", string(action)),
		)
		return LeaveResponse{}, leaveerrors.InvalidTransition(action, latest)
	}

	if action == domain.LeaveActionApprove {
		if err := s.ledger.WithTx(tx).Consume(ctx, lr.UserID, domain.LeaveType(lr.LeaveType), lr.Days); err != nil {
			l.Warn("leave approval consume failed",
				zap.String("leave_id", id),
				zap.String("user_id", lr.UserID.String()),
				zap.Int("days", lr.Days),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error("leave transition commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	lr.Status = next.String()
	lr.AdminComment = update.AdminComment
	lr.DecidedBy = update.DecidedBy
	lr.DecidedAt = update.DecidedAt

	l.Info("leave transition success",
		zap.String("leave_id", id),
		zap.String("from", current.String()),
		zap.String("to", next.String()),
	)
	return ToResponse(*lr), nil
}

func (s *service) GetMine(ctx context.Context, caller domain.Caller) ([]LeaveResponse, error) {
	if !caller.Authenticated() {
		return nil, apperror.ErrUnauthorized
	}

	leaves, err := s.repo.FindAllByUser(ctx, caller.UserID.String())
	if err != nil {
		return nil, err
	}
	return ToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, caller domain.Caller, id string) (LeaveResponse, error) {
	if !caller.Authenticated() {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !caller.IsAdmin() && !caller.Owns(lr.UserID) {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}
	return ToResponse(*lr), nil
}

func validateSubmitRequest(req SubmitLeaveRequest) (domain.LeaveType, time.Time, time.Time, int, error) {
	leaveType, ok := domain.ParseLeaveType(strings.TrimSpace(req.LeaveType))
	if !ok {
		return "", time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidLeaveType
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return "", time.Time{}, time.Time{}, 0, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return "", time.Time{}, time.Time{}, 0, err
	}
	days := CountDays(startDate, endDate)
	if days < 1 {
		return "", time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidDateRange
	}
	return leaveType, startDate, endDate, days, nil
}

// CountDays is the inclusive calendar day count from start to end. It is
// zero or negative when end is before start.
func CountDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return err
}
