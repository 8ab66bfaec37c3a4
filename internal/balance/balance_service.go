package balance

import (
	"context"
	"database/sql"

	balanceerrors "leaveflow/internal/balance/errors"
	"leaveflow/internal/domain"
	"leaveflow/internal/shared/apperror"
	"leaveflow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	GetMine(ctx context.Context, caller domain.Caller) ([]BalanceResponse, error)
	UpdateCapacity(ctx context.Context, caller domain.Caller, req UpdateCapacityRequest) (BalanceResponse, error)
}

type service struct {
	db     *sql.DB
	ledger Ledger
	logger *zap.Logger
}

func NewService(db *sql.DB, ledger Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{db: db, ledger: ledger, logger: l}
}

func (s *service) GetMine(ctx context.Context, caller domain.Caller) ([]BalanceResponse, error) {
	if !caller.Authenticated() {
		return nil, apperror.ErrUnauthorized
	}

	rows, err := s.ledger.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return ToListResponse(rows), nil
}

func (s *service) UpdateCapacity(ctx context.Context, caller domain.Caller, req UpdateCapacityRequest) (BalanceResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if !caller.Authenticated() {
		return BalanceResponse{}, apperror.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return BalanceResponse{}, balanceerrors.ErrForbidden
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return BalanceResponse{}, balanceerrors.ErrInvalidUserID
	}
	leaveType, ok := domain.ParseLeaveType(req.LeaveType)
	if !ok {
		return BalanceResponse{}, balanceerrors.ErrInvalidLeaveType
	}
	if req.TotalDays == nil || *req.TotalDays < 0 {
		return BalanceResponse{}, balanceerrors.ErrInvalidTotalDays
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update capacity begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qledger := s.ledger.WithTx(tx)
	if err := qledger.SetCapacity(ctx, userID, leaveType, *req.TotalDays); err != nil {
		l.Warn("update capacity failed",
			zap.String("user_id", req.UserID),
			zap.String("leave_type", req.LeaveType),
			zap.Error(err),
		)
		return BalanceResponse{}, err
	}

	b, err := qledger.Get(ctx, userID, leaveType)
	if err != nil {
		return BalanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("update capacity commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	l.Info("leave capacity updated",
		zap.String("admin_id", caller.UserID.String()),
		zap.String("user_id", req.UserID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("total_days", b.TotalDays),
		zap.Int("used_days", b.UsedDays),
	)
	return ToResponse(b), nil
}
