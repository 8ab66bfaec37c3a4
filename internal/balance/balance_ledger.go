package balance

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	balanceerrors "leaveflow/internal/balance/errors"
	"leaveflow/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Ledger is the only writer of leave_balance. used_days moves only through
// Consume and total_days only through SetCapacity.
//
//go:generate mockgen -source=balance_ledger.go -destination=mock/balance_ledger_mock.go -package=mock
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	InitializeBalances(ctx context.Context, userID uuid.UUID) error
	AvailableDays(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType) (int, error)
	Consume(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType, days int) error
	SetCapacity(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType, totalDays int) error
	Get(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType) (Balance, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Balance, error)
}

type ledger struct {
	repo   Repository
	logger *zap.Logger
}

func NewLedger(repo Repository, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("balance.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.ledger")
	}
	return &ledger{repo: repo, logger: l}
}

func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{repo: l.repo.WithTx(tx), logger: l.logger}
}

func (l *ledger) InitializeBalances(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return balanceerrors.ErrInvalidUserID
	}

	types := domain.LeaveTypes()
	rows := make([]Balance, 0, len(types))
	for _, t := range types {
		rows = append(rows, Balance{
			ID:        uuid.New(),
			UserID:    userID,
			LeaveType: t.String(),
			TotalDays: t.DefaultTotalDays(),
			UsedDays:  0,
		})
	}

	if err := l.repo.CreateBatch(ctx, rows); err != nil {
		if isUniqueViolation(err) {
			return balanceerrors.ErrBalanceAlreadyInitialized
		}
		l.logger.Error("initialize balances failed", zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}

	l.logger.Debug("balances initialized", zap.String("user_id", userID.String()), zap.Int("types", len(rows)))
	return nil
}

func (l *ledger) AvailableDays(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType) (int, error) {
	b, err := l.Get(ctx, userID, leaveType)
	if err != nil {
		return 0, err
	}
	return b.AvailableDays(), nil
}

func (l *ledger) Consume(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType, days int) error {
	if !leaveType.Valid() {
		return balanceerrors.ErrInvalidLeaveType
	}
	if days <= 0 {
		return balanceerrors.ErrInvalidDays
	}

	ok, err := l.repo.IncrementUsedIfAvailable(ctx, userID.String(), leaveType.String(), days)
	if err != nil {
		l.logger.Error("consume balance failed",
			zap.String("user_id", userID.String()),
			zap.String("leave_type", leaveType.String()),
			zap.Error(err),
		)
		return err
	}
	if ok {
		return nil
	}

	// nothing updated: either the row is missing or it has too few days left
	available, err := l.AvailableDays(ctx, userID, leaveType)
	if err != nil {
		return err
	}
	l.logger.Warn("consume balance rejected",
		zap.String("user_id", userID.String()),
		zap.String("leave_type", leaveType.String()),
		zap.Int("requested", days),
		zap.Int("available", available),
	)
	return balanceerrors.InsufficientBalance(leaveType.String(), available)
}

func (l *ledger) SetCapacity(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType, totalDays int) error {
	if !leaveType.Valid() {
		return balanceerrors.ErrInvalidLeaveType
	}
	if totalDays < 0 {
		return balanceerrors.ErrInvalidTotalDays
	}

	ok, err := l.repo.UpdateTotalDays(ctx, userID.String(), leaveType.String(), totalDays)
	if err != nil {
		return err
	}
	if !ok {
		return balanceerrors.ErrBalanceNotFound
	}
	return nil
}

func (l *ledger) Get(ctx context.Context, userID uuid.UUID, leaveType domain.LeaveType) (Balance, error) {
	if !leaveType.Valid() {
		return Balance{}, balanceerrors.ErrInvalidLeaveType
	}

	b, err := l.repo.FindByUserAndType(ctx, userID.String(), leaveType.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Balance{}, balanceerrors.ErrBalanceNotFound
		}
		return Balance{}, err
	}
	return *b, nil
}

func (l *ledger) ListByUser(ctx context.Context, userID uuid.UUID) ([]Balance, error) {
	rows, err := l.repo.FindAllByUser(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	SortByLeaveType(rows)
	return rows, nil
}

// SortByLeaveType orders rows Annual, Sick, Casual, Maternity.
func SortByLeaveType(rows []Balance) {
	sort.SliceStable(rows, func(i, j int) bool {
		return domain.LeaveType(rows[i].LeaveType).Order() < domain.LeaveType(rows[j].LeaveType).Order()
	})
}
