package report

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"leaveflow/internal/balance"
	"leaveflow/internal/domain"
	"leaveflow/internal/leave"
	reporterrors "leaveflow/internal/report/errors"
	"leaveflow/internal/shared/apperror"
	"leaveflow/internal/shared/contextutil"
	"leaveflow/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const recentLimit = 8

// Service is read only. Nothing here writes to the ledger or to requests.
type Service interface {
	Dashboard(ctx context.Context, caller domain.Caller) (DashboardResponse, error)
	ListLeaves(ctx context.Context, caller domain.Caller, status string) ([]leave.LeaveResponse, error)
	ListEmployees(ctx context.Context, caller domain.Caller) ([]EmployeeSummaryResponse, error)
	GetEmployeeDetail(ctx context.Context, caller domain.Caller, id string) (EmployeeDetailResponse, error)
	ExportLeaves(ctx context.Context, caller domain.Caller, status string) (*bytes.Buffer, error)
}

type service struct {
	repo   Repository
	ledger balance.Ledger
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, ledger balance.Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		repo:   repo,
		ledger: ledger,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// ParseStatusFilter turns the status query value into a filter. Empty means
// pending and "all" means no filter.
func ParseStatusFilter(v string) (domain.LeaveStatus, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "":
		return domain.LeaveStatusPending, nil
	case statusFilterAll:
		return "", nil
	}
	status, ok := domain.ParseLeaveStatus(v)
	if !ok {
		return "", reporterrors.ErrInvalidStatusFilter
	}
	return status, nil
}

func (s *service) Dashboard(ctx context.Context, caller domain.Caller) (DashboardResponse, error) {
	if !caller.Authenticated() {
		return DashboardResponse{}, apperror.ErrUnauthorized
	}
	if caller.IsAdmin() {
		return s.adminDashboard(ctx, caller)
	}
	return s.employeeDashboard(ctx, caller)
}

func (s *service) employeeDashboard(ctx context.Context, caller domain.Caller) (DashboardResponse, error) {
	balances, err := s.ledger.ListByUser(ctx, caller.UserID)
	if err != nil {
		return DashboardResponse{}, err
	}

	own := LeaveFilter{UserID: caller.UserID.String()}
	recent, err := s.repo.FindLeaves(ctx, LeaveFilter{UserID: own.UserID, Limit: recentLimit})
	if err != nil {
		return DashboardResponse{}, err
	}

	own.Status = domain.LeaveStatusPending
	pending, err := s.repo.CountLeaves(ctx, own)
	if err != nil {
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		Role:         string(caller.Role),
		Balances:     balance.ToListResponse(balances),
		Recent:       leave.ToListResponse(recent),
		PendingCount: pending,
	}, nil
}

// adminDashboard collapses identical concurrent loads for the same admin.
func (s *service) adminDashboard(ctx context.Context, caller domain.Caller) (DashboardResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	key := "admin-dashboard:" + caller.UserID.String()

	v, err, shared := s.sf.Do(key, func() (interface{}, error) {
		balances, err := s.ledger.ListByUser(ctx, caller.UserID)
		if err != nil {
			return nil, err
		}
		recent, err := s.repo.FindLeaves(ctx, LeaveFilter{Limit: recentLimit})
		if err != nil {
			return nil, err
		}
		pending, err := s.repo.CountLeaves(ctx, LeaveFilter{Status: domain.LeaveStatusPending})
		if err != nil {
			return nil, err
		}
		approved, err := s.repo.CountLeaves(ctx, LeaveFilter{Status: domain.LeaveStatusApproved})
		if err != nil {
			return nil, err
		}
		employees, err := s.repo.CountUsersByRole(ctx, domain.RoleEmployee)
		if err != nil {
			return nil, err
		}

		return DashboardResponse{
			Role:         string(caller.Role),
			Balances:     balance.ToListResponse(balances),
			Recent:       leave.ToListResponse(recent),
			PendingCount: pending,
			Stats: &AdminStats{
				EmployeeCount: employees,
				ApprovedCount: approved,
			},
		}, nil
	})
	if err != nil {
		l.Error("admin dashboard failed", zap.Error(err))
		return DashboardResponse{}, err
	}
	if shared {
		l.Debug("admin dashboard shared", zap.String("admin_id", caller.UserID.String()))
	}

	return v.(DashboardResponse), nil
}

func (s *service) ListLeaves(ctx context.Context, caller domain.Caller, status string) ([]leave.LeaveResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	filter, err := ParseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindLeaves(ctx, LeaveFilter{Status: filter})
	if err != nil {
		return nil, err
	}
	return leave.ToListResponse(rows), nil
}

func (s *service) ListEmployees(ctx context.Context, caller domain.Caller) ([]EmployeeSummaryResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListEmployeeSummaries(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaryResponse(rows), nil
}

func (s *service) GetEmployeeDetail(ctx context.Context, caller domain.Caller, id string) (EmployeeDetailResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return EmployeeDetailResponse{}, err
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeDetailResponse{}, reporterrors.ErrInvalidEmployeeID
	}

	u, err := s.repo.FindUserByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeDetailResponse{}, reporterrors.ErrEmployeeNotFound
		}
		return EmployeeDetailResponse{}, err
	}

	balances, err := s.ledger.ListByUser(ctx, userID)
	if err != nil {
		return EmployeeDetailResponse{}, err
	}

	leaves, err := s.repo.FindLeaves(ctx, LeaveFilter{UserID: userID.String()})
	if err != nil {
		return EmployeeDetailResponse{}, err
	}

	return EmployeeDetailResponse{
		Employee: user.ToResponse(*u),
		Balances: balance.ToListResponse(balances),
		Leaves:   leave.ToListResponse(leaves),
	}, nil
}

func (s *service) ExportLeaves(ctx context.Context, caller domain.Caller, status string) (*bytes.Buffer, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	filter, err := ParseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindLeaves(ctx, LeaveFilter{Status: filter})
	if err != nil {
		return nil, err
	}

	buf, err := WriteLeavesWorkbook(rows)
	if err != nil {
		l.Error("leave export failed", zap.Int("rows", len(rows)), zap.Error(err))
		return nil, apperror.Wrap(err, reporterrors.ErrExportFailed.Code, reporterrors.ErrExportFailed.Message, reporterrors.ErrExportFailed.HTTPStatus)
	}

	l.Info("leave export built", zap.String("status", status), zap.Int("rows", len(rows)))
	return buf, nil
}

func requireAdmin(caller domain.Caller) error {
	if !caller.Authenticated() {
		return apperror.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return reporterrors.ErrAdminOnly
	}
	return nil
}
