package leave_test

import (
	"context"
	"sync"
	"testing"

	"leaveflow/internal/balance"
	balanceerrors "leaveflow/internal/balance/errors"
	"leaveflow/internal/domain"
	"leaveflow/internal/leave"
	leaveerrors "leaveflow/internal/leave/errors"
	"leaveflow/internal/shared/testdb"
	"leaveflow/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workflow struct {
	db       testdb.DB
	ledger   balance.Ledger
	service  leave.Service
	admin    domain.Caller
	employee domain.Caller
}

func seedUser(t *testing.T, db testdb.DB, role domain.Role) domain.Caller {
	t.Helper()
	u := user.User{
		ID:         uuid.New(),
		Name:       "User " + string(role),
		Email:      uuid.NewString() + "@company.com",
		Password:   "hash",
		Department: "Engineering",
		Role:       string(role),
	}
	require.NoError(t, db.Gorm.Create(&u).Error)
	return domain.Caller{UserID: u.ID, Role: role}
}

func newWorkflow(t *testing.T) *workflow {
	t.Helper()
	db := testdb.Open(t)
	ledger := balance.NewLedger(balance.NewRepository(db.Gorm))
	w := &workflow{
		db:       db,
		ledger:   ledger,
		service:  leave.NewService(db.SQL, leave.NewRepository(db.Gorm), ledger),
		admin:    seedUser(t, db, domain.RoleAdmin),
		employee: seedUser(t, db, domain.RoleEmployee),
	}
	require.NoError(t, ledger.InitializeBalances(context.Background(), w.employee.UserID))
	return w
}

func (w *workflow) submit(t *testing.T, start, end string) leave.LeaveResponse {
	t.Helper()
	res, err := w.service.Submit(context.Background(), w.employee, leave.SubmitLeaveRequest{
		LeaveType: "Annual", StartDate: start, EndDate: end,
	})
	require.NoError(t, err)
	return res
}

func (w *workflow) annual(t *testing.T) balance.Balance {
	t.Helper()
	b, err := w.ledger.Get(context.Background(), w.employee.UserID, domain.LeaveTypeAnnual)
	require.NoError(t, err)
	return b
}

func TestWorkflow_ApproveThenOverdraw(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)

	first := w.submit(t, "2026-03-02", "2026-03-06")
	assert.Equal(t, 5, first.Days)
	assert.Equal(t, 0, w.annual(t).UsedDays, "submission must not touch the ledger")

	approved, err := w.service.Approve(ctx, w.admin, first.ID, "ok")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	assert.Equal(t, 10, w.annual(t).AvailableDays())

	_, err = w.service.Submit(ctx, w.employee, leave.SubmitLeaveRequest{
		LeaveType: "Annual", StartDate: "2026-04-01", EndDate: "2026-04-12",
	})
	require.ErrorIs(t, err, balanceerrors.ErrInsufficientBalance)
	available, _ := balanceerrors.AvailableDays(err)
	assert.Equal(t, 10, available)

	mine, err := w.service.GetMine(ctx, w.employee)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestWorkflow_DoubleApprove(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)
	req := w.submit(t, "2026-03-02", "2026-03-04")

	_, err := w.service.Approve(ctx, w.admin, req.ID, "")
	require.NoError(t, err)
	_, err = w.service.Approve(ctx, w.admin, req.ID, "")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)

	assert.Equal(t, 3, w.annual(t).UsedDays)
}

func TestWorkflow_TerminalStatesAreFinal(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)

	cancelled := w.submit(t, "2026-03-02", "2026-03-02")
	_, err := w.service.Cancel(ctx, w.employee, cancelled.ID)
	require.NoError(t, err)
	_, err = w.service.Approve(ctx, w.admin, cancelled.ID, "")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)
	_, err = w.service.Reject(ctx, w.admin, cancelled.ID, "")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)

	approved := w.submit(t, "2026-03-09", "2026-03-10")
	_, err = w.service.Approve(ctx, w.admin, approved.ID, "")
	require.NoError(t, err)
	_, err = w.service.Cancel(ctx, w.employee, approved.ID)
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)

	rejected := w.submit(t, "2026-03-16", "2026-03-16")
	res, err := w.service.Reject(ctx, w.admin, rejected.ID, "busy week")
	require.NoError(t, err)
	require.NotNil(t, res.DecidedAt)
	_, err = w.service.Approve(ctx, w.admin, rejected.ID, "")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)

	assert.Equal(t, 2, w.annual(t).UsedDays)

	got, err := w.service.GetByID(ctx, w.admin, rejected.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)
	require.NotNil(t, got.AdminComment)
	assert.Equal(t, "busy week", *got.AdminComment)
	require.NotNil(t, got.DecidedBy)
	assert.Equal(t, w.admin.UserID.String(), *got.DecidedBy)
}

func TestWorkflow_ConsumeFailureLeavesRequestPending(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)

	req := w.submit(t, "2026-03-02", "2026-03-11")
	require.NoError(t, w.ledger.SetCapacity(ctx, w.employee.UserID, domain.LeaveTypeAnnual, 4))

	_, err := w.service.Approve(ctx, w.admin, req.ID, "")
	require.ErrorIs(t, err, balanceerrors.ErrInsufficientBalance)

	got, err := w.service.GetByID(ctx, w.employee, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
	assert.Nil(t, got.DecidedBy)
	assert.Equal(t, 0, w.annual(t).UsedDays)
}

func TestWorkflow_ConcurrentApprovalsOfOneRequest(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)
	req := w.submit(t, "2026-03-02", "2026-03-05")

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.service.Approve(ctx, w.admin, req.ID, "")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, leaveerrors.ErrInvalidTransition)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 4, w.annual(t).UsedDays)
}

func TestWorkflow_ConcurrentApprovalsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)

	ids := []string{
		w.submit(t, "2026-03-02", "2026-03-07").ID,
		w.submit(t, "2026-04-01", "2026-04-06").ID,
		w.submit(t, "2026-05-04", "2026-05-09").ID,
	}

	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = w.service.Approve(ctx, w.admin, id, "")
		}(i, id)
	}
	wg.Wait()

	approved := 0
	for _, err := range errs {
		if err == nil {
			approved++
			continue
		}
		assert.ErrorIs(t, err, balanceerrors.ErrInsufficientBalance)
	}
	assert.Equal(t, 2, approved)

	b := w.annual(t)
	assert.Equal(t, 12, b.UsedDays)
	assert.LessOrEqual(t, b.UsedDays, b.TotalDays)
}

func TestWorkflow_CancelByOtherEmployee(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow(t)
	req := w.submit(t, "2026-03-02", "2026-03-02")

	intruder := seedUser(t, w.db, domain.RoleEmployee)
	_, err := w.service.Cancel(ctx, intruder, req.ID)
	assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)

	_, err = w.service.GetByID(ctx, intruder, req.ID)
	assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)
}
