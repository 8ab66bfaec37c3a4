package leave_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	balanceerrors "leaveflow/internal/balance/errors"
	"leaveflow/internal/domain"
	"leaveflow/internal/leave"
	leaveerrors "leaveflow/internal/leave/errors"
	"leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
	Error *apiError `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

type fakeLeaveService struct {
	submitFn  func(ctx context.Context, caller domain.Caller, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error)
	cancelFn  func(ctx context.Context, caller domain.Caller, id string) (leave.LeaveResponse, error)
	approveFn func(ctx context.Context, caller domain.Caller, id, comment string) (leave.LeaveResponse, error)
	rejectFn  func(ctx context.Context, caller domain.Caller, id, comment string) (leave.LeaveResponse, error)
	getMineFn func(ctx context.Context, caller domain.Caller) ([]leave.LeaveResponse, error)
	getByIDFn func(ctx context.Context, caller domain.Caller, id string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, caller domain.Caller, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	return f.submitFn(ctx, caller, req)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, caller domain.Caller, id string) (leave.LeaveResponse, error) {
	return f.cancelFn(ctx, caller, id)
}
func (f *fakeLeaveService) Approve(ctx context.Context, caller domain.Caller, id, comment string) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, caller, id, comment)
}
func (f *fakeLeaveService) Reject(ctx context.Context, caller domain.Caller, id, comment string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, caller, id, comment)
}
func (f *fakeLeaveService) GetMine(ctx context.Context, caller domain.Caller) ([]leave.LeaveResponse, error) {
	return f.getMineFn(ctx, caller)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, caller domain.Caller, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, caller, id)
}

func newLeaveRouter(svc leave.Service, caller domain.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := leave.NewHandler(svc)
	setCaller := func(c *gin.Context) { middleware.SetCaller(c, caller) }
	r.POST("/leaves", setCaller, h.Submit)
	r.GET("/leaves", setCaller, h.GetMine)
	r.GET("/leaves/:id", setCaller, h.GetByID)
	r.POST("/leaves/:id/cancel", setCaller, h.Cancel)
	r.POST("/admin/leaves/:id/approve", setCaller, h.Approve)
	r.POST("/admin/leaves/:id/reject", setCaller, h.Reject)
	return r
}

func jsonRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLeaveHandler_Submit(t *testing.T) {
	employee := domain.Caller{UserID: uuid.New(), Role: domain.RoleEmployee}

	t.Run("created", func(t *testing.T) {
		svc := &fakeLeaveService{
			submitFn: func(_ context.Context, caller domain.Caller, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, employee, caller)
				assert.Equal(t, "Annual", req.LeaveType)
				return leave.LeaveResponse{ID: uuid.NewString(), LeaveType: req.LeaveType, Days: 5, Status: "pending"}, nil
			},
		}
		w := httptest.NewRecorder()
		body := `{"leave_type":"Annual","start_date":"2026-03-02","end_date":"2026-03-06","reason":"trip"}`
		newLeaveRouter(svc, employee).ServeHTTP(w, jsonRequest(http.MethodPost, "/leaves", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
		var got leave.LeaveResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 5, got.Days)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("missing field", func(t *testing.T) {
		w := httptest.NewRecorder()
		newLeaveRouter(&fakeLeaveService{}, employee).ServeHTTP(w, jsonRequest(http.MethodPost, "/leaves", `{"start_date":"2026-03-02","end_date":"2026-03-02"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("insufficient balance carries available days", func(t *testing.T) {
		svc := &fakeLeaveService{
			submitFn: func(context.Context, domain.Caller, leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, balanceerrors.InsufficientBalance("Annual", 10)
			},
		}
		w := httptest.NewRecorder()
		body := `{"leave_type":"Annual","start_date":"2026-04-01","end_date":"2026-04-12"}`
		newLeaveRouter(svc, employee).ServeHTTP(w, jsonRequest(http.MethodPost, "/leaves", body))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INSUFFICIENT_BALANCE", env.Error.Code)
		assert.EqualValues(t, 10, env.Error.Details["available_days"])
	})

	t.Run("unexpected error hidden", func(t *testing.T) {
		svc := &fakeLeaveService{
			submitFn: func(context.Context, domain.Caller, leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, errors.New("disk full")
			},
		}
		w := httptest.NewRecorder()
		body := `{"leave_type":"Annual","start_date":"2026-04-01","end_date":"2026-04-01"}`
		newLeaveRouter(svc, employee).ServeHTTP(w, jsonRequest(http.MethodPost, "/leaves", body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, w.Body.String(), "disk full")
	})
}

func TestLeaveHandler_GetMine(t *testing.T) {
	employee := domain.Caller{UserID: uuid.New(), Role: domain.RoleEmployee}
	svc := &fakeLeaveService{
		getMineFn: func(context.Context, domain.Caller) ([]leave.LeaveResponse, error) {
			return []leave.LeaveResponse{{ID: "a"}, {ID: "b"}}, nil
		},
	}
	w := httptest.NewRecorder()
	newLeaveRouter(svc, employee).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(2), env.Meta.Total)
}

func TestLeaveHandler_GetByID(t *testing.T) {
	employee := domain.Caller{UserID: uuid.New(), Role: domain.RoleEmployee}
	svc := &fakeLeaveService{
		getByIDFn: func(_ context.Context, _ domain.Caller, id string) (leave.LeaveResponse, error) {
			assert.Equal(t, "abc", id)
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		},
	}
	w := httptest.NewRecorder()
	newLeaveRouter(svc, employee).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestLeaveHandler_Decisions(t *testing.T) {
	admin := domain.Caller{UserID: uuid.New(), Role: domain.RoleAdmin}
	id := uuid.NewString()

	t.Run("approve without body", func(t *testing.T) {
		svc := &fakeLeaveService{
			approveFn: func(_ context.Context, _ domain.Caller, gotID, comment string) (leave.LeaveResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Empty(t, comment)
				return leave.LeaveResponse{ID: gotID, Status: "approved"}, nil
			},
		}
		w := httptest.NewRecorder()
		newLeaveRouter(svc, admin).ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/leaves/"+id+"/approve", ""))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject with comment", func(t *testing.T) {
		svc := &fakeLeaveService{
			rejectFn: func(_ context.Context, _ domain.Caller, _ string, comment string) (leave.LeaveResponse, error) {
				assert.Equal(t, "short staffed", comment)
				return leave.LeaveResponse{ID: id, Status: "rejected", AdminComment: &comment}, nil
			},
		}
		w := httptest.NewRecorder()
		newLeaveRouter(svc, admin).ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/leaves/"+id+"/reject", `{"comment":"short staffed"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		newLeaveRouter(&fakeLeaveService{}, admin).ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/leaves/"+id+"/reject", `{"comment":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("already decided is a conflict", func(t *testing.T) {
		svc := &fakeLeaveService{
			approveFn: func(context.Context, domain.Caller, string, string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.InvalidTransition(domain.LeaveActionApprove, domain.LeaveStatusApproved)
			},
		}
		w := httptest.NewRecorder()
		newLeaveRouter(svc, admin).ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/leaves/"+id+"/approve", ""))

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
		assert.Equal(t, "approved", env.Error.Details["status"])
	})

	t.Run("cancel forbidden", func(t *testing.T) {
		svc := &fakeLeaveService{
			cancelFn: func(context.Context, domain.Caller, string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrNotOwner
			},
		}
		w := httptest.NewRecorder()
		newLeaveRouter(svc, admin).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leaves/"+id+"/cancel", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
