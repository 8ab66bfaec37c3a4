package user_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"leaveflow/internal/user"
	usererrors "leaveflow/internal/user/errors"
	mock_user "leaveflow/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userServiceDeps struct {
	sqlMock  sqlmock.Sqlmock
	repo     *mock_user.MockRepository
	initUser []uuid.UUID
	initErr  error
	service  user.Service
}

func setupUserServiceTest(t *testing.T) *userServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctrl := gomock.NewController(t)
	deps := &userServiceDeps{
		sqlMock: sqlMock,
		repo:    mock_user.NewMockRepository(ctrl),
	}
	initializer := func(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error {
		if tx == nil {
			return errors.New("initializer called without transaction")
		}
		deps.initUser = append(deps.initUser, userID)
		return deps.initErr
	}
	deps.service = user.NewService(db, deps.repo, initializer)
	return deps
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates user and balances in one transaction", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *user.User
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				created = u
				return nil
			})

		res, err := deps.service.Register(ctx, user.CreateUserRequest{
			Name:     "  John  ",
			Email:    "John@Company.com",
			Password: "emp123",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "John", res.Name)
		assert.Equal(t, "john@company.com", res.Email)
		assert.Equal(t, user.DefaultDepartment, res.Department)
		assert.Equal(t, "employee", res.Role)
		assert.Equal(t, []uuid.UUID{created.ID}, deps.initUser)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("emp123")))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("admin role", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := deps.service.Register(ctx, user.CreateUserRequest{
			Name:       "Admin",
			Email:      "admin@company.com",
			Password:   "admin123",
			Department: "HR",
			Role:       "Admin",
		})

		require.NoError(t, err)
		assert.Equal(t, "admin", res.Role)
		assert.Equal(t, "HR", res.Department)
	})

	t.Run("validation fails before transaction", func(t *testing.T) {
		cases := []struct {
			name string
			req  user.CreateUserRequest
			want error
		}{
			{"missing name", user.CreateUserRequest{Email: "a@b.com", Password: "x"}, usererrors.ErrMissingRequiredFields},
			{"missing password", user.CreateUserRequest{Name: "A", Email: "a@b.com"}, usererrors.ErrMissingRequiredFields},
			{"bad email", user.CreateUserRequest{Name: "A", Email: "not-an-email", Password: "x"}, usererrors.ErrInvalidEmail},
			{"bad role", user.CreateUserRequest{Name: "A", Email: "a@b.com", Password: "x", Role: "manager"}, usererrors.ErrInvalidRole},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupUserServiceTest(t)
				_, err := deps.service.Register(ctx, tc.req)
				assert.ErrorIs(t, err, tc.want)
				assert.Empty(t, deps.initUser)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})

	t.Run("duplicate email rolls back", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("UNIQUE constraint failed: users.email"))

		_, err := deps.service.Register(ctx, user.CreateUserRequest{
			Name: "John", Email: "john@company.com", Password: "emp123",
		})

		assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
		assert.Empty(t, deps.initUser)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("balance init failure rolls back", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		deps.initErr = errors.New("insert leave_balance failed")
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Register(ctx, user.CreateUserRequest{
			Name: "John", Email: "john@company.com", Password: "emp123",
		})

		assert.EqualError(t, err, "insert leave_balance failed")
		assert.Len(t, deps.initUser, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().
			FindByID(gomock.Any(), id.String()).
			Return(&user.User{ID: id, Name: "Sara", Email: "sara@company.com", Role: "employee"}, nil)

		res, err := deps.service.GetByID(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, id.String(), res.ID)
		assert.Equal(t, "Sara", res.Name)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		_, err := deps.service.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
