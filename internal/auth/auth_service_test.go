package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"leaveflow/internal/auth"
	autherrors "leaveflow/internal/auth/errors"
	"leaveflow/internal/domain"
	"leaveflow/internal/shared/apperror"
	"leaveflow/internal/user"
	userMock "leaveflow/internal/user/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type authServiceDeps struct {
	users   *userMock.MockRepository
	signup  *userMock.MockService
	service auth.Service
}

func setupAuthServiceTest(t *testing.T, allowAdmin bool) *authServiceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := userMock.NewMockRepository(ctrl)
	signup := userMock.NewMockService(ctrl)
	return &authServiceDeps{
		users:  users,
		signup: signup,
		service: auth.NewService(users, signup, auth.Config{
			JWTSecret:        testSecret,
			TokenTTL:         time.Hour,
			AllowAdminSignup: allowAdmin,
		}),
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("emp123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &user.User{
		ID:       uuid.New(),
		Name:     "John",
		Email:    "john@company.com",
		Password: string(hash),
		Role:     string(domain.RoleEmployee),
	}

	t.Run("success issues signed token", func(t *testing.T) {
		deps := setupAuthServiceTest(t, false)
		deps.users.EXPECT().FindByEmail(ctx, "john@company.com").Return(stored, nil)

		res, err := deps.service.Login(ctx, auth.LoginRequest{Email: " John@Company.com ", Password: "emp123"})
		require.NoError(t, err)
		assert.Equal(t, stored.ID.String(), res.User.ID)

		parsed, err := jwt.Parse(res.AccessToken, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, stored.ID.String(), claims["user_id"])
		assert.Equal(t, "employee", claims["role"])
		assert.InDelta(t, time.Now().Add(time.Hour).Unix(), res.ExpiresAt, 5)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupAuthServiceTest(t, false)
		deps.users.EXPECT().FindByEmail(ctx, "john@company.com").Return(stored, nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "john@company.com", Password: "nope"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupAuthServiceTest(t, false)
		deps.users.EXPECT().FindByEmail(ctx, "ghost@company.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "ghost@company.com", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("lookup failure is not a credential error", func(t *testing.T) {
		deps := setupAuthServiceTest(t, false)
		deps.users.EXPECT().FindByEmail(ctx, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "john@company.com", Password: "emp123"})
		assert.EqualError(t, err, "db down")
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("employee registration delegates", func(t *testing.T) {
		deps := setupAuthServiceTest(t, false)
		deps.signup.EXPECT().Register(ctx, user.CreateUserRequest{
			Name: "Sara", Email: "sara@company.com", Password: "emp123", Department: "Sales",
		}).Return(user.UserResponse{Email: "sara@company.com", Role: "employee"}, nil)

		res, err := deps.service.Register(ctx, auth.RegisterRequest{
			Name: "Sara", Email: "sara@company.com", Password: "emp123", Department: "Sales",
		})
		require.NoError(t, err)
		assert.Equal(t, "employee", res.Role)
	})

	t.Run("admin signup disabled", func(t *testing.T) {
		deps := setupAuthServiceTest(t, false)
		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			Name: "Eve", Email: "eve@company.com", Password: "secret1", Role: "admin",
		})
		assert.ErrorIs(t, err, autherrors.ErrAdminSignupDisabled)
	})

	t.Run("admin signup enabled", func(t *testing.T) {
		deps := setupAuthServiceTest(t, true)
		deps.signup.EXPECT().Register(ctx, gomock.Any()).Return(user.UserResponse{Role: "admin"}, nil)

		res, err := deps.service.Register(ctx, auth.RegisterRequest{
			Name: "Ann", Email: "ann@company.com", Password: "secret1", Role: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", res.Role)
	})
}

func TestService_Me(t *testing.T) {
	ctx := context.Background()
	deps := setupAuthServiceTest(t, false)
	caller := domain.Caller{UserID: uuid.New(), Role: domain.RoleEmployee}
	deps.signup.EXPECT().GetByID(ctx, caller.UserID.String()).Return(user.UserResponse{ID: caller.UserID.String()}, nil)

	res, err := deps.service.Me(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, caller.UserID.String(), res.ID)

	_, err = deps.service.Me(ctx, domain.Caller{})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
