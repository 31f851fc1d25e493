package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel/mocks"
	"hotelier/internal/domains/auth/model/dto"
	"hotelier/internal/domains/auth/service"
	userMocks "hotelier/internal/domains/user/mocks"
	"hotelier/internal/domains/user/model"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/password"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUsers := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	svc := service.New(mockUsers, cfg, mockOtel, jwt.New(cfg))

	return svc, mockUsers
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	}

	t.Run("successful registration defaults to customer", func(t *testing.T) {
		svc, mockUsers := newAuthService(t)

		mockUsers.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockUsers.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, constant.RoleCustomer, user.Role)
				assert.True(t, user.Active)
				assert.NotEqual(t, req.Password, user.Password)

				return nil
			})

		err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("email already registered", func(t *testing.T) {
		svc, mockUsers := newAuthService(t)

		mockUsers.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("secret-password")
	assert.NoError(t, err)

	storedUser := model.User{
		ID:       "user-1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: hashed,
		Role:     constant.RoleCustomer,
		Active:   true,
	}

	t.Run("successful login returns a token pair", func(t *testing.T) {
		svc, mockUsers := newAuthService(t)

		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUsers := newAuthService(t)

		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mockUsers := newAuthService(t)

		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, mockUsers := newAuthService(t)

		inactive := storedUser
		inactive.Active = false

		mockUsers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inactive, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
