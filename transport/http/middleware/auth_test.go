package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"hotelier/config"
	appJWT "hotelier/infras/jwt"
	"hotelier/infras/otel/mocks"
	"hotelier/permissions"
	"hotelier/transport/http/middleware"
)

const testAccessSecret = "test-access-secret"

func newAuthMiddleware() middleware.AuthRole {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = testAccessSecret
	cfg.JWT.AccessExpireMin = 15

	return middleware.NewAuthRoleMiddleware(
		appJWT.New(cfg),
		mocks.NewOtel(),
		&permissions.PermissionData{},
		cfg,
	)
}

// signAccessToken signs an access token with arbitrary claim values so tests
// can exercise tokens that GenerateTokenPair would never produce.
func signAccessToken(t *testing.T, userID, email string) string {
	t.Helper()

	now := time.Now()
	claims := appJWT.Claims{
		UserID:  userID,
		Email:   email,
		Role:    "CUSTOMER",
		TokenID: "test-token-id",
		Type:    appJWT.AccessToken,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(15 * time.Minute)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testAccessSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return signed
}

func serveWithAuth(m middleware.AuthRole, token string) (*httptest.ResponseRecorder, *bool) {
	nextCalled := false

	router := chi.NewRouter()
	router.Use(m.Auth)
	router.Get("/v1/ping", func(writer http.ResponseWriter, _ *http.Request) {
		nextCalled = true
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder, &nextCalled
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token reaches the handler", func(t *testing.T) {
		m := newAuthMiddleware()
		token := signAccessToken(t, "user-1", "user@example.com")

		recorder, nextCalled := serveWithAuth(m, token)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, *nextCalled)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		m := newAuthMiddleware()

		recorder, nextCalled := serveWithAuth(m, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, *nextCalled)
	})

	t.Run("empty user id claim stops the chain", func(t *testing.T) {
		m := newAuthMiddleware()
		token := signAccessToken(t, "", "user@example.com")

		recorder, nextCalled := serveWithAuth(m, token)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, *nextCalled)
	})

	t.Run("empty email claim stops the chain", func(t *testing.T) {
		m := newAuthMiddleware()
		token := signAccessToken(t, "user-1", "")

		recorder, nextCalled := serveWithAuth(m, token)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, *nextCalled)
	})
}
