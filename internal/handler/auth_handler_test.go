package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"carline/internal/domain"
	"carline/internal/handler"
	"carline/internal/service"
	"carline/mocks"
)

func setupAuthRouter(authSvc service.AuthService) *gin.Engine {
	r := gin.New()
	authH := handler.NewAuthHandler(authSvc)
	auth := r.Group("/api/v1/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/logout", authH.Logout)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_Success(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
		return in.Email == "new@test.com"
	})).Return(&service.AuthResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &domain.User{Email: "new@test.com"},
	}, nil)

	w := postJSON(setupAuthRouter(authSvc),
		"/api/v1/auth/register", `{"email": "new@test.com", "password": "secret123"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"access"`)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	w := postJSON(setupAuthRouter(authSvc),
		"/api/v1/auth/register", `{"email": "new@test.com", "password": "short"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("Register", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateEmail)

	w := postJSON(setupAuthRouter(authSvc),
		"/api/v1/auth/register", `{"email": "dup@test.com", "password": "secret123"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE_EMAIL")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	w := postJSON(setupAuthRouter(authSvc),
		"/api/v1/auth/login", `{"email": "user@test.com", "password": "wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestRefresh_InvalidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("Refresh", mock.Anything, "stale").Return(nil, domain.ErrRefreshTokenInvalid)

	w := postJSON(setupAuthRouter(authSvc),
		"/api/v1/auth/refresh", `{"refresh_token": "stale"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REFRESH_TOKEN")
}

func TestLogout(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("Logout", mock.Anything, "token").Return(nil)

	w := postJSON(setupAuthRouter(authSvc),
		"/api/v1/auth/logout", `{"refresh_token": "token"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	authSvc.AssertExpectations(t)
}
