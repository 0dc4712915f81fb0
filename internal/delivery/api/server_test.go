package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"account/config"
	apimiddleware "account/internal/delivery/api/middleware"
	"account/internal/delivery/api/router"
	"account/internal/delivery/api/router/handler"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/domain/service"
	"account/internal/errors"
	mockRepo "account/internal/mocks/repository"
	mockSvc "account/internal/mocks/service"
	"account/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo         *echo.Echo
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newTestServer(t *testing.T, requireToken bool) *testServer {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{RequireToken: requireToken}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenService),
		Config:         cfg,
	})

	return &testServer{
		echo:         e,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (s *testServer) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

var createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func existingUser() *entity.User {
	return &entity.User{
		ID:           "65f1c0ffee0000000000abcd",
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$digest",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, false)

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRegister(t *testing.T) {
	t.Run("issues token", func(t *testing.T) {
		s := newTestServer(t, false)
		s.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		s.userRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { user.ID = "user-1" }).
			Return(nil)
		s.tokenService.EXPECT().GenerateAccessToken("user-1").Return("signed.token", nil)

		rec := s.do(http.MethodPost, "/auth/register", `{"name":"john doe","email":"John@Example.com","password":"password123"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accessToken":"signed.token"}`, rec.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		s := newTestServer(t, false)

		rec := s.do(http.MethodPost, "/auth/register", `{"email":"john@example.com","password":"password123"}`, "X-Request-Id", "req-7")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "Missing fields", body.Error.Message)
		assert.Equal(t, "req-7", body.Meta.RequestID)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, false)

		rec := s.do(http.MethodPost, "/auth/register", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("invalid fields", func(t *testing.T) {
		s := newTestServer(t, false)

		rec := s.do(http.MethodPost, "/auth/register", `{"name":"John Doe","email":"john@","password":"password123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, map[string]string{"email": "invalid email format"}, body.Error.Details)
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := newTestServer(t, false)
		s.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		s.userRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

		rec := s.do(http.MethodPost, "/auth/register", `{"name":"John Doe","email":"john@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues token", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().FindByEmail(mock.Anything, "john@example.com").Return(existingUser(), nil)
		s.hasher.EXPECT().Check("password123", "$2a$10$digest").Return(true)
		s.tokenService.EXPECT().GenerateAccessToken(existingUser().ID).Return("signed.token", nil)

		rec := s.do(http.MethodPost, "/auth/login", `{"email":"JOHN@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accessToken":"signed.token"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().FindByEmail(mock.Anything, "john@example.com").Return(existingUser(), nil)
		s.hasher.EXPECT().Check("wrongpass1", "$2a$10$digest").Return(false)

		rec := s.do(http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"wrongpass1"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "Authentication failed. Invalid email or password.", body.Error.Message)
		assert.Nil(t, body.Error.Details)
	})
}

func TestCreateUser(t *testing.T) {
	s := newTestServer(t, false)
	s.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	s.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = "user-1"
			user.CreatedAt = createdAt
			user.UpdatedAt = createdAt
		}).
		Return(nil)

	rec := s.do(http.MethodPost, "/users", `{"name":"jane roe","email":"Jane@Example.com","password":"password123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id":"user-1",
		"name":"Jane Roe",
		"email":"jane@example.com",
		"createdAt":"2024-03-01T12:00:00Z",
		"updatedAt":"2024-03-01T12:00:00Z"
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hashed")
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s := newTestServer(t, false)
		user := existingUser()
		s.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		rec := s.do(http.MethodGet, "/users/"+user.ID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"john@example.com"`)
		assert.NotContains(t, rec.Body.String(), "digest")
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().FindByID(mock.Anything, "nope").Return(nil, repository.ErrUserNotFound)

		rec := s.do(http.MethodGet, "/users/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestListUsers(t *testing.T) {
	t.Run("array of views", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.User{existingUser()}, nil)

		rec := s.do(http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var views []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
		require.Len(t, views, 1)
		assert.NotContains(t, views[0], "password")
		assert.NotContains(t, views[0], "PasswordHash")
	})

	t.Run("empty store is an empty array", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.User{}, nil)

		rec := s.do(http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("store failure is opaque", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().
			FindAll(mock.Anything).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("server selection timeout"), "failed to list users"))

		rec := s.do(http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "Internal server error", body.Error.Message)
		assert.NotContains(t, rec.Body.String(), "server selection")
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("returns 201 with stored record", func(t *testing.T) {
		s := newTestServer(t, false)
		updated := existingUser()
		updated.Name = "John Smith"
		s.userRepo.EXPECT().
			Update(mock.Anything, updated.ID, mock.AnythingOfType("*entity.UserPatch")).
			Run(func(_ context.Context, _ string, patch *entity.UserPatch) {
				require.NotNil(t, patch.Name)
				assert.Equal(t, "John Smith", *patch.Name)
			}).
			Return(updated, nil)

		rec := s.do(http.MethodPut, "/users/"+updated.ID, `{"name":"john SMITH"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"John Smith"`)
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().
			Update(mock.Anything, "nope", mock.AnythingOfType("*entity.UserPatch")).
			Return(nil, repository.ErrUserNotFound)

		rec := s.do(http.MethodPut, "/users/nope", `{"name":"John Smith"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().Delete(mock.Anything, "user-1").Return(nil)

		rec := s.do(http.MethodDelete, "/users/user-1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("absent user answers 404", func(t *testing.T) {
		s := newTestServer(t, false)
		s.userRepo.EXPECT().Delete(mock.Anything, "user-1").Return(repository.ErrUserNotFound)

		rec := s.do(http.MethodDelete, "/users/user-1", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUsersRequireTokenWhenConfigured(t *testing.T) {
	t.Run("rejects anonymous", func(t *testing.T) {
		s := newTestServer(t, true)

		rec := s.do(http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("accepts valid bearer", func(t *testing.T) {
		s := newTestServer(t, true)
		s.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		}, nil)
		s.userRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.User{}, nil)

		rec := s.do(http.MethodGet, "/users", "", echo.HeaderAuthorization, "Bearer good")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("auth routes stay public", func(t *testing.T) {
		s := newTestServer(t, true)

		rec := s.do(http.MethodPost, "/auth/login", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, false)

	rec := s.do(http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}
