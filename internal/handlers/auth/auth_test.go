package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"login":"newplayer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newplayer", "password123").Return(&domain.Player{
					ID:           1,
					Login:        "newplayer",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Player already exists",
			body: `{"login":"existingplayer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existingplayer", "password123").
					Return(nil, domain.DomainConflict("player already exists"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "player already exists",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Service failure",
			body: `{"login":"newplayer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newplayer", "password123").
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Error generating token",
			body: `{"login":"newplayer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newplayer", "password123").Return(&domain.Player{
					ID:           1,
					Login:        "newplayer",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().
					GenerateToken(1).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/player/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"testplayer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testplayer", "password123").
					Return(&domain.Player{
						ID:           1,
						Login:        "testplayer",
						PasswordHash: "hashedpassword",
					}, nil)

				service.EXPECT().
					GenerateToken(1).
					Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testplayer","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testplayer", "wrongpassword").
					Return(nil, domain.Forbidden("invalid login or password"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid login or password",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"testplayer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "testplayer", "password123").
					Return(&domain.Player{
						ID:           1,
						Login:        "testplayer",
						PasswordHash: "hashedpassword",
					}, nil)

				service.EXPECT().
					GenerateToken(1).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/player/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
