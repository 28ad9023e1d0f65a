package exclusion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/pkg/auth"
	"github.com/grandbay/casino-core/pkg/utils"
)

func NewMock(t *testing.T) (*ExclusionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestApplyHandler(t *testing.T) {
	handler, service := NewMock(t)

	ctx := context.WithValue(context.Background(), auth.PlayerIDKey, 1)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)
	sixMonths := domain.ExclusionSixMonths
	permanent := domain.ExclusionPermanent

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedEnd   *time.Time
	}{
		{
			name: "Temporary exclusion applied",
			body: `{"period":"SIX_MONTHS"}`,
			prepareMock: func() {
				service.EXPECT().
					Apply(ctx, 1, domain.ExclusionSixMonths).
					Return(&domain.Player{
						ID:              1,
						SelfExcluded:    true,
						ExclusionPeriod: &sixMonths,
						ExclusionStart:  &start,
						ExclusionEnd:    &end,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedEnd:  &end,
		},
		{
			name: "Permanent exclusion has no end",
			body: `{"period":"PERMANENT"}`,
			prepareMock: func() {
				service.EXPECT().
					Apply(ctx, 1, domain.ExclusionPermanent).
					Return(&domain.Player{
						ID:              1,
						SelfExcluded:    true,
						IsActive:        false,
						ExclusionPeriod: &permanent,
						ExclusionStart:  &start,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Unknown period",
			body: `{"period":"TWO_WEEKS"}`,
			prepareMock: func() {
				service.EXPECT().
					Apply(ctx, 1, domain.ExclusionPeriod("TWO_WEEKS")).
					Return(nil, domain.InvalidArgument("unknown exclusion period: TWO_WEEKS"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "unknown exclusion period: TWO_WEEKS",
		},
		{
			name: "Cannot shorten an exclusion",
			body: `{"period":"SIX_MONTHS"}`,
			prepareMock: func() {
				service.EXPECT().
					Apply(ctx, 1, domain.ExclusionSixMonths).
					Return(nil, domain.DomainValidation("self-exclusion cannot be shortened"))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "self-exclusion cannot be shortened",
		},
		{
			name: "Service failure",
			body: `{"period":"SIX_MONTHS"}`,
			prepareMock: func() {
				service.EXPECT().
					Apply(ctx, 1, domain.ExclusionSixMonths).
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/player/self-exclusion", bytes.NewReader([]byte(tt.body)))
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.Apply(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp dto.SelfExclusionResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, start, resp.Start.UTC())
			if tt.expectedEnd != nil {
				assert.Equal(t, *tt.expectedEnd, resp.End.UTC())
			} else {
				assert.Nil(t, resp.End)
			}
		})
	}
}
