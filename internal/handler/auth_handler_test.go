package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spice-palace/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	logger := zerolog.Nop()

	session := &model.Session{
		Token: "token-123",
		User:  model.User{ID: "u2", Username: "table1", Role: model.RoleUser, TableNumber: 1},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockReturn     *model.Session
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    loginRequest{Username: "table1", Password: "user123"},
			mockReturn:     session,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Wrong credentials",
			requestBody:    loginRequest{Username: "table1", Password: "nope"},
			mockError:      model.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectService:  true,
		},
		{
			name:           "Missing username",
			requestBody:    loginRequest{Password: "user123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing password",
			requestBody:    loginRequest{Username: "table1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			if tt.expectService {
				mockService.On("Login", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockReturn, tt.mockError)
			}
			h := NewAuthHandler(mockService, logger)

			var body bytes.Buffer
			if raw, ok := tt.requestBody.(string); ok {
				body.WriteString(raw)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", &body)
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.Session
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "token-123", got.Token)
				assert.Equal(t, "table1", got.User.Username)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Logout", mock.Anything, "token-123").Return()
	h := NewAuthHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}
