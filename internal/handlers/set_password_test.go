package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockPasswordSetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"userId":3,"password":"secret123"}`,
			mockSetup: func(m *MockPasswordSetter) {
				m.EXPECT().
					SetPassword(gomock.Any(), int64(3), "secret123").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "missing user id",
			body:          `{"password":"secret123"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "User id and password are required",
		},
		{
			name:          "missing password",
			body:          `{"userId":3}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "User id and password are required",
		},
		{
			name:          "password too short",
			body:          `{"userId":3,"password":"short"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Password must be at least 6 characters long",
		},
		{
			name:          "invalid json",
			body:          `{invalid json}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "internal server error",
			body: `{"userId":3,"password":"secret123"}`,
			mockSetup: func(m *MockPasswordSetter) {
				m.EXPECT().
					SetPassword(gomock.Any(), int64(3), "secret123").
					Return(errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPasswordSetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSetPasswordHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/set-password", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp SetPasswordResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Password set successfully", resp.Message)
		})
	}
}
