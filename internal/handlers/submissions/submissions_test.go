package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlexLemna/chorebank/internal/dto"
	submissionservice "github.com/AlexLemna/chorebank/internal/service/submissionservice"
	"github.com/AlexLemna/chorebank/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var day = time.Date(2024, 11, 20, 14, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*SubmissionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	handler.now = func() time.Time { return day }
	defer ctrl.Finish()
	return handler, service
}

func asChild(req *http.Request, userID int) *http.Request {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestSubmitHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		check        func(t *testing.T, resp dto.SubmitResponseDTO)
	}{
		{
			name: "Submits claims and reports warnings",
			body: `{"claims":{"3":{"count":1},"4":{"count":2,"note":"extra"}}}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					SubmitBatch(gomock.Any(), 2, map[int]submissionservice.Claim{
						3: {Count: 1},
						4: {Count: 2, Note: "extra"},
					}, day).
					Return([]string{"Clean Room"}, []submissionservice.Rejection{
						{ChoreID: 4, ChoreName: "Dishes", Reason: "Daily limit already reached"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, resp dto.SubmitResponseDTO) {
				assert.Equal(t, []string{"Clean Room"}, resp.Submitted)
				assert.Len(t, resp.Warnings, 1)
				assert.Equal(t, "Daily limit already reached", resp.Warnings[0].Reason)
			},
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			body: `{"claims":{"3":{"count":1}}}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					SubmitBatch(gomock.Any(), 2, gomock.Any(), day).
					Return(nil, nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := asChild(httptest.NewRequest("POST", "/api/child/submissions", bytes.NewReader([]byte(tt.body))), 2)
			rr := httptest.NewRecorder()
			handler.Submit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				var resp dto.SubmitResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				tt.check(t, resp)
			}
		})
	}

	t.Run("Missing user context", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := httptest.NewRequest("POST", "/api/child/submissions", bytes.NewReader([]byte(`{}`)))
		rr := httptest.NewRecorder()
		handler.Submit(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
