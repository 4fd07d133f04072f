package monthlyusage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) MonthlyUsage(ctx context.Context, gameID string) (*datasets.Usage, error) {
	args := m.Called(ctx, gameID)
	if res := args.Get(0); res != nil {
		return res.(*datasets.Usage), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestMonthlyUsageHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "ряд с пропусками",
			url:  "/getMonthlyGameUsage?game_id=aqualab",
			setupMock: func(m *MockService) {
				m.On("MonthlyUsage", mock.Anything, "AQUALAB").Return(&datasets.Usage{
					GameID: "AQUALAB",
					Months: []datasets.MonthDatasets{
						{Year: 2024, Month: 1, TotalSessions: 10},
						{Year: 2024, Month: 2},
						{Year: 2024, Month: 3, TotalSessions: 20},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","message":"Retrieved monthly game usage","data":{"game_id":"AQUALAB","sessions":[
				{"year":2024,"month":1,"total_sessions":10},
				{"year":2024,"month":2,"total_sessions":0},
				{"year":2024,"month":3,"total_sessions":20}]}}`,
		},
		{
			name: "пустой ряд",
			url:  "/getMonthlyGameUsage?game_id=waves",
			setupMock: func(m *MockService) {
				m.On("MonthlyUsage", mock.Anything, "WAVES").Return(&datasets.Usage{GameID: "WAVES", Months: []datasets.MonthDatasets{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Retrieved monthly game usage","data":{"game_id":"WAVES","sessions":[]}}`,
		},
		{
			name:           "плохой идентификатор",
			url:            "/getMonthlyGameUsage?game_id=42",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"Bad GameID '42'","data":null}`,
		},
		{
			name: "индекс недоступен",
			url:  "/getMonthlyGameUsage?game_id=aqualab",
			setupMock: func(m *MockService) {
				m.On("MonthlyUsage", mock.Anything, "AQUALAB").Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"Failed to retrieve data from upstream","data":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			New(logger, svc, params.New(nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
