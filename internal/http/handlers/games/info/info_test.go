package info

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/ogd-file-api/internal/http/params"
	"github.com/magabrotheeeer/ogd-file-api/internal/models"
	"github.com/magabrotheeeer/ogd-file-api/internal/services/datasets"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) FileInfo(ctx context.Context, p models.RequestParams) (*datasets.FileInfo, error) {
	args := m.Called(ctx, p)
	if res := args.Get(0); res != nil {
		return res.(*datasets.FileInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSanitizer() *params.Sanitizer {
	return params.New(func() time.Time { return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) })
}

func withPath(req *http.Request, game, year, month string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("game_id", game)
	rctx.URLParams.Add("year", year)
	rctx.URLParams.Add("month", month)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestInfoHandler_Path(t *testing.T) {
	raw := "https://files.example.org/AQUALAB_20240101_to_20240131_raw.zip"
	fileInfo := &datasets.FileInfo{
		FirstYear: 2024, FirstMonth: 1, LastYear: 2024, LastMonth: 1,
		RawFile:            &raw,
		FoundMatchingRange: true,
	}

	svc := new(MockService)
	svc.On("FileInfo", mock.Anything, models.RequestParams{GameID: "AQUALAB", Year: 2024, Month: 1}).Return(fileInfo, nil)

	req := withPath(httptest.NewRequest(http.MethodGet, "/games/aqualab/datasets/2024/1", nil), "aqualab", "2024", "1")
	w := httptest.NewRecorder()
	New(newLogger(), svc, newSanitizer()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status  string         `json:"status"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
	assert.Equal(t, "Retrieved game file info by month", body.Message)
	assert.Equal(t, raw, body.Data["raw_file"])
	assert.Equal(t, true, body.Data["found_matching_range"])
	assert.Contains(t, body.Data, "detectors_link")
	assert.Nil(t, body.Data["detectors_link"])
	svc.AssertExpectations(t)
}

func TestInfoHandler_Query(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "нет датасета за месяц",
			url:  "/getGameFileInfoByMonth?game_id=aqualab&year=2024&month=2",
			setupMock: func(m *MockService) {
				m.On("FileInfo", mock.Anything, models.RequestParams{GameID: "AQUALAB", Year: 2024, Month: 2}).
					Return(nil, datasets.ErrNoMatchingDataset)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","message":"No dataset for AQUALAB covers 02/2024","data":null}`,
		},
		{
			name: "год по умолчанию",
			url:  "/getGameFileInfoByMonth?game_id=aqualab&year=1999&month=2",
			setupMock: func(m *MockService) {
				m.On("FileInfo", mock.Anything, models.RequestParams{GameID: "AQUALAB", Year: 2025, Month: 2}).
					Return(nil, datasets.ErrGameNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","message":"GameID 'AQUALAB' not found in available games","data":null}`,
		},
		{
			name:           "плохой идентификатор",
			url:            "/getGameFileInfoByMonth?game_id=aqua1ab",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"Bad GameID 'aqua1ab'","data":null}`,
		},
		{
			name:           "без идентификатора",
			url:            "/getGameFileInfoByMonth",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"Bad GameID ''","data":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			NewFromQuery(newLogger(), svc, newSanitizer()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
