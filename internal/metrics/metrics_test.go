package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("/games", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest("/games", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("/games/{game_id}/datasets", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/games", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/games/{game_id}/datasets", "GET", "404")))
}

func TestObserveIndexFetch(t *testing.T) {
	m := New()

	m.ObserveIndexFetch(time.Second, nil)
	m.ObserveIndexFetch(time.Second, errors.New("boom"))
	m.ObserveIndexFetch(time.Second, errors.New("boom"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.indexFetch))
}

func TestInvalidDataset(t *testing.T) {
	m := New()

	m.InvalidDataset("AQUALAB")
	m.InvalidDataset("AQUALAB")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.invalidDatasets.WithLabelValues("AQUALAB")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.InvalidDataset("WAVES")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `fileapi_catalog_invalid_datasets_total{game_id="WAVES"} 1`)
}
