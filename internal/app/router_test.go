package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seva-mitra/core/internal/config"
	"github.com/seva-mitra/core/internal/models"
	"github.com/seva-mitra/core/internal/modules/activity"
	"github.com/seva-mitra/core/internal/modules/complaint"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type emptyComplaintStore struct{}

func (emptyComplaintStore) Insert(context.Context, *models.ComplaintModel) error { return nil }
func (emptyComplaintStore) FindAll(context.Context) ([]models.ComplaintModel, error) {
	return []models.ComplaintModel{}, nil
}
func (emptyComplaintStore) FindByPhone(context.Context, string) ([]models.ComplaintModel, error) {
	return []models.ComplaintModel{}, nil
}
func (emptyComplaintStore) UpdateStatus(context.Context, string, models.ComplaintStatus) (*models.ComplaintModel, error) {
	return nil, nil
}
func (emptyComplaintStore) CountByStatus(context.Context) (map[models.ComplaintStatus]int64, error) {
	return map[models.ComplaintStatus]int64{}, nil
}

type emptyActivityStore struct{}

func (emptyActivityStore) Insert(context.Context, *models.ActivityModel) error { return nil }
func (emptyActivityStore) FindAll(context.Context) ([]models.ActivityModel, error) {
	return []models.ActivityModel{}, nil
}
func (emptyActivityStore) Update(context.Context, string, map[string]interface{}) (*models.ActivityModel, error) {
	return nil, nil
}
func (emptyActivityStore) Delete(context.Context, string) error { return nil }

func newTestEngine() http.Handler {
	cfg := &config.AppConfig{Port: 5000, Env: "production"}
	complaintHandler := complaint.NewHandler(complaint.NewService(emptyComplaintStore{}))
	activityHandler := activity.NewHandler(activity.NewService(emptyActivityStore{}))
	return NewRouter(zap.NewNop(), cfg, complaintHandler, activityHandler)
}

func TestRootStatusMessage(t *testing.T) {
	r := newTestEngine()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "running")
}

func TestUnmatchedRouteNamesPath(t *testing.T) {
	r := newTestEngine()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), "Route /api/unknown not found")
}

func TestPing(t *testing.T) {
	r := newTestEngine()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "pong")
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodOptions, "/api/complaints", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, "https://example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}
