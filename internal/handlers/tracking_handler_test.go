package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"billtracker/internal/models"
	"billtracker/internal/services"
)

// --- mock tracking service ---

type mockTrackingService struct {
	createTrackingFn     func(tracking *models.Tracking) error
	getTrackingByMonthFn func(month string) (*models.TrackingReport, error)
}

func (m *mockTrackingService) CreateTracking(tracking *models.Tracking) error {
	if m.createTrackingFn != nil {
		return m.createTrackingFn(tracking)
	}
	return nil
}

func (m *mockTrackingService) GetTrackingByMonth(month string) (*models.TrackingReport, error) {
	if m.getTrackingByMonthFn != nil {
		return m.getTrackingByMonthFn(month)
	}
	return &models.TrackingReport{}, nil
}

var _ services.TrackingServicer = (*mockTrackingService)(nil)

func setupTrackingRouter(handler *TrackingHandler) *gin.Engine {
	r := gin.New()
	tracking := r.Group("/api/tracking")
	tracking.POST("", handler.CreateTracking)
	tracking.GET("/:month", handler.GetTrackingByMonth)
	return r
}

// --- tests ---

func TestTrackingHandler_CreateTracking(t *testing.T) {
	t.Run("returns 201 with a message", func(t *testing.T) {
		var created *models.Tracking
		svc := &mockTrackingService{
			createTrackingFn: func(tracking *models.Tracking) error {
				created = tracking
				return nil
			},
		}
		body := `{"period":"2024-02","categoryid":1,"total":110}`
		rec := doRequest(setupTrackingRouter(NewTrackingHandler(svc)), "POST", "/api/tracking", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if parseJSON(t, rec)["message"] != "Tracking created successfully" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
		if created == nil || created.Period != "2024-02" || created.Total != 110 {
			t.Errorf("unexpected bound tracking: %+v", created)
		}
	})

	t.Run("returns 500 on service error", func(t *testing.T) {
		svc := &mockTrackingService{
			createTrackingFn: func(*models.Tracking) error { return errors.New("boom") },
		}
		rec := doRequest(setupTrackingRouter(NewTrackingHandler(svc)), "POST", "/api/tracking", `{"period":"2024-02"}`)
		assertInternalError(t, rec)
	})

	t.Run("returns 500 on malformed body", func(t *testing.T) {
		rec := doRequest(setupTrackingRouter(NewTrackingHandler(&mockTrackingService{})), "POST", "/api/tracking", "{not json")
		assertInternalError(t, rec)
	})
}

func TestTrackingHandler_GetTrackingByMonth(t *testing.T) {
	t.Run("returns 200 with the report inside data", func(t *testing.T) {
		var gotMonth string
		svc := &mockTrackingService{
			getTrackingByMonthFn: func(month string) (*models.TrackingReport, error) {
				gotMonth = month
				return &models.TrackingReport{
					BudgetItems:  map[string]models.BudgetItem{"auto": {Name: "Automotive", Monthly: 130, Actual: 110, Save: 20}},
					BudgetTotal:  130,
					MonthlyTotal: 110,
				}, nil
			},
		}
		rec := doRequest(setupTrackingRouter(NewTrackingHandler(svc)), "GET", "/api/tracking/current", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonth != "current" {
			t.Errorf("expected month current, got %q", gotMonth)
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["budgetTotal"] != float64(130) || data["monthlyTotal"] != float64(110) {
			t.Errorf("unexpected totals: %v", data)
		}
		items := data["budgetItems"].(map[string]interface{})
		if _, ok := items["auto"]; !ok {
			t.Errorf("expected budget items keyed by category name, got %v", items)
		}
	})

	t.Run("returns 500 on service error", func(t *testing.T) {
		svc := &mockTrackingService{
			getTrackingByMonthFn: func(string) (*models.TrackingReport, error) {
				return nil, errors.New("boom")
			},
		}
		rec := doRequest(setupTrackingRouter(NewTrackingHandler(svc)), "GET", "/api/tracking/2024-02", "")
		assertInternalError(t, rec)
	})
}
