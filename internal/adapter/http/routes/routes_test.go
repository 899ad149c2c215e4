package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"isp_backoffice/internal/adapter/http/handlers"
	"isp_backoffice/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	payments := mocks.NewMockIPaymentUseCase(ctrl)
	plans := mocks.NewMockIServicePlanUseCase(ctrl)
	finalize := mocks.NewMockIFinalizeUseCase(ctrl)

	router, err := NewRouter(Handlers{
		Prospects:    handlers.NewProspectHandler(mocks.NewMockIProspectUseCase(ctrl)),
		Finalize:     handlers.NewFinalizeHandler(finalize),
		Clients:      handlers.NewClientHandler(mocks.NewMockIClientUseCase(ctrl), payments),
		Charges:      handlers.NewChargeHandler(mocks.NewMockIChargeUseCase(ctrl)),
		Payments:     handlers.NewPaymentHandler(payments),
		ServicePlans: handlers.NewServicePlanHandler(plans),
		Services:     handlers.NewScheduledServiceHandler(mocks.NewMockIScheduledServiceUseCase(ctrl)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mounted routes", func(t *testing.T) {
		want := map[string]bool{
			"POST /v1/prospects/:id/finalize":   false,
			"POST /v1/billing/preview":          false,
			"POST /v1/charges/generate-monthly": false,
			"POST /v1/charges/:charge_id/pay":   false,
			"GET /v1/payments":                  false,
			"GET /v1/clients/:id/billing":       false,
			"GET /v1/service-plans/:id":         false,
			"GET /v1/services/report":           false,
			"PATCH /v1/services/:id/complete":   false,
		}
		for _, r := range router.Routes() {
			key := r.Method + " " + r.Path
			if _, ok := want[key]; ok {
				want[key] = true
			}
		}
		for route, found := range want {
			if !found {
				t.Fatalf("route %s not mounted", route)
			}
		}
	})
}
