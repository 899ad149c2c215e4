package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"isp_backoffice/internal/adapter/http/handlers/mocks"
	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	"isp_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const finalizeBody = `{
	"first_name":"Ana","last_name_paterno":"López","phone1":"5512345678",
	"street":"Hidalgo","exterior_number":"12","neighborhood":"Centro","city":"Tulancingo",
	"antenna_ip":"10.0.0.7","antenna_mac":"aabbccddeeff",
	"installation_date":"2024-03-15","billing_day":10,
	"monthly_fee":"300","installation_cost":500,
	"additional_charges":[{"description":"Router","amount":"250"}]
}`

func newFinalizeRouter(t *testing.T) (*gin.Engine, *mocks.MockIFinalizeUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFinalizeUseCase(ctrl)
	h := NewFinalizeHandler(uc)

	r := newTestRouter(t)
	r.POST("/v1/prospects/:id/finalize", h.FinalizeProspect)
	r.POST("/v1/billing/preview", h.PreviewProration)
	return r, uc
}

func TestFinalizeHandler_FinalizeProspect(t *testing.T) {
	t.Run("billing day out of range", func(t *testing.T) {
		r, _ := newFinalizeRouter(t)
		body := `{"first_name":"Ana","last_name_paterno":"López","phone1":"5512345678","street":"Hidalgo","exterior_number":"12","neighborhood":"Centro","city":"Tulancingo","installation_date":"2024-03-15","billing_day":31}`
		w := doRequest(r, http.MethodPost, "/v1/prospects/pr-1/finalize", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad installation date", func(t *testing.T) {
		r, _ := newFinalizeRouter(t)
		body := `{"first_name":"Ana","last_name_paterno":"López","phone1":"5512345678","street":"Hidalgo","exterior_number":"12","neighborhood":"Centro","city":"Tulancingo","installation_date":"15/03/2024","billing_day":10}`
		w := doRequest(r, http.MethodPost, "/v1/prospects/pr-1/finalize", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_DATE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("prospect not pending", func(t *testing.T) {
		r, uc := newFinalizeRouter(t)
		uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(usecase.FinalizeResult{}, usecase.ErrProspectNotPending)

		w := doRequest(r, http.MethodPost, "/v1/prospects/pr-1/finalize", finalizeBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with warnings", func(t *testing.T) {
		r, uc := newFinalizeRouter(t)
		uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.FinalizeInput) (usecase.FinalizeResult, error) {
				if in.ProspectID != "pr-1" || in.FinalizedBy != "staff-1" {
					t.Errorf("unexpected ids: %+v", in)
				}
				if in.InstallationDate != proration.NewDate(2024, time.March, 15) || in.BillingDay != 10 {
					t.Errorf("unexpected terms: %+v", in.BillingTerms)
				}
				if !in.MonthlyFee.Equal(decimal.NewFromInt(300)) || len(in.AdditionalCharges) != 1 {
					t.Errorf("unexpected money: %+v", in.BillingTerms)
				}
				return usecase.FinalizeResult{
					Client: entities.Client{ID: "cli-1", Status: entities.ClientStatusActive},
					Proration: proration.Result{
						ProratedAmount:   decimal.NewFromInt(260),
						DaysCharged:      26,
						FirstBillingDate: proration.NewDate(2024, time.April, 10),
					},
					ChangesRecorded: 0,
					Warnings:        []string{"equipment: timeout"},
				}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/prospects/pr-1/finalize", finalizeBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Client    map[string]any `json:"client"`
			Billing   map[string]any `json:"billing"`
			Proration map[string]any `json:"proration"`
			Warnings  []string       `json:"warnings"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Client["id"] != "cli-1" || body.Billing != nil || len(body.Warnings) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Proration["prorated_amount"] != "260.00" || body.Proration["first_billing_date"] != "2024-04-10" {
			t.Fatalf("unexpected proration: %s", w.Body.String())
		}
	})
}

func TestFinalizeHandler_PreviewProration(t *testing.T) {
	t.Run("plan not found", func(t *testing.T) {
		r, uc := newFinalizeRouter(t)
		uc.EXPECT().PreviewProration(gomock.Any(), gomock.Any()).Return(usecase.ProrationPreview{}, usecase.ErrServicePlanNotFound)

		w := doRequest(r, http.MethodPost, "/v1/billing/preview", `{"installation_date":"2024-03-15","billing_day":10,"service_plan_id":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFinalizeRouter(t)
		uc.EXPECT().PreviewProration(gomock.Any(), gomock.Any()).Return(usecase.ProrationPreview{
			Proration: proration.Result{
				ProratedAmount:   decimal.NewFromInt(260),
				DaysCharged:      26,
				FirstBillingDate: proration.NewDate(2024, time.April, 10),
			},
			MonthlyFee:        decimal.NewFromInt(300),
			InstallationCost:  decimal.NewFromInt(500),
			AdditionalCharges: decimal.Zero,
			InitialBalance:    decimal.NewFromInt(1060),
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/billing/preview", `{"installation_date":"2024-03-15","billing_day":10,"monthly_fee":300,"installation_cost":500}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["initial_balance"] != "1060.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
