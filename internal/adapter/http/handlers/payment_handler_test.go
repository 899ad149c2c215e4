package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
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

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestPaymentHandler_PayCharge(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/charges/:charge_id/pay", h.PayCharge)

		w := doRequest(r, http.MethodPost, "/v1/charges/chg-1/pay", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/charges/:charge_id/pay", h.PayCharge)

		uc.EXPECT().PayCharge(gomock.Any(), "chg-1", gomock.Any(), "staff-1").Return(entities.Payment{}, usecase.ErrChargeAlreadyPaid)

		w := doRequest(r, http.MethodPost, "/v1/charges/chg-1/pay", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success unwraps envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/charges/:charge_id/pay", h.PayCharge)

		uc.EXPECT().PayCharge(gomock.Any(), "chg-1", gomock.Any(), "staff-1").
			DoAndReturn(func(_ any, _ string, payload json.RawMessage, _ string) (entities.Payment, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Errorf("unexpected payload forwarded: %s", payload)
				}
				return entities.Payment{
					ID:          "pay-1",
					ChargeID:    "chg-1",
					Amount:      decimal.NewFromInt(300),
					PaymentDate: proration.NewDate(2024, time.April, 9),
					Status:      entities.PaymentStatusApproved,
				}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/charges/chg-1/pay", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" || body["amount"] != "300.00" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	t.Run("missing payment type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/payments", h.RecordPayment)

		w := doRequest(r, http.MethodPost, "/v1/payments", `{"client_id":"cli-1","amount":"100"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad payment date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/payments", h.RecordPayment)

		w := doRequest(r, http.MethodPost, "/v1/payments", `{"client_id":"cli-1","amount":"100","payment_type":"efectivo","payment_date":"09/04/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/payments", h.RecordPayment)

		uc.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrClientNotFound)

		w := doRequest(r, http.MethodPost, "/v1/payments", `{"client_id":"cli-x","amount":"100","payment_type":"efectivo"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/payments", h.RecordPayment)

		uc.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.RecordPaymentInput) (entities.Payment, error) {
				if in.CreatedBy != "staff-1" || in.PaymentDate != proration.NewDate(2024, time.April, 9) {
					t.Errorf("unexpected input: %+v", in)
				}
				if !in.Amount.Equal(decimal.RequireFromString("150.5")) {
					t.Errorf("unexpected amount: %s", in.Amount)
				}
				return entities.Payment{ID: "pay-1", ClientID: in.ClientID, Amount: in.Amount, PaymentDate: in.PaymentDate, Status: entities.PaymentStatusApproved}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/payments", `{"client_id":"cli-1","amount":"150.5","payment_type":"efectivo","payment_date":"2024-04-09"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.GET("/v1/payments", h.ListPayments)

		w := doRequest(r, http.MethodGet, "/v1/payments?date_from=2024-13-01", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passes filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := newTestRouter(t)
		r.GET("/v1/payments", h.ListPayments)

		want := usecase.PaymentFilter{DateFrom: proration.NewDate(2024, time.April, 1), ClientID: "cli-1", Search: "ana"}
		uc.EXPECT().List(gomock.Any(), want).Return(usecase.PaymentList{
			Payments: []usecase.PaymentView{{Payment: entities.Payment{ID: "p1", Amount: decimal.NewFromInt(10)}, ClientName: "Ana"}},
			Stats:    usecase.PaymentStats{MonthTotal: decimal.NewFromInt(10), MonthCount: 1, AveragePayment: decimal.NewFromInt(10)},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/payments?date_from=2024-04-01&client_id=cli-1&search=ana", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Payments []map[string]any `json:"payments"`
			Stats    map[string]any   `json:"stats"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Payments) != 1 || body.Payments[0]["client_name"] != "Ana" || body.Stats["month_total"] != "10.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := newTestRouter(t)
	r.GET("/v1/payments/:id", h.GetPayment)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

	w := doRequest(r, http.MethodGet, "/v1/payments/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":"x"}`))
	if err != nil || string(payload) != `"x"` {
		t.Fatalf("expected wrapped string payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"payment_method_id":"pix"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !json.Valid(payload) {
		t.Fatalf("expected valid payload")
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentChargeID, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrInvalidPayment, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrChargeNotFound, http.StatusNotFound},
		{usecase.ErrClientNotFound, http.StatusNotFound},
		{usecase.ErrChargeAlreadyPaid, http.StatusConflict},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
