package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"isp_backoffice/internal/adapter/http/handlers/mocks"
	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const prospectBody = `{
	"first_name":"Ana","last_name_paterno":"López","phone1":"5512345678",
	"street":"Hidalgo","exterior_number":"12","neighborhood":"Centro","city":"Tulancingo",
	"antenna_ip":"192.168.1.20"
}`

func newProspectRouter(t *testing.T) (*gin.Engine, *mocks.MockIProspectUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProspectUseCase(ctrl)
	h := NewProspectHandler(uc)

	r := newTestRouter(t)
	r.POST("/v1/prospects", h.CreateProspect)
	r.GET("/v1/prospects", h.ListProspects)
	r.GET("/v1/prospects/:id", h.GetProspect)
	r.PATCH("/v1/prospects/:id/cancel", h.CancelProspect)
	r.PATCH("/v1/prospects/:id/reactivate", h.ReactivateProspect)
	r.DELETE("/v1/prospects/:id", h.DeleteProspect)
	r.GET("/v1/prospects/:id/history", h.ProspectHistory)
	return r, uc
}

func TestProspectHandler_CreateProspect(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newProspectRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/prospects", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("phone with nine digits", func(t *testing.T) {
		r, _ := newProspectRouter(t)
		body := `{"first_name":"Ana","last_name_paterno":"López","phone1":"551234567","street":"Hidalgo","exterior_number":"12","neighborhood":"Centro","city":"Tulancingo"}`
		w := doRequest(r, http.MethodPost, "/v1/prospects", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.ProspectInput) (entities.Prospect, error) {
				if in.CreatedBy != "staff-1" || in.FirstName != "Ana" || in.AntennaIP != "192.168.1.20" {
					t.Errorf("unexpected input: %+v", in)
				}
				return entities.Prospect{ID: "pr-1", Contact: in.Contact, Status: entities.ProspectStatusPending}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/prospects", prospectBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pr-1" || body["status"] != "pending" || body["first_name"] != "Ana" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProspectHandler_ListProspects(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.ProspectStatus("bogus")).Return(nil, usecase.ErrInvalidProspect)

		w := doRequest(r, http.MethodGet, "/v1/prospects?status=bogus", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.ProspectStatusPending).Return([]entities.Prospect{{ID: "a"}, {ID: "b"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/prospects?status=pending", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProspectHandler_Lifecycle(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Prospect{}, usecase.ErrProspectNotFound)

		w := doRequest(r, http.MethodGet, "/v1/prospects/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("cancel requires reason", func(t *testing.T) {
		r, _ := newProspectRouter(t)
		w := doRequest(r, http.MethodPatch, "/v1/prospects/pr-1/cancel", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel not pending", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "pr-1", "no coverage").Return(entities.Prospect{}, usecase.ErrProspectNotPending)

		w := doRequest(r, http.MethodPatch, "/v1/prospects/pr-1/cancel", `{"reason":"  no coverage "}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reactivate", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().Reactivate(gomock.Any(), "pr-1").Return(entities.Prospect{ID: "pr-1", Status: entities.ProspectStatusPending}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/prospects/pr-1/reactivate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete finalized", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "pr-1").Return(usecase.ErrProspectFinalized)

		w := doRequest(r, http.MethodDelete, "/v1/prospects/pr-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "pr-1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/v1/prospects/pr-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("history", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().History(gomock.Any(), "pr-1").Return([]entities.ProspectChange{
			{ID: "ch-1", FieldName: "Teléfono 1", OldValue: "5512345678", NewValue: "5587654321"},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/prospects/pr-1/history", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["field_name"] != "Teléfono 1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		r, uc := newProspectRouter(t)
		uc.EXPECT().History(gomock.Any(), "pr-1").Return(nil, errors.New("dynamo down"))

		w := doRequest(r, http.MethodGet, "/v1/prospects/pr-1/history", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
