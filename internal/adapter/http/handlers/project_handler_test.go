package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"veltech_portal/internal/adapter/http/handlers/mocks"
	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_GetProjectByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id", h.GetProjectByID)

		uc.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:project_id", h.GetProjectByID)

		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID:               "p-1",
			QuotationID:      "q-1",
			Status:           entities.ProjectStatusOngoing,
			PaymentStatus:    entities.ProjectPaymentStatusWaitingPayment,
			RemainingBalance: decimal.NewFromInt(85000),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ONGOING" || body["remaining_balance"] != "85000.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_UpdateProjectStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/status", h.UpdateProjectStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/status", h.UpdateProjectStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "p-1", entities.ProjectStatusOngoing, "admin-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusOngoing}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/status", bytes.NewBufferString(`{"status":"ongoing","actor_id":"admin-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_SetMilestones(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/milestones", h.SetMilestones)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/milestones", bytes.NewBufferString(`{"milestones":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gap in numbering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/milestones", h.SetMilestones)

		uc.EXPECT().SetMilestones(gomock.Any(), "p-1", gomock.Any()).Return(nil, usecase.ErrInvalidMilestoneSchedule)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/milestones", bytes.NewBufferString(`{"milestones":[{"milestone_no":1,"price":"40000","description":"rough-in"},{"milestone_no":3,"price":"45000","description":"finishing"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:project_id/milestones", h.SetMilestones)

		now := time.Now().UTC()
		uc.EXPECT().SetMilestones(gomock.Any(), "p-1", gomock.Any()).Return([]entities.ProjectMilestone{
			{
				ProjectID:     "p-1",
				MilestoneNo:   1,
				Price:         decimal.NewFromInt(40000),
				Description:   "rough-in",
				Status:        entities.MilestoneStatusPending,
				BillingStatus: entities.MilestoneBillingStatusUnbilled,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/milestones", bytes.NewBufferString(`{"milestones":[{"milestone_no":1,"price":"40000","description":"rough-in"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["price"] != "40000.00" || body[0]["billing_status"] != "UNBILLED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_SetContractRefs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.PATCH("/v1/projects/:project_id/contract", h.SetContractRefs)

	uc.EXPECT().SetContractRefs(gomock.Any(), "p-1", "docs/contract.pdf", "").
		Return(entities.Project{ID: "p-1", ContractRef: "docs/contract.pdf"}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/contract", bytes.NewBufferString(`{"contract_ref":"docs/contract.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["contract_ref"] != "docs/contract.pdf" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapProjectError(t *testing.T) {
	if got := mapProjectError(usecase.ErrInvalidProjectID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrInvalidMilestoneSchedule); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(usecase.ErrIllegalTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapProjectError(usecase.ErrConcurrentConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapProjectError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
