package handlers

import (
	"bytes"
	"context"
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

func TestPaymentHandler_SubmitPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.SubmitPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing reference number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.SubmitPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"project_id":"p-1","requester_id":"client-1","proof_image_ref":"proofs/r.jpg","amount":"85000","category":"DOWN_PAYMENT"}`))
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
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments", h.SubmitPayment)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input usecase.SubmitPaymentInput) (entities.ProofOfPayment, error) {
				if input.Category != entities.PaymentCategoryMilestone || input.MilestoneNo != 2 {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.ProofOfPayment{
					ID:              "pay-1",
					ProjectID:       input.ProjectID,
					RequesterID:     input.RequesterID,
					ProofImageRef:   input.ProofImageRef,
					ReferenceNo:     input.ReferenceNo,
					Amount:          input.Amount,
					Category:        input.Category,
					MilestoneNo:     input.MilestoneNo,
					BalanceSnapshot: decimal.NewFromInt(85000),
					Status:          entities.ProofOfPaymentStatusPending,
					SubmittedAt:     time.Now().UTC(),
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"project_id":"p-1","requester_id":"client-1","proof_image_ref":"proofs/r.jpg","reference_no":"GCASH-0001","amount":"40000","category":"milestone","milestone_no":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" || body["status"] != "PENDING" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["amount"] != "40000.00" || body["balance_snapshot"] != "85000.00" {
			t.Fatalf("unexpected money rendering: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_AcceptPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns payment, project, and milestone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payments/:payment_id/accept", h.AcceptPayment)

		resolvedAt := time.Now().UTC()
		uc.EXPECT().Accept(gomock.Any(), "pay-1", "admin-1").Return(usecase.AcceptPaymentResult{
			Payment: entities.ProofOfPayment{
				ID:         "pay-1",
				ProjectID:  "p-1",
				Amount:     decimal.NewFromInt(85000),
				Category:   entities.PaymentCategoryMilestone,
				Status:     entities.ProofOfPaymentStatusAccepted,
				ResolvedAt: resolvedAt,
			},
			Project: entities.Project{
				ID:               "p-1",
				RemainingBalance: decimal.Zero,
				PaymentStatus:    entities.ProjectPaymentStatusFullyPaid,
			},
			Milestone: &entities.ProjectMilestone{
				ProjectID:     "p-1",
				MilestoneNo:   2,
				Price:         decimal.NewFromInt(85000),
				Status:        entities.MilestoneStatusCompleted,
				BillingStatus: entities.MilestoneBillingStatusPaid,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-1/accept", bytes.NewBufferString(`{"actor_id":"admin-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Payment struct {
				Status string `json:"status"`
			} `json:"payment"`
			Project struct {
				RemainingBalance string `json:"remaining_balance"`
				PaymentStatus    string `json:"payment_status"`
			} `json:"project"`
			Milestone *struct {
				BillingStatus string `json:"billing_status"`
			} `json:"milestone"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Payment.Status != "ACCEPTED" {
			t.Fatalf("unexpected payment status: %s", w.Body.String())
		}
		if body.Project.RemainingBalance != "0.00" || body.Project.PaymentStatus != "FULLY_PAID" {
			t.Fatalf("unexpected project: %s", w.Body.String())
		}
		if body.Milestone == nil || body.Milestone.BillingStatus != "PAID" {
			t.Fatalf("unexpected milestone: %s", w.Body.String())
		}
	})

	t.Run("concurrent conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payments/:payment_id/accept", h.AcceptPayment)

		uc.EXPECT().Accept(gomock.Any(), "pay-1", "").Return(usecase.AcceptPaymentResult{}, usecase.ErrConcurrentConflict)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "CONCURRENT_CONFLICT" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_RejectPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payments/:payment_id/reject", h.RejectPayment)

		uc.EXPECT().Reject(gomock.Any(), "pay-1", "").Return(entities.ProofOfPayment{}, usecase.ErrIllegalTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payments/:payment_id/reject", h.RejectPayment)

		uc.EXPECT().Reject(gomock.Any(), "pay-1", "acct-1").Return(entities.ProofOfPayment{
			ID:     "pay-1",
			Status: entities.ProofOfPaymentStatusRejected,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-1/reject", bytes.NewBufferString(`{"actor_id":"acct-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "REJECTED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	if got := mapPaymentError(usecase.ErrInvalidPaymentAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrInvalidPaymentCategory); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrPaymentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(usecase.ErrMilestoneNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(usecase.ErrIllegalTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(usecase.ErrConcurrentConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
