package usecase

import (
	"context"
	"errors"
	"testing"

	"veltech_portal/internal/domain/entities"
	mock_interfaces "veltech_portal/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func pricedQuotation(id, requesterID string, status entities.QuotationStatus) entities.Quotation {
	return entities.Quotation{
		ID:               id,
		RequesterID:      requesterID,
		BuildingType:     "warehouse",
		Status:           status,
		MaterialsCost:    decimal.NewNullDecimal(decimal.NewFromInt(100000)),
		LaborCost:        decimal.NewNullDecimal(decimal.NewFromInt(50000)),
		RequirementsCost: decimal.NewNullDecimal(decimal.NewFromInt(20000)),
		QuotationDocRef:  "docs/q-1.pdf",
	}
}

func TestQuotationUseCase_CreateQuotation(t *testing.T) {
	t.Run("invalid requester", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, err := uc.CreateQuotation(context.Background(), CreateQuotationInput{RequesterID: "  "})
		if !errors.Is(err, ErrInvalidRequesterID) {
			t.Fatalf("expected ErrInvalidRequesterID, got %v", err)
		}
	})

	t.Run("incomplete input", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, err := uc.CreateQuotation(context.Background(), CreateQuotationInput{
			RequesterID:  "user-1",
			BuildingType: "warehouse",
		})
		if !errors.Is(err, ErrIncompleteInput) {
			t.Fatalf("expected ErrIncompleteInput, got %v", err)
		}
	})

	t.Run("success starts in FOR_REVIEW", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.ID == "" || q.RequesterID != "user-1" || q.Status != entities.QuotationStatusForReview {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		res, err := uc.CreateQuotation(context.Background(), CreateQuotationInput{
			RequesterID:         " user-1 ",
			BuildingType:        "warehouse",
			EstablishmentWidth:  20,
			EstablishmentHeight: 8,
			Features:            []string{"sprinkler", "alarm"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestQuotationUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuotationStatus("NOT_A_STATUS"), "admin-1")
		if !errors.Is(err, ErrInvalidQuotationStatus) {
			t.Fatalf("expected ErrInvalidQuotationStatus, got %v", err)
		}
	})

	t.Run("APPROVED is not reachable here", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuotationStatusApproved, "admin-1")
		if !errors.Is(err, ErrInvariantViolation) {
			t.Fatalf("expected ErrInvariantViolation, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusForReview}, nil)

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuotationStatusClientApproval, "admin-1")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("terminal state rejects everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusCanceled}, nil)

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuotationStatusDrafting, "admin-1")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("success emits target-status notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		emitter := mock_interfaces.NewMockINotificationEmitter(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, emitter)

		current := entities.Quotation{ID: "q-1", RequesterID: "user-1", Status: entities.QuotationStatusForReview}
		updated := current
		updated.Status = entities.QuotationStatusWaitingOcular

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(current, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusForReview, entities.QuotationStatusWaitingOcular).Return(updated, nil)
		emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) error {
				if n.Title != "Ocular visit scheduled" {
					t.Fatalf("unexpected notification title: %q", n.Title)
				}
				if n.OriginType != entities.NotificationOriginQuotation || n.OriginID != "q-1" || n.RecipientUserID != "user-1" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return nil
			},
		)

		res, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuotationStatusWaitingOcular, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuotationStatusWaitingOcular {
			t.Fatalf("expected WAITING_OCULAR, got %s", res.Status)
		}
	})

	t.Run("emitter failure does not fail the operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		emitter := mock_interfaces.NewMockINotificationEmitter(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, emitter)

		current := entities.Quotation{ID: "q-1", RequesterID: "user-1", Status: entities.QuotationStatusForReview}
		updated := current
		updated.Status = entities.QuotationStatusRejectedQuotation

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(current, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusForReview, entities.QuotationStatusRejectedQuotation).Return(updated, nil)
		emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuotationStatusRejectedQuotation, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost conditional write classifies as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		current := entities.Quotation{ID: "q-1", Status: entities.QuotationStatusForReview}
		raced := entities.Quotation{ID: "q-1", Status: entities.QuotationStatusWaitingOcular}

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(current, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusForReview, entities.QuotationStatusRejectedQuotation).Return(entities.Quotation{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(raced, nil)

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuotationStatusRejectedQuotation, "admin-1")
		if !errors.Is(err, ErrConcurrentConflict) {
			t.Fatalf("expected ErrConcurrentConflict, got %v", err)
		}
	})

	t.Run("lost write with vanished entity classifies as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		current := entities.Quotation{ID: "q-1", Status: entities.QuotationStatusForReview}

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(current, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusForReview, entities.QuotationStatusRejectedQuotation).Return(entities.Quotation{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuotationStatusRejectedQuotation, "admin-1")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

func TestQuotationUseCase_PriceQuotation(t *testing.T) {
	t.Run("negative component", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, err := uc.PriceQuotation(context.Background(), PriceQuotationInput{
			QuotationID:   "q-1",
			MaterialsCost: decimal.NewFromInt(-1),
		})
		if !errors.Is(err, ErrInvalidCostComponent) {
			t.Fatalf("expected ErrInvalidCostComponent, got %v", err)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, err := uc.PriceQuotation(context.Background(), PriceQuotationInput{QuotationID: "q-1"})
		if !errors.Is(err, ErrInvalidCostComponent) {
			t.Fatalf("expected ErrInvalidCostComponent, got %v", err)
		}
	})

	t.Run("missing doc ref", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		_, err := uc.PriceQuotation(context.Background(), PriceQuotationInput{
			QuotationID:   "q-1",
			MaterialsCost: decimal.NewFromInt(1000),
		})
		if !errors.Is(err, ErrIncompleteInput) {
			t.Fatalf("expected ErrIncompleteInput, got %v", err)
		}
	})

	t.Run("only DRAFTING can be priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusForReview}, nil)

		_, err := uc.PriceQuotation(context.Background(), PriceQuotationInput{
			QuotationID:     "q-1",
			MaterialsCost:   decimal.NewFromInt(100000),
			QuotationDocRef: "docs/q-1.pdf",
		})
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		drafting := entities.Quotation{ID: "q-1", Status: entities.QuotationStatusDrafting}
		priced := pricedQuotation("q-1", "user-1", entities.QuotationStatusForApproval)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(drafting, nil)
		repo.EXPECT().SetPricing(
			gomock.Any(), "q-1",
			decimal.NewFromInt(100000), decimal.NewFromInt(50000), decimal.NewFromInt(20000),
			"docs/q-1.pdf",
			entities.QuotationStatusDrafting, entities.QuotationStatusForApproval,
		).Return(priced, nil)

		res, err := uc.PriceQuotation(context.Background(), PriceQuotationInput{
			QuotationID:      "q-1",
			MaterialsCost:    decimal.NewFromInt(100000),
			LaborCost:        decimal.NewFromInt(50000),
			RequirementsCost: decimal.NewFromInt(20000),
			QuotationDocRef:  "docs/q-1.pdf",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuotationStatusForApproval {
			t.Fatalf("expected FOR_APPROVAL, got %s", res.Status)
		}
	})
}

func TestQuotationUseCase_Approve(t *testing.T) {
	t.Run("wrong source status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuotation("q-1", "user-1", entities.QuotationStatusForApproval), nil)

		_, err := uc.Approve(context.Background(), "q-1", "user-1")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("unpriced quotation cannot be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", RequesterID: "user-1", Status: entities.QuotationStatusClientApproval}, nil)

		_, err := uc.Approve(context.Background(), "q-1", "user-1")
		if !errors.Is(err, ErrInvariantViolation) {
			t.Fatalf("expected ErrInvariantViolation, got %v", err)
		}
	})

	t.Run("second approval is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewQuotationUseCase(repo, projectRepo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuotation("q-1", "user-1", entities.QuotationStatusClientApproval), nil)
		projectRepo.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(entities.Project{ID: "p-1"}, nil)

		_, err := uc.Approve(context.Background(), "q-1", "user-1")
		if !errors.Is(err, ErrProjectAlreadyExists) {
			t.Fatalf("expected ErrProjectAlreadyExists, got %v", err)
		}
	})

	t.Run("success creates project with full total as balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		tx := mock_interfaces.NewMockIWorkflowTransactionRepository(ctrl)
		emitter := mock_interfaces.NewMockINotificationEmitter(ctrl)
		uc := NewQuotationUseCase(repo, projectRepo, tx, emitter)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuotation("q-1", "user-1", entities.QuotationStatusClientApproval), nil)
		projectRepo.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(entities.Project{}, nil)
		tx.EXPECT().ApproveQuotationAndCreateProject(
			gomock.Any(), "q-1",
			entities.QuotationStatusClientApproval, entities.QuotationStatusApproved,
			gomock.AssignableToTypeOf(entities.Project{}),
		).DoAndReturn(
			func(_ context.Context, _ string, _, _ entities.QuotationStatus, p entities.Project) (entities.Project, error) {
				if p.ID == "" || p.QuotationID != "q-1" || p.RequesterID != "user-1" {
					t.Fatalf("unexpected project: %+v", p)
				}
				if p.Status != entities.ProjectStatusWaitingContract || p.PaymentStatus != entities.ProjectPaymentStatusWaitingDownpayment {
					t.Fatalf("unexpected initial statuses: %+v", p)
				}
				if !p.RemainingBalance.Equal(decimal.NewFromInt(170000)) {
					t.Fatalf("expected balance 170000, got %s", p.RemainingBalance)
				}
				return p, nil
			},
		)
		emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) error {
				if n.Title != "Project drafting started" || n.OriginType != entities.NotificationOriginProject {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return nil
			},
		)

		project, err := uc.Approve(context.Background(), "q-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !project.RemainingBalance.Equal(decimal.NewFromInt(170000)) {
			t.Fatalf("expected balance 170000, got %s", project.RemainingBalance)
		}
	})

	t.Run("cancelled transaction classifies as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		tx := mock_interfaces.NewMockIWorkflowTransactionRepository(ctrl)
		uc := NewQuotationUseCase(repo, projectRepo, tx, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuotation("q-1", "user-1", entities.QuotationStatusClientApproval), nil)
		projectRepo.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(entities.Project{}, nil)
		tx.EXPECT().ApproveQuotationAndCreateProject(gomock.Any(), "q-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuotation("q-1", "user-1", entities.QuotationStatusApproved), nil)

		_, err := uc.Approve(context.Background(), "q-1", "user-1")
		if !errors.Is(err, ErrConcurrentConflict) {
			t.Fatalf("expected ErrConcurrentConflict, got %v", err)
		}
	})
}
