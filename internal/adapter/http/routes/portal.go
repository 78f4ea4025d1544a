package routes

import (
	"veltech_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathProjects   = "/projects"
	PathPayments   = "/payments"
	PathUsers      = "/users"
)

func addPortalRoutes(
	rg *gin.RouterGroup,
	quotationHandler *handlers.QuotationHandler,
	projectHandler *handlers.ProjectHandler,
	paymentHandler *handlers.PaymentHandler,
	userHandler *handlers.UserHandler,
) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.GET("/:quotation_id", quotationHandler.GetQuotationByID)
		quotations.PATCH("/:quotation_id/status", quotationHandler.UpdateQuotationStatus)
		quotations.PATCH("/:quotation_id/pricing", quotationHandler.PriceQuotation)
		quotations.POST("/:quotation_id/approve", quotationHandler.ApproveQuotation)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:project_id", projectHandler.GetProjectByID)
		projects.PATCH("/:project_id/status", projectHandler.UpdateProjectStatus)
		projects.PATCH("/:project_id/contract", projectHandler.SetContractRefs)
		projects.POST("/:project_id/milestones", projectHandler.SetMilestones)
		projects.GET("/:project_id/milestones", projectHandler.ListMilestones)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.SubmitPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:payment_id", paymentHandler.GetPaymentByID)
		payments.PATCH("/:payment_id/accept", paymentHandler.AcceptPayment)
		payments.PATCH("/:payment_id/reject", paymentHandler.RejectPayment)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:user_id", userHandler.GetUserByID)
	}
}
