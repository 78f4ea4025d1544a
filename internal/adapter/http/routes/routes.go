package routes

import (
	"log"
	"strconv"

	_ "veltech_portal/docs" // This will be auto-generated
	"veltech_portal/internal/adapter/http/handlers"
	repository2 "veltech_portal/internal/adapter/persistence/repository"
	"veltech_portal/internal/infrastructure/database"
	"veltech_portal/internal/infrastructure/notifications"
	"veltech_portal/internal/usecase"
	"veltech_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	milestoneRepo := repository2.NewMilestoneDynamoRepository(ddb)
	paymentRepo := repository2.NewProofOfPaymentDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	workflowTx := repository2.NewWorkflowTransactDynamoRepository(ddb)

	var emitter interfaces.INotificationEmitter
	rmqEmitter, err := notifications.NewRabbitMQEmitter()
	if err != nil {
		log.Printf("Notification emitter not configured: %v", err)
	} else {
		emitter = rmqEmitter
	}

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, projectRepo, workflowTx, emitter)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, milestoneRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, projectRepo, milestoneRepo, workflowTx, emitter)
	userUseCase := usecase.NewUserUseCase(userRepo)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, quotationHandler, projectHandler, paymentHandler, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
