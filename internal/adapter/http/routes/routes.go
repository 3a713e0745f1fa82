package routes

import (
	"log"
	"strconv"

	_ "fieldbilling/docs" // This will be auto-generated
	"fieldbilling/internal/adapter/http/handlers"
	repository2 "fieldbilling/internal/adapter/persistence/repository"
	"fieldbilling/internal/infrastructure/database"
	"fieldbilling/internal/usecase"

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

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	lineItemRepo := repository2.NewLineItemDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, lineItemRepo)
	lineItemUseCase := usecase.NewLineItemUseCase(lineItemRepo)
	jobReportUseCase := usecase.NewJobReportUseCase(lineItemRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, estimateRepo)
	taxUseCase := usecase.NewTaxUseCase()

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	lineItemHandler := handlers.NewLineItemHandler(lineItemUseCase)
	jobReportHandler := handlers.NewJobReportHandler(jobReportUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	taxHandler := handlers.NewTaxHandler(taxUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, estimateHandler, lineItemHandler, jobReportHandler, invoiceHandler, taxHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
