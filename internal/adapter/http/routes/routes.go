package routes

import (
	"log"
	"os"

	_ "sapataria_xpto/docs" // This will be auto-generated
	"sapataria_xpto/internal/adapter/http/handlers"
	"sapataria_xpto/internal/adapter/http/middleware"
	repository2 "sapataria_xpto/internal/adapter/persistence/repository"
	infraauth "sapataria_xpto/internal/infrastructure/auth"
	"sapataria_xpto/internal/infrastructure/database"
	"sapataria_xpto/internal/infrastructure/documents"
	"sapataria_xpto/internal/infrastructure/messaging"
	"sapataria_xpto/internal/infrastructure/payments"
	"sapataria_xpto/internal/infrastructure/storage"
	"sapataria_xpto/internal/usecase"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	s3Client := database.ConnectS3()

	pedidoRepo := repository2.NewPedidoDynamoRepository(ddb)
	clienteRepo := repository2.NewClienteDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	blobStorage := storage.NewS3Storage(s3Client)
	notifier := messaging.NewWhatsAppNotifier()
	renderer := documents.NewPedidoPDFRenderer()
	tokenService := infraauth.NewJWTService()
	hasher := infraauth.NewBcryptHasher()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	statusInicial := os.Getenv("PEDIDO_STATUS_INICIAL")

	pedidoUseCase := usecase.NewPedidoUseCase(pedidoRepo, clienteRepo, notifier, statusInicial)
	clienteUseCase := usecase.NewClienteUseCase(clienteRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, hasher, tokenService)
	dashboardUseCase := usecase.NewDashboardUseCase(pedidoRepo, clienteRepo, userRepo, statusInicial)
	uploadUseCase := usecase.NewUploadUseCase(blobStorage)
	documentoUseCase := usecase.NewDocumentoUseCase(pedidoRepo, clienteRepo, renderer, blobStorage)
	pagamentoUseCase := usecase.NewPagamentoUseCase(pedidoRepo, paymentGateway)

	pedidoHandler := handlers.NewPedidoHandler(pedidoUseCase)
	statusHandler := handlers.NewStatusHandler()
	clienteHandler := handlers.NewClienteHandler(clienteUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	uploadHandler := handlers.NewUploadHandler(uploadUseCase)
	documentoHandler := handlers.NewDocumentoHandler(documentoUseCase)
	pagamentoHandler := handlers.NewPagamentoHandler(pagamentoUseCase)

	// Rotas publicas
	public := router.Group("/")
	addPingRoutes(public)
	addAuthRoutes(public, authHandler)

	// Rotas autenticadas
	private := router.Group("/")
	private.Use(middleware.RequireAuth(tokenService))
	addPedidoRoutes(private, pedidoHandler, statusHandler, documentoHandler, pagamentoHandler)
	addClienteRoutes(private, clienteHandler)
	addDashboardRoutes(private, dashboardHandler)
	addUploadRoutes(private, uploadHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
