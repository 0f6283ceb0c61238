package routes

import (
	"context"
	"os"
	"strconv"

	_ "atelie_crm/docs" // This will be auto-generated
	"atelie_crm/internal/adapter/http/handlers"
	"atelie_crm/internal/adapter/persistence/localstore"
	repository2 "atelie_crm/internal/adapter/persistence/repository"
	appconfig "atelie_crm/internal/infrastructure/config"
	"atelie_crm/internal/infrastructure/database"
	"atelie_crm/internal/infrastructure/payments"
	"atelie_crm/internal/usecase"
	"atelie_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	log := appconfig.GetLogger()

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
	log := appconfig.GetLogger()

	clientRepo, serviceRepo, orderRepo, entryRepo, movementRepo := buildRepositories()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Infof("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	session := usecase.NewCRMSession(clientRepo, serviceRepo, orderRepo, entryRepo, movementRepo, paymentGateway, log)
	if err := session.Refresh(context.Background()); err != nil {
		log.Warnf("initial refresh failed, starting with empty collections: %v", err)
	}

	clientHandler := handlers.NewClientHandler(session)
	serviceHandler := handlers.NewServiceHandler(session)
	orderHandler := handlers.NewServiceOrderHandler(session)
	financeHandler := handlers.NewFinanceHandler(session)
	cashbookHandler := handlers.NewCashbookHandler(session)
	sessionHandler := handlers.NewSessionHandler(session)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, clientHandler, serviceHandler, orderHandler, financeHandler, cashbookHandler, sessionHandler)
}

// buildRepositories selects the record store from RECORD_STORE: "local"
// keeps everything in a single JSON file (LOCALSTORE_PATH, default
// ./atelie_crm.json); anything else uses DynamoDB.
func buildRepositories() (
	interfaces.IClientRepository,
	interfaces.IServiceRepository,
	interfaces.IServiceOrderRepository,
	interfaces.IFinancialEntryRepository,
	interfaces.ICashMovementRepository,
) {
	log := appconfig.GetLogger()

	if os.Getenv("RECORD_STORE") == "local" {
		path := os.Getenv("LOCALSTORE_PATH")
		if path == "" {
			path = "atelie_crm.json"
		}
		store, err := localstore.Open(path)
		if err != nil {
			log.Fatalf("failed to open local record store at %s: %v", path, err)
		}
		log.Infof("using local record store at %s", path)
		return store.Clients(), store.Services(), store.Orders(), store.Entries(), store.Movements()
	}

	ddb := database.ConnectDynamoDB()
	return repository2.NewClientDynamoRepository(ddb),
		repository2.NewServiceDynamoRepository(ddb),
		repository2.NewServiceOrderDynamoRepository(ddb),
		repository2.NewFinancialEntryDynamoRepository(ddb),
		repository2.NewCashMovementDynamoRepository(ddb)
}

func setMiddlewares() {
	log := appconfig.GetLogger()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
