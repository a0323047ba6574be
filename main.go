package main

import (
	"database/sql"
	"log"
	"os"

	activationUseCase "github.com/gauciv/pos-app/src/activation/application/usecase"
	activationController "github.com/gauciv/pos-app/src/activation/infrastructure/controller"
	activationPersistence "github.com/gauciv/pos-app/src/activation/infrastructure/persistence"
	apiConfig "github.com/gauciv/pos-app/src/api/config"
	cartUseCase "github.com/gauciv/pos-app/src/cart/application/usecase"
	cartClient "github.com/gauciv/pos-app/src/cart/infrastructure/client"
	cartController "github.com/gauciv/pos-app/src/cart/infrastructure/controller"
	cartSession "github.com/gauciv/pos-app/src/cart/infrastructure/session"
	catalogUseCase "github.com/gauciv/pos-app/src/catalog/application/usecase"
	catalogCache "github.com/gauciv/pos-app/src/catalog/infrastructure/cache"
	catalogController "github.com/gauciv/pos-app/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/gauciv/pos-app/src/catalog/infrastructure/persistence"
	orderUseCase "github.com/gauciv/pos-app/src/order/application/usecase"
	orderController "github.com/gauciv/pos-app/src/order/infrastructure/controller"
	orderPersistence "github.com/gauciv/pos-app/src/order/infrastructure/persistence"
	sharedConfig "github.com/gauciv/pos-app/src/shared/infrastructure/config"
	"github.com/gauciv/pos-app/src/shared/infrastructure/eventbus"
	storeUseCase "github.com/gauciv/pos-app/src/store/application/usecase"
	storeController "github.com/gauciv/pos-app/src/store/infrastructure/controller"
	storePersistence "github.com/gauciv/pos-app/src/store/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 POS Field Order Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if getEnv("PROMETHEUS_ENABLED", "false") == "true" {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Configurar CORS y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedCfg.CORSAllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", "*")
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "pos_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a %s", dbName)

	// Conectar a la base de datos (opcional para bootstrap)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		if err := db.Ping(); err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Printf("✅ Conexión a %s establecida con éxito", dbName)
		}
	}

	// Publisher de eventos de dominio (nil si no hay brokers configurados)
	publisher := eventbus.NewPublisher(getEnv("KAFKA_BROKERS", ""), getEnv("KAFKA_TOPIC", "pos.order.events"))
	if publisher != nil {
		defer publisher.Close()
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = getEnv("APP_VERSION", "1.0.0")
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos de dominio
	getProductUC := setupCatalogModule(v1, db)
	setupStoreModule(v1, db)
	setupOrderModule(v1, db, publisher)
	setupCartModule(v1, getProductUC)
	setupActivationModule(v1, db)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupCatalogModule configura el módulo Catalog y retorna el caso de uso
// de lectura de producto que consume el carrito
func setupCatalogModule(router *gin.RouterGroup, db *sql.DB) *catalogUseCase.GetProductUseCase {
	log.Println("Configurando módulo Catalog...")

	// Cache de categorías en memoria
	var categoryCache *catalogCache.CategoryCache
	if db != nil {
		categoryCache = catalogCache.NewCategoryCache()
		if err := categoryCache.LoadFromDB(db); err != nil {
			log.Printf("⚠️  Warning: Could not load category cache: %v", err)
			categoryCache = nil
		}
	} else {
		log.Println("⚠️  Category cache disabled (no DB connection)")
	}

	var listProductsUC *catalogUseCase.ListProductsUseCase
	var getProductUC *catalogUseCase.GetProductUseCase
	var createProductUC *catalogUseCase.CreateProductUseCase
	var updateProductUC *catalogUseCase.UpdateProductUseCase
	var deleteProductUC *catalogUseCase.DeleteProductUseCase
	var adjustStockUC *catalogUseCase.AdjustStockUseCase
	var listLogsUC *catalogUseCase.ListInventoryLogsUseCase

	if db != nil {
		productRepo := catalogPersistence.NewProductPostgresRepository(db)
		listProductsUC = catalogUseCase.NewListProductsUseCase(productRepo, categoryCache)
		getProductUC = catalogUseCase.NewGetProductUseCase(productRepo, categoryCache)
		createProductUC = catalogUseCase.NewCreateProductUseCase(productRepo)
		updateProductUC = catalogUseCase.NewUpdateProductUseCase(productRepo)
		deleteProductUC = catalogUseCase.NewDeleteProductUseCase(productRepo)
		adjustStockUC = catalogUseCase.NewAdjustStockUseCase(productRepo)
		listLogsUC = catalogUseCase.NewListInventoryLogsUseCase(productRepo)
	}

	catalogCtrl := catalogController.NewProductController(
		listProductsUC, getProductUC, createProductUC, updateProductUC,
		deleteProductUC, adjustStockUC, listLogsUC,
	)
	catalogCtrl.RegisterRoutes(router)

	log.Println("Módulo Catalog configurado exitosamente")
	return getProductUC
}

// setupStoreModule configura el módulo Store
func setupStoreModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Store...")

	var listStoresUC *storeUseCase.ListStoresUseCase
	var getStoreUC *storeUseCase.GetStoreUseCase
	var createStoreUC *storeUseCase.CreateStoreUseCase
	var updateStoreUC *storeUseCase.UpdateStoreUseCase
	var deleteStoreUC *storeUseCase.DeleteStoreUseCase

	if db != nil {
		storeRepo := storePersistence.NewStorePostgresRepository(db)
		listStoresUC = storeUseCase.NewListStoresUseCase(storeRepo)
		getStoreUC = storeUseCase.NewGetStoreUseCase(storeRepo)
		createStoreUC = storeUseCase.NewCreateStoreUseCase(storeRepo)
		updateStoreUC = storeUseCase.NewUpdateStoreUseCase(storeRepo)
		deleteStoreUC = storeUseCase.NewDeleteStoreUseCase(storeRepo)
	}

	storeCtrl := storeController.NewStoreController(
		listStoresUC, getStoreUC, createStoreUC, updateStoreUC, deleteStoreUC,
	)
	storeCtrl.RegisterRoutes(router)

	log.Println("Módulo Store configurado exitosamente")
}

// setupOrderModule configura el módulo Order
func setupOrderModule(router *gin.RouterGroup, db *sql.DB, publisher *eventbus.Publisher) {
	log.Println("Configurando módulo Order...")

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0"))
	if err != nil {
		log.Printf("⚠️  Invalid TAX_RATE, using 0: %v", err)
		taxRate = decimal.Zero
	}

	var createOrderUC *orderUseCase.CreateOrderUseCase
	var listOrdersUC *orderUseCase.ListOrdersUseCase
	var getOrderUC *orderUseCase.GetOrderUseCase
	var updateStatusUC *orderUseCase.UpdateOrderStatusUseCase
	var dailyReportUC *orderUseCase.DailyReportUseCase

	if db != nil {
		orderRepo := orderPersistence.NewOrderPostgresRepository(db)
		productRepo := catalogPersistence.NewProductPostgresRepository(db)
		createOrderUC = orderUseCase.NewCreateOrderUseCase(orderRepo, productRepo, publisher, taxRate)
		listOrdersUC = orderUseCase.NewListOrdersUseCase(orderRepo)
		getOrderUC = orderUseCase.NewGetOrderUseCase(orderRepo)
		updateStatusUC = orderUseCase.NewUpdateOrderStatusUseCase(orderRepo, productRepo, publisher)
		dailyReportUC = orderUseCase.NewDailyReportUseCase(db)
	}

	orderCtrl := orderController.NewOrderController(
		createOrderUC, listOrdersUC, getOrderUC, updateStatusUC, dailyReportUC,
	)
	orderCtrl.RegisterRoutes(router)

	log.Println("Módulo Order configurado exitosamente")
}

// setupCartModule configura el módulo Cart.
// El submit viaja por HTTP a la API de órdenes (circuit breaker incluido),
// igual que lo haría un cliente externo.
func setupCartModule(router *gin.RouterGroup, getProductUC *catalogUseCase.GetProductUseCase) {
	log.Println("Configurando módulo Cart...")

	registry := cartSession.NewCartRegistry()

	var catalogAdapter *cartClient.CatalogAdapter
	if getProductUC != nil {
		catalogAdapter = cartClient.NewCatalogAdapter(getProductUC)
	}

	orderServiceClient := cartClient.NewOrderServiceClient()
	submitOrderUC := cartUseCase.NewSubmitOrderUseCase(orderServiceClient)

	var cartCtrl *cartController.CartController
	if catalogAdapter != nil {
		cartCtrl = cartController.NewCartController(registry, catalogAdapter, submitOrderUC)
	} else {
		cartCtrl = cartController.NewCartController(registry, nil, submitOrderUC)
	}
	cartCtrl.RegisterRoutes(router)

	log.Println("Módulo Cart configurado exitosamente")
}

// setupActivationModule configura el módulo Activation
func setupActivationModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Activation...")

	var generateCodeUC *activationUseCase.GenerateCodeUseCase
	var activateDeviceUC *activationUseCase.ActivateDeviceUseCase

	if db != nil {
		codeRepo := activationPersistence.NewActivationCodePostgresRepository(db)
		generateCodeUC = activationUseCase.NewGenerateCodeUseCase(codeRepo)
		activateDeviceUC = activationUseCase.NewActivateDeviceUseCase(codeRepo)
	}

	activationCtrl := activationController.NewActivationController(generateCodeUC, activateDeviceUC)
	activationCtrl.RegisterRoutes(router)

	log.Println("Módulo Activation configurado exitosamente")
}
