package routes

import (
	"log"
	"strconv"
	"time"

	_ "webara_portal/docs" // swag registration
	"webara_portal/internal/adapter/http/handlers"
	"webara_portal/internal/adapter/http/middleware"
	"webara_portal/internal/adapter/persistence/repository"
	"webara_portal/internal/config"
	"webara_portal/internal/infrastructure/ai"
	"webara_portal/internal/infrastructure/database"
	"webara_portal/internal/infrastructure/identity"
	"webara_portal/internal/infrastructure/notifications"
	"webara_portal/internal/usecase"
	"webara_portal/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
	profileRepo := repository.NewProfileDynamoRepository(ddb, cfg.ProfilesTable)
	businessRepo := repository.NewBusinessDynamoRepository(ddb, cfg.BusinessesTable)
	activityRepo := repository.NewQuoteActivityDynamoRepository(ddb, cfg.QuoteActivitiesTable)

	var verifier interfaces.IIdentityVerifier
	jwtVerifier, err := identity.NewJWTVerifier(cfg.IdentityJWTSecret, cfg.IdentityJWTPublicKey, cfg.IdentityJWTIssuer)
	if err != nil {
		log.Printf("[auth][routes] identity verifier not configured, signed-in routes will fail: %v", err)
	} else {
		verifier = jwtVerifier
	}

	var notifier interfaces.INotifier
	if cfg.RedisURL != "" {
		rdb, err := notifications.Connect(cfg.RedisURL)
		if err != nil {
			log.Printf("[notifications][routes] redis not configured: %v", err)
		} else {
			notifier = notifications.NewRedisNotifier(rdb, cfg.NotificationsChannel)
		}
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, profileRepo, businessRepo, activityRepo, notifier)
	generationUseCase := usecase.NewQuoteGenerationUseCase(newQuoteGenerator(cfg))
	profileUseCase := usecase.NewProfileUseCase(profileRepo, businessRepo)
	callerResolver := usecase.NewCallerResolver(verifier, profileRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, generationUseCase)
	adminHandler := handlers.NewAdminHandler(quoteUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicQuoteRoutes(v1, quoteHandler)

	// Signed-in routes; tier checks happen in the use cases
	authed := v1.Group("", middleware.ResolveCaller(callerResolver))
	addQuoteRoutes(authed, quoteHandler)
	addProfileRoutes(authed, profileHandler)
	addAdminRoutes(authed, adminHandler)
}

func newQuoteGenerator(cfg config.Config) interfaces.IQuoteGenerator {
	if cfg.QuoteGeneratorMock {
		log.Printf("[quote][routes] using mock quote generator")
		return ai.MockQuoteGenerator{}
	}
	return ai.NewQuoteGenerator(ai.NewClient(ai.ClientConfig{
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	}))
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
