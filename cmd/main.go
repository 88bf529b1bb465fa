package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	kafka "github.com/segmentio/kafka-go"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/facades"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/handlers"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/jwt"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/middlewares"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/repositories"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title dreamcatcher-server API
// @version 1.0.0
// @description Backend for planning photography shoots: accounts, shoot plans, map and weather lookups, a conversational assistant and a render relay
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		amapKey, tiandituKey, openWeatherKey,
		rendererURL,
		llmBaseURL, llmAPIKey, llmModel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		amapKey, tiandituKey, openWeatherKey,
		rendererURL,
		llmBaseURL, llmAPIKey, llmModel,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT, upstream-service and LLM
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	amapKey, tiandituKey, openWeatherKey string,
	rendererURL string,
	llmBaseURL, llmAPIKey, llmModel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "dreamcatcher")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, backs the revoked-token store
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config, empty brokers disable plan event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_PLAN_EVENTS_TOPIC", "plan-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "1800")); err != nil {
		return
	}

	// Upstream service keys
	amapKey = getEnv("AMAP_API_KEY", "")
	tiandituKey = getEnv("TIANDITU_API_KEY", "")
	openWeatherKey = getEnv("OPENWEATHER_API_KEY", "")

	// Renderer config
	rendererURL = getEnv("RENDERER_WS_URL", "ws://localhost:9000/render")

	// LLM config
	llmBaseURL = getEnv("LLM_BASE_URL", "")
	llmAPIKey = getEnv("LLM_API_KEY", "")
	llmModel = getEnv("LLM_MODEL", "gpt-4o")

	return
}

// run initializes the logger, database, Redis, Kafka, LLM client and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	amapKey, tiandituKey, openWeatherKey string,
	rendererURL string,
	llmBaseURL, llmAPIKey, llmModel string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka producer for plan lifecycle events
	var planEvents services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		planEvents = w
	}

	// LLM client, any OpenAI-compatible endpoint works
	llmConfig := openai.DefaultConfig(llmAPIKey)
	if llmBaseURL != "" {
		llmConfig.BaseURL = llmBaseURL
	}
	llmClient := openai.NewClientWithConfig(llmConfig)

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	planReadRepo := repositories.NewPlanReadRepository(db)
	planWriteRepo := repositories.NewPlanWriteRepository(db, middlewares.GetTxFromContext)
	revokedTokenRepo := repositories.NewRevokedTokenRepository(rdb)

	// Initialize facades
	geocoder := facades.NewGeocoderFacade(amapKey, "")
	weather := facades.NewWeatherFacade(openWeatherKey, "")
	tiles := facades.NewTileFacade(tiandituKey, "")

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, revokedTokenRepo)
	planService := services.NewPlanService(planReadRepo, planWriteRepo, planEvents, nil)
	assistantService := services.NewAssistantService(llmClient, llmModel, planService, geocoder, weather, nil)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler(jwtSvc, authService)
	meDetailHandler := handlers.NewMeDetailHandler(jwtSvc, authService)
	verifyTokenHandler := handlers.NewVerifyTokenHandler(jwtSvc, authService)
	updateUserHandler := handlers.NewUpdateUserHandler(jwtSvc, authService, authService)
	changePasswordHandler := handlers.NewChangePasswordHandler(jwtSvc, authService, authService)
	userByIDHandler := handlers.NewUserByIDHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(jwtSvc, authService)

	getPlanHandler := handlers.NewGetPlanHandler(planService, jwtSvc)
	listPlansHandler := handlers.NewListPlansHandler(planService, jwtSvc)
	createPlanHandler := handlers.NewCreatePlanHandler(planService, jwtSvc)
	updatePlanHandler := handlers.NewUpdatePlanHandler(planService, jwtSvc)
	deletePlanHandler := handlers.NewDeletePlanHandler(planService, jwtSvc)

	chatHandler := handlers.NewChatHandler(assistantService, jwtSvc)
	chatHealthHandler := handlers.NewChatHealthHandler()

	weatherHandler := handlers.NewWeatherHandler(weather)
	tileHandler := handlers.NewTileHandler(tiles)
	positionHandler := handlers.NewPositionHandler(geocoder)

	renderHandler := handlers.NewRenderRelayHandler(planReadRepo, func() facades.RendererGateway {
		return facades.NewWebSocketRendererGateway(rendererURL)
	})

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc, revokedTokenRepo)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.With(txMiddleware).Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/auth/me", meHandler)
			r.Get("/auth/me/detail", meDetailHandler)
			r.Post("/auth/verify-token", verifyTokenHandler)
			r.Get("/auth/user/{id}", userByIDHandler)
			r.Post("/auth/logout", logoutHandler)
			r.With(txMiddleware).Put("/auth/me", updateUserHandler)
			r.With(txMiddleware).Post("/auth/change-password", changePasswordHandler)

			r.Get("/plans", listPlansHandler)
			r.Get("/plans/{id}", getPlanHandler)
			r.With(txMiddleware).Post("/plans", createPlanHandler)
			r.With(txMiddleware).Patch("/plans/{id}", updatePlanHandler)
			r.With(txMiddleware).Delete("/plans/{id}", deletePlanHandler)

			r.With(txMiddleware).Post("/llm/chat", chatHandler)
			r.Get("/llm/health", chatHealthHandler)

			r.Get("/util/weather", weatherHandler)
			r.Get("/util/tile", tileHandler)
			r.Get("/util/position", positionHandler)
		})
	})

	r.Get("/ws/render/{plan_id}", renderHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
