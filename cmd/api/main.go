package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	dbadapter "github.com/batirniyaz/todo-manager-proweb/internal/adapter/db"
	httpadapter "github.com/batirniyaz/todo-manager-proweb/internal/adapter/http"
	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/handlers"
	httpmiddleware "github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/middleware"
	appservice "github.com/batirniyaz/todo-manager-proweb/internal/app/service"
	"github.com/batirniyaz/todo-manager-proweb/internal/config"
	"github.com/batirniyaz/todo-manager-proweb/pkg/authtoken"
	"github.com/batirniyaz/todo-manager-proweb/pkg/translator"
)

const migrationsPath = "db/migrations"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.RunMigrations(db, migrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	tokens := authtoken.NewManager(authtoken.Config{
		SecretKey:  cfg.JWTSecret,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
		Issuer:     cfg.JWTIssuer,
	})

	taskRepository := dbadapter.NewTaskRepository(db)
	commentRepository := dbadapter.NewCommentRepository(db)
	userRepository := dbadapter.NewUserRepository(db)

	taskService := appservice.NewTaskService(taskRepository)
	commentService := appservice.NewCommentService(commentRepository, taskRepository)
	authService := appservice.NewAuthService(userRepository, tokens)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.RateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)
	if len(cfg.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
		r.Use(cors.New(corsConfig))
	}
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService)
	httpadapter.RegisterRoutes(r, tokens, healthHandler, authHandler, taskHandler, commentHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
