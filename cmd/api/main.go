package main

import (
	"taskdesk/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskdesk/internal/app/service"

	dbadapter "taskdesk/internal/adapter/db"
	httpadapter "taskdesk/internal/adapter/http"
	"taskdesk/internal/adapter/http/handlers"
	httpmiddleware "taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/config"
)

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
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	itemRepository := dbadapter.NewItemRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	userRepository := dbadapter.NewUserRepository(db)

	itemService := service.NewItemService(itemRepository)
	taskService := service.NewTaskService(taskRepository, userRepository)
	userService := service.NewUserService(userRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db, cfg)
	itemHandler := handlers.NewItemHandler(itemService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)
	httpadapter.RegisterRoutes(r, healthHandler, itemHandler, taskHandler, userHandler)

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
