package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"medellin/server/config"
	"medellin/server/internal/agent"
	"medellin/server/internal/analytics"
	"medellin/server/internal/api"
	"medellin/server/internal/dataset"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Fatal("OPENAI_API_KEY is not set")
	}

	// Load both record sets once; they stay immutable for the process
	// lifetime.
	logger.Infof("Loading datasets (searches: %s, bookings: %s)", cfg.SearchesGlob, cfg.BookingsPath)
	store, err := dataset.Load(cfg.SearchesGlob, cfg.BookingsPath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load datasets")
	}
	if !store.HasSearches() && !store.HasBookings() {
		logger.Fatal("No datasets could be loaded, check the data paths")
	}

	engine := analytics.NewEngine(store.Searches, store.Bookings)

	runtime := agent.NewOpenAIRuntime(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.MaxToolCalls, logger)
	session := agent.New(runtime, agent.Toolset(engine))

	handler := api.NewHandler(session, store, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
