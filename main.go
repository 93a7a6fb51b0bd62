package main

import (
	"context"
	"flag"
	"log"

	"Karyatra/be/internal/auth"
	"Karyatra/be/internal/config"
	KDb "Karyatra/be/internal/db"
	"Karyatra/be/internal/keywords"
	"Karyatra/be/internal/llm"
	"Karyatra/be/internal/recommend"
	"Karyatra/be/internal/resource"
	"Karyatra/be/internal/search"
	"Karyatra/be/internal/skills"
	"Karyatra/be/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	_ "github.com/lib/pq"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	envPath := flag.String("env", "config/.env", "path to .env file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath, *envPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := KDb.NewKDb("postgres", cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}()
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize router
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		ExposeHeaders:    cfg.CORS.ExposeHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}))

	// Search providers join the set only when their credentials exist.
	timeout := cfg.Recommend.RequestTimeout
	providers := []search.Provider{
		search.NewDuckDuckGoProvider(timeout),
	}
	if cfg.SerpAPI.APIKey != "" {
		providers = append(providers, search.NewSerpAPIProvider(cfg.SerpAPI.APIKey))
	}
	if cfg.YouTube.APIKey != "" {
		yt, err := search.NewYouTubeProvider(context.Background(), cfg.YouTube.APIKey)
		if err != nil {
			logger.Fatal("Failed to create YouTube provider", zap.Error(err))
		}
		providers = append(providers, yt)
	}
	providers = append(providers, search.NewGitHubProvider(cfg.GitHub.Token, timeout))

	// Recommendation engine
	cache := recommend.NewCache(cfg.Recommend.CacheCapacity)
	extractor := keywords.NewExtractor(cfg.Recommend.MaxKeywords)
	resourceRepository := resource.NewRepositoryImpl(db)
	engine := recommend.NewServiceImpl(resourceRepository, providers, extractor, cache, logger)

	// Optional LLM skill extraction
	var skillExtractor skills.Extractor
	switch {
	case cfg.OpenAI.APIKey != "":
		clientConfig := openai.DefaultConfig(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			clientConfig.BaseURL = cfg.OpenAI.BaseURL
		}
		provider := llm.NewOpenAIProvider(openai.NewClientWithConfig(clientConfig))
		skillExtractor = skills.NewServiceImpl(provider, cfg.OpenAI.Model, logger)
	case cfg.GeminiAI.APIKey != "":
		client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAI.APIKey))
		if err != nil {
			logger.Fatal("Failed to create Gemini client", zap.Error(err))
		}
		defer client.Close()
		provider := llm.NewGeminiAIProvider(client, "")
		skillExtractor = skills.NewServiceImpl(provider, "", logger)
	}

	recommendController := recommend.NewControllerImpl(engine, skillExtractor)
	recommendController.RegisterRoutes(router)

	// Curation and feedback
	resourceService := resource.NewServiceImpl(resourceRepository, cache, logger)
	resourceController := resource.NewControllerImpl(resourceService)
	resourceController.RegisterRoutes(router, auth.RequireAuth(cfg.JWT))

	// User management
	userRepository := user.NewRepositoryImpl(db)
	userService := user.NewServiceImpl(userRepository)
	userController := user.NewControllerImpl(userService)
	userController.RegisterRoutes(router)

	// Auth management
	authService := auth.NewServiceImpl(userService, cfg.JWT)
	authController := auth.NewControllerImpl(authService)
	authController.RegisterRoutes(router)

	// Start server
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
