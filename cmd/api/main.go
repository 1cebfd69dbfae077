package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourusername/trivia-game/internal/config"
	"github.com/yourusername/trivia-game/internal/handler"
	"github.com/yourusername/trivia-game/internal/middleware"
	pgRepo "github.com/yourusername/trivia-game/internal/repository/postgres"
	"github.com/yourusername/trivia-game/internal/service"
	"github.com/yourusername/trivia-game/pkg/database"
)

func main() {
	// Переменные окружения из .env (файл опционален)
	if err := godotenv.Load(); err == nil {
		log.Println("Загружены переменные окружения из .env")
	}

	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции (схема + сид категорий)
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	resolver := service.NewCategoryResolver(categoryRepo)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, resolver, cfg.Pagination.PageSize)
	quizSelector := service.NewQuizSelector(questionRepo, resolver, nil)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService)
	quizHandler := handler.NewQuizHandler(quizSelector)

	// Инициализируем роутер Gin
	router := gin.Default()

	// 405 вместо 404 для неподдерживаемых методов известных маршрутов
	router.HandleMethodNotAllowed = true
	router.NoMethod(handler.MethodNotAllowedHandler)
	router.NoRoute(handler.NotFoundHandler)

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: API публичный, источники не ограничиваем
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	// Ограничение мутирующих запросов через Redis (опционально)
	var writeLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v. Rate limiting отключен.", err)
		} else {
			log.Println("Successfully connected to Redis")
			limiter := middleware.NewRateLimiter(redisClient)
			limitCfg := middleware.DefaultWriteRateLimitConfig()
			if cfg.RateLimit.MaxRequests > 0 {
				limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
			}
			if cfg.RateLimit.WindowSec > 0 {
				limitCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
			}
			writeLimit = limiter.Limit(limitCfg)
		}
	}
	if writeLimit == nil {
		writeLimit = func(c *gin.Context) { c.Next() }
	}

	// Служебные маршруты
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Маршруты API
	router.GET("/categories", questionHandler.GetCategories)

	categoryWithID := router.Group("/categories/:id")
	categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
	{
		categoryWithID.GET("/questions", questionHandler.GetQuestionsByCategory)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.GetQuestions)
		questions.POST("", writeLimit, questionHandler.CreateQuestion)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.GET("/export", questionHandler.ExportQuestions)

		questionWithID := questions.Group("/:id")
		questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
		{
			questionWithID.GET("", questionHandler.GetQuestion)
			questionWithID.DELETE("", writeLimit, questionHandler.DeleteQuestion)
		}
	}

	router.POST("/quizzes", quizHandler.PlayQuiz)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
