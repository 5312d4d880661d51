package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"jyotish/internal/astro"
	"jyotish/internal/clients"
	"jyotish/internal/config"
	"jyotish/internal/ephemeris"
	"jyotish/internal/handlers"
	"jyotish/internal/middleware"
	"jyotish/internal/repository"
	"jyotish/internal/service"
	"jyotish/internal/worker"
	"jyotish/pkg/database"
	"jyotish/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	// Загрузка .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("=== Jyotish Panchang Backend Starting ===")

	// Загрузка конфигурации
	cfg := config.Load()

	// Загрузка рядов VSOP87
	eng, err := ephemeris.New(cfg.Ephemeris.DataDir)
	if err != nil {
		log.Fatal("Failed to load ephemeris data:", err)
	}
	log.Printf("Ephemeris loaded from %s", cfg.Ephemeris.DataDir)

	// Подключение к PostgreSQL
	db, err := database.Connect(database.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DBName:   cfg.DB.DBName,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	// Подключение к Redis. Без него работаем на кэше в памяти процесса.
	var cacheRepo repository.CacheRepository
	redisClient, err := redis.Connect(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Printf("Redis unavailable, using in-memory cache: %v", err)
		cacheRepo = repository.NewMemoryCacheRepository()
	} else {
		defer redisClient.Close()
		cacheRepo = repository.NewCacheRepository(redisClient)
	}

	// Автомиграция моделей
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Инициализация репозиториев
	panchangRepo := repository.NewPanchangRepository(db)

	geocodeClient := clients.NewGeocodeClient(cfg.Geocode.BaseURL)

	// Правила мухурты. Файл переопределений подключается через MUHURAT_RULES_PATH.
	var rules astro.RuleSet
	if cfg.Muhurat.RulesPath != "" {
		rules, err = astro.LoadRuleOverrides(cfg.Muhurat.RulesPath)
		if err != nil {
			log.Fatal("Failed to load muhurat rules:", err)
		}
		log.Printf("Muhurat rule overrides loaded from %s", cfg.Muhurat.RulesPath)
	}

	// Инициализация сервисов
	geocodeService := service.NewGeocodeService(geocodeClient, cacheRepo)
	panchangService := service.NewPanchangService(eng, cacheRepo, panchangRepo, cfg.Cache.PanchangTTL)
	chartService := service.NewChartService(eng, cacheRepo, cfg.Cache.ChartTTL)
	muhuratService := service.NewMuhuratService(eng, rules, cacheRepo, panchangService, cfg.Cache.MuhuratTTL)
	matchmakingService := service.NewMatchmakingService(eng)
	positionsService := service.NewPositionsService(eng, cacheRepo)
	exportService := service.NewExportService(cfg.Export.OutputDir)

	// Инициализация воркеров (фоновые задачи)
	scheduler := worker.NewScheduler()

	if cfg.Workers.WarmEnabled {
		locations, err := worker.ParseWarmLocations(cfg.Workers.WarmLocations)
		if err != nil {
			log.Fatal("Invalid WARM_LOCATIONS:", err)
		}
		scheduler.AddWorker(worker.NewPanchangWarmWorker(panchangService, locations, cfg.Workers.WarmInterval))
		log.Printf("Panchang warm worker enabled (interval: %v, locations: %d)",
			cfg.Workers.WarmInterval, len(locations))
	}

	if cfg.Workers.PruneEnabled {
		retention := time.Duration(cfg.Workers.RetentionDays) * 24 * time.Hour
		scheduler.AddWorker(worker.NewArchivePruneWorker(panchangRepo, retention, cfg.Workers.PruneInterval))
		log.Printf("Archive prune worker enabled (interval: %v, retention: %d days)",
			cfg.Workers.PruneInterval, cfg.Workers.RetentionDays)
	}

	// Запускаем воркеры в фоне
	go scheduler.Start()
	defer scheduler.Stop()

	// Инициализация Gin
	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in DEBUG mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS для React фронтенда
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiting (только для продакшена)
	if !cfg.App.Debug {
		ipLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(middleware.IPRateLimitMiddleware(ipLimiter))
		log.Printf("Rate limiting enabled: %d req/sec, burst: %d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Инициализация хендлеров
	panchangHandler := handlers.NewPanchangHandler(panchangService, geocodeService)
	chartHandler := handlers.NewChartHandler(chartService)
	muhuratHandler := handlers.NewMuhuratHandler(muhuratService, panchangService, geocodeService)
	matchmakingHandler := handlers.NewMatchmakingHandler(matchmakingService)
	positionsHandler := handlers.NewPositionsHandler(positionsService)
	referenceHandler := handlers.NewReferenceHandler()
	exportHandler := handlers.NewExportHandler(muhuratService, panchangService, exportService, geocodeService)

	// Группа API v1
	api := r.Group("/api/v1")

	// 1. Панчанг дня и месяца
	api.GET("/panchang", panchangHandler.GetDaily)
	api.GET("/panchang/monthly", panchangHandler.GetMonthly)
	api.GET("/panchang/periods", panchangHandler.GetPeriods)

	// 2. Натальные и дробные карты
	api.POST("/chart", chartHandler.CreateChart)
	api.POST("/chart/divisional", chartHandler.CreateDivisionalChart)
	api.POST("/chart/dasha", chartHandler.GetDasha)

	// 3. Подбор мухурты
	api.POST("/muhurat/search", muhuratHandler.SearchMuhurat)
	api.GET("/muhurat/event-types", muhuratHandler.GetEventTypes)
	api.GET("/muhurat/choghadiya", muhuratHandler.GetChoghadiya)
	api.GET("/muhurat/hora", muhuratHandler.GetHora)
	api.GET("/muhurat/today", muhuratHandler.GetToday)

	// 4. Совместимость пар
	api.POST("/matchmaking", matchmakingHandler.GetCompatibility)
	api.POST("/matchmaking/porutham", matchmakingHandler.GetPorutham)
	api.POST("/matchmaking/ashtakoota", matchmakingHandler.GetAshtakoota)

	// 5. Сидерические позиции грах
	api.GET("/positions", positionsHandler.GetPositions)

	// 6. Справочники
	ref := api.Group("/reference")
	ref.GET("/nakshatras", referenceHandler.GetNakshatras)
	ref.GET("/rashis", referenceHandler.GetRashis)
	ref.GET("/tithis", referenceHandler.GetTithis)
	ref.GET("/yogas", referenceHandler.GetYogas)
	ref.GET("/karanas", referenceHandler.GetKaranas)
	ref.GET("/ayanamsas", referenceHandler.GetAyanamsas)

	// 7. Экспорт в CSV/Excel
	api.POST("/export/muhurat", exportHandler.ExportMuhurat)
	api.POST("/export/panchang/monthly", exportHandler.ExportMonthlyPanchang)

	// 8. Health check
	api.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			dbStatus = "unreachable"
		}

		redisStatus := "connected"
		if redisClient == nil {
			redisStatus = "in-memory fallback"
		} else if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "unreachable"
		}

		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services": gin.H{
				"database":  dbStatus,
				"redis":     redisStatus,
				"ephemeris": "loaded",
			},
		})
	})

	// 9. Системные эндпоинты
	api.GET("/system/stats", func(c *gin.Context) {
		ctx := c.Request.Context()

		var redisStats map[string]string
		if redisClient != nil {
			redisStats, _ = redis.GetStats(redisClient)
		}

		archiveCount, _ := panchangRepo.Count(ctx)

		c.JSON(200, gin.H{
			"database": gin.H{
				"panchang_records": archiveCount,
			},
			"redis": redisStats,
			"workers": gin.H{
				"warm_enabled":  cfg.Workers.WarmEnabled,
				"prune_enabled": cfg.Workers.PruneEnabled,
			},
		})
	})

	// 10. Принудительный прогрев кэша (для дебага)
	if cfg.App.Debug {
		api.POST("/refresh/panchang", func(c *gin.Context) {
			ctx := c.Request.Context()

			lat, _ := strconv.ParseFloat(c.DefaultQuery("lat", "28.6139"), 64)
			lon, _ := strconv.ParseFloat(c.DefaultQuery("lon", "77.2090"), 64)
			tzMin, _ := strconv.Atoi(c.DefaultQuery("tz_offset_minutes", "330"))

			date := time.Now().In(time.FixedZone("local", tzMin*60))
			if raw := c.Query("date"); raw != "" {
				parsed, err := time.Parse("2006-01-02", raw)
				if err != nil {
					c.JSON(400, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
					return
				}
				date = parsed
			}

			if err := panchangService.Warm(ctx, date, lat, lon, tzMin); err != nil {
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, gin.H{"message": "Panchang cache warmed"})
		})
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.App.Port)
		log.Printf("API available at http://localhost:%s/api/v1", cfg.App.Port)
		log.Printf("Health check: http://localhost:%s/api/v1/health", cfg.App.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited properly")
}
