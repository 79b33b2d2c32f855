package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/kudosboard/kudos-board/docs"
	"github.com/kudosboard/kudos-board/internal/config"
	"github.com/kudosboard/kudos-board/internal/database"
	"github.com/kudosboard/kudos-board/internal/giphy"
	"github.com/kudosboard/kudos-board/internal/handler"
	"github.com/kudosboard/kudos-board/internal/middleware"
	"github.com/kudosboard/kudos-board/internal/migration"
	"github.com/kudosboard/kudos-board/internal/repository"
	"github.com/kudosboard/kudos-board/internal/routes"
	"github.com/kudosboard/kudos-board/internal/service"
	pkgcache "github.com/kudosboard/kudos-board/pkg/cache"
	pkglogger "github.com/kudosboard/kudos-board/pkg/logger"
	pkgredis "github.com/kudosboard/kudos-board/pkg/redis"
)

// @title           Kudos Board API
// @version         1.0
// @description     Boards of kudos cards with votes, likes and comments
//
// @license.name    MIT
//
// @host            localhost:3000
// @BasePath        /

const dbStatsInterval = 15 * time.Second

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	pkglogger.InitStructured(env, "kudos-api")
	pkglogger.SetLevel(os.Getenv("LOG_LEVEL"))
	log := pkglogger.GetLogger()
	log.Info().Str("env", env).Strs("dotenv", dotenvFiles).Msg("starting")

	configPath := config.PathForEnv(env)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}
	config.LogResolved(cfg)

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() { _ = database.Close(db) }()
	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("continuing without Redis")
			redisClient = nil
		} else {
			log.Info().Str("addr", cfg.Redis.Addr()).Msg("connected to Redis")
			defer func() { _ = redisClient.Close() }()
		}
	}

	go reportDBStats(ctx, db)

	router := newRouter(cfg, db, redisClient)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newRouter wires repositories, services and handlers onto a gin engine.
// redisClient may be nil.
func newRouter(cfg *config.Config, db *gorm.DB, redisClient *goredis.Client) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.InputSanitizer())
	router.Use(middleware.Metrics())
	router.Use(cors.New(corsConfig(cfg.CORS)))

	rl := middleware.DefaultRateLimitConfig()
	rl.RequestsPerMinute = cfg.RateLimit.RequestsPerMinute
	router.Use(middleware.RateLimit(redisClient, rl))

	cacheService := pkgcache.NewService(redisClient,
		pkgcache.WithBoardTTL(cfg.Cache.BoardsTTLDuration(), pkgcache.TTLBoardDetail))

	boardRepo := repository.NewBoardRepository(db)
	cardRepo := repository.NewCardRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	gifClient := giphy.NewClient(giphy.Config{
		APIKey:  cfg.Giphy.APIKey,
		BaseURL: cfg.Giphy.BaseURL,
		Rating:  cfg.Giphy.Rating,
	}, pkglogger.WithComponent("giphy"))

	routes.Setup(router, routes.Handlers{
		Board:   handler.NewBoardHandler(service.NewBoardService(boardRepo, cacheService)),
		Card:    handler.NewCardHandler(service.NewCardService(cardRepo, boardRepo, cacheService)),
		Comment: handler.NewCommentHandler(service.NewCommentService(commentRepo, cardRepo)),
		Gif:     handler.NewGifHandler(gifClient, cacheService, cfg.Giphy.Limit),
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", healthHandler(db, cacheService))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Remaining", "X-Cache"},
		MaxAge:        12 * time.Hour,
	}
	origins := cfg.AllowOriginList()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

func healthHandler(db *gorm.DB, cacheService pkgcache.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{
			"status":  "ok",
			"service": "kudos-board",
			"time":    time.Now().Unix(),
		}

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = "down"
		} else {
			body["database"] = "up"
		}

		switch {
		case !cacheService.IsAvailable():
			body["cache"] = "disabled"
		case cacheService.Ping(c.Request.Context()) != nil:
			body["cache"] = "down"
		default:
			body["cache"] = "up"
		}

		c.JSON(status, body)
	}
}

// reportDBStats publishes the pool's in-use count until ctx ends.
func reportDBStats(ctx context.Context, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	ticker := time.NewTicker(dbStatsInterval)
	defer ticker.Stop()
	for {
		middleware.SetDBConnectionsInUse(sqlDB.Stats().InUse)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
