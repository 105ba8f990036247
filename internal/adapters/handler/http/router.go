package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/somnia-labs/sleep-insights-engine/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	AnalysisHandler *AnalysisHandler
	ProfileHandler  *ProfileHandler
	Logger          *zap.Logger
	Redis           *redis.Client
	RateLimit       int
	StaticDir       string
	Version         string
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestID, _ := middleware.GetRequestID(c)
		deps.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestID),
		)
	})

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		router.Use(middleware.RateLimiter(deps.Redis, deps.Logger, deps.RateLimit, 1*time.Minute))
	}

	api := router.Group("/api")
	{
		deps.AnalysisHandler.RegisterRoutes(api)
		deps.ProfileHandler.RegisterRoutes(api)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().Format(time.RFC3339),
				"version":   deps.Version,
			})
		})
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerStatic(router, deps.StaticDir)

	return router
}

// registerStatic serves the bundled front-end: index.html at the root and
// any other file relative to the static dir. API misses and unknown paths
// keep the JSON error envelope.
func registerStatic(router *gin.Engine, dir string) {
	if dir != "" {
		router.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(dir, "index.html"))
		})
	}

	router.NoRoute(func(c *gin.Context) {
		if dir == "" || c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			respondError(c, http.StatusNotFound, "not found")
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			respondError(c, http.StatusNotFound, "not found")
			return
		}

		c.File(path)
	})
}
