package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/edirooss/zmux-server/internal/api/handler"
	"github.com/edirooss/zmux-server/internal/api/middleware"
	"github.com/edirooss/zmux-server/internal/cache"
	"github.com/edirooss/zmux-server/internal/env"
	"github.com/edirooss/zmux-server/internal/service"
	"github.com/edirooss/zmux-server/internal/telemetry"
)

func main() {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	log := zap.Must(logConfig.Build())
	defer log.Sync()
	log = log.Named("main")

	cfg := env.Load()

	// Enable strict JSON decoding (must be before binding happens)
	binding.EnableDecoderDisallowUnknownFields = true

	rec := telemetry.NewRecorder()
	svc := service.NewSimulationService(log, rec)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	cmp := cache.NewCompareCache(log, rdb, cache.CompareOptions{
		TTL: time.Duration(cfg.CacheTTLSeconds) * time.Second,
	})

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	r.Use(gin.Recovery()) // Recovery first (outermost)

	if cfg.IsDev() {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(log)) // Observability after that (logger, tracing)

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.POST("/execute", handler.Execute(svc))
	r.POST("/compare", handler.Compare(svc, cmp))

	for _, algo := range []string{"fcfs", "sjf", "spn", "srtf", "hrrn", "rr", "mlq", "mlfq"} {
		r.POST("/api/schedule/"+algo, handler.Legacy(svc, algo))
	}

	r.GET("/metrics", gin.WrapH(rec.Handler()))

	httpserver := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,

		MaxHeaderBytes: 1 << 15,

		ErrorLog: zap.NewStdLog(log.Named("http").WithOptions(zap.AddCallerSkip(1))),
	}

	log.Info("running HTTP server", zap.String("addr", cfg.Addr))
	if err := httpserver.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server failed", zap.Error(err))
	}
}
