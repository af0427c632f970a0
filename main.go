package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joelle-memorial/backend/handlers"
	candlehandler "github.com/joelle-memorial/backend/internal/candle/handler"
	candlerepo "github.com/joelle-memorial/backend/internal/candle/repository"
	candleservice "github.com/joelle-memorial/backend/internal/candle/service"
	"github.com/joelle-memorial/backend/internal/config"
	"github.com/joelle-memorial/backend/internal/cooldown"
	"github.com/joelle-memorial/backend/internal/database"
	"github.com/joelle-memorial/backend/internal/realtime"
	testimonialhandler "github.com/joelle-memorial/backend/internal/testimonial/handler"
	testimonialrepo "github.com/joelle-memorial/backend/internal/testimonial/repository"
	testimonialservice "github.com/joelle-memorial/backend/internal/testimonial/service"
	"github.com/joelle-memorial/backend/pkg/logger"
	"github.com/joelle-memorial/backend/pkg/metrics"
	"github.com/joelle-memorial/backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging first (LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v admin_password_set=%v",
		cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Admin.Password != "")

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early: the submission cooldown, the global rate
	// limiter and the realtime fanout all prefer it when available.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global per-IP rate limiter (ambient abuse protection; the
	// 1-hour testimonial cooldown is separate and lives in the service)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Content store: MongoDB when configured (with retry/backoff to tolerate
	// startup races), in-memory otherwise.
	testimonialRepo := testimonialrepo.Repository(testimonialrepo.NewMemoryRepo())
	candleRepo := candlerepo.Repository(candlerepo.NewMemoryRepo())
	mongoConnected := false
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts, using in-memory store: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			db := client.Database(cfg.MongoDB.Database)
			testimonialRepo = testimonialrepo.NewMongoRepo(db.Collection("testimonials"))
			candleRepo = candlerepo.NewMongoRepo(db.Collection("candles"))
			mongoConnected = true
		}
	}

	// readiness: 200 only when configured dependencies are reachable
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"mongo": mongoConnected || cfg.MongoDB.URI == "",
			"redis": redisClient != nil || cfg.Redis.Host == "",
		}
		ready := deps["mongo"] && deps["redis"]
		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// submission cooldown store: redis-backed when available so marks
	// survive restarts and are shared across instances
	var cooldownStore cooldown.Store
	if redisClient != nil {
		cooldownStore = cooldown.NewRedisStore(redisClient, "")
	} else {
		cooldownStore = cooldown.NewMemoryStore()
	}
	limiter := cooldown.New(cooldownStore, cfg.Submission.Cooldown)

	// live feed: in-process hub, fanned out through redis when available
	hub := realtime.NewHub()
	var feed realtime.Publisher = hub
	if redisClient != nil {
		bridge := realtime.NewBridge(hub, redisClient)
		feed = bridge
		go bridge.Run(ctx)
	}

	testimonialSvc := testimonialservice.New(testimonialRepo, limiter, feed)
	candleSvc := candleservice.New(candleRepo, feed)

	testimonialhandler.RegisterTestimonialRoutes(r, testimonialSvc)
	candlehandler.RegisterCandleRoutes(r, candleSvc)
	handlers.RegisterTranslationRoutes(r)
	handlers.NewModerationHandler(cfg, testimonialSvc).Register(r)

	snapshot := func(ctx context.Context, topic string) (interface{}, error) {
		switch topic {
		case realtime.TopicTestimonials:
			return testimonialSvc.Snapshot(ctx)
		case realtime.TopicCandles:
			return candleSvc.Snapshot(ctx)
		}
		return nil, fmt.Errorf("unknown topic %q", topic)
	}
	realtime.NewHandler(hub, snapshot).Register(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// serve the exported frontend bundle when configured
	if cfg.Static.Dir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Static.Dir))))
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting memorial backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
