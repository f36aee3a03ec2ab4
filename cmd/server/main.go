package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lariat/internal/config"
	"lariat/internal/handler"
	"lariat/internal/model"
	"lariat/internal/mq"
	"lariat/internal/repository"
	"lariat/internal/service"
	"lariat/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Lariat Link Service API
// @version 1.0
// @description Link shortening with per-visit click analytics

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize services
	bloomSvc := service.NewBloomService(redisRepo.GetClient(), &cfg.Bloom)
	linkSvc := service.NewLinkService(mysqlRepo, redisRepo, bloomSvc, cfg.Server.BaseURL)
	qrSvc := service.NewQRCodeService(mysqlRepo, redisRepo)
	recorder := service.NewClickRecorder(mysqlRepo)
	analyticsSvc := service.NewAnalyticsService(mysqlRepo)

	// Initialize MQ (optional, can be nil)
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		}
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// Management API
	linkHandler := handler.NewLinkHandler(linkSvc, analyticsSvc)
	qrHandler := handler.NewQRCodeHandler(qrSvc, analyticsSvc)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.Auth.JWTSecret))
	{
		v1.POST("/links", linkHandler.Create)
		v1.GET("/links", linkHandler.List)
		v1.GET("/links/:id", linkHandler.Get)
		v1.PUT("/links/:id", linkHandler.Update)
		v1.DELETE("/links/:id", linkHandler.Delete)
		v1.GET("/links/:id/analytics", linkHandler.GetAnalytics)

		v1.POST("/qrcodes", qrHandler.Create)
		v1.GET("/qrcodes", qrHandler.List)
		v1.GET("/qrcodes/:id", qrHandler.Get)
		v1.DELETE("/qrcodes/:id", qrHandler.Delete)
		v1.GET("/qrcodes/:id/analytics", qrHandler.GetAnalytics)
	}

	// Visitor path (unauthenticated, always redirects)
	redirectHandler := handler.NewRedirectHandler(linkSvc, qrSvc, recorder, producerOrNil(mqProducer))
	router.GET("/:shortCode", redirectHandler.RedirectLink)
	router.GET("/qr/:id", redirectHandler.RedirectQR)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start MQ consumer if configured
	if cfg.RocketMQ.NameServer != "" {
		mqConsumer, err := mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.ClickMessage) error {
			return recorder.Record(ctx, msg.TargetKind, msg.TargetID, &model.RequestMeta{
				IPAddress: msg.IPAddress,
				UserAgent: msg.UserAgent,
				Referrer:  msg.Referrer,
				VisitedAt: msg.AccessTime,
			})
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// producerOrNil keeps a typed nil *mq.Producer from sneaking into the
// handler's interface field as a non-nil value.
func producerOrNil(p *mq.Producer) mq.ProducerInterface {
	if p == nil {
		return nil
	}
	return p
}
