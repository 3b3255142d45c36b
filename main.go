package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"progress-service/internal/cache"
	"progress-service/internal/db"
	"progress-service/internal/event"
	"progress-service/internal/handlers"
	"progress-service/internal/repository"
	"progress-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)
	defer db.Disconnect()

	// Redis analytics cache (optional)
	var analyticsCache *cache.AnalyticsCache
	if redisAddr := os.Getenv("REDIS_URI"); redisAddr != "" {
		if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
			redisAddr = redisAddr[8:]
		}
		analyticsCache = cache.NewAnalyticsCache(redis.NewClient(&redis.Options{Addr: redisAddr}))
	} else {
		log.Println("Redis not configured, analytics responses will not be cached")
	}

	// RabbitMQ event publisher (optional)
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, progress events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("progress_service")

	eventRepo := repository.NewAnswerEventRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	userRepo := repository.NewUserRepository(database)

	progressService := service.NewProgressService(eventRepo, questionRepo, sessionRepo, userRepo, analyticsCache)
	if publisher != nil {
		progressService.Publisher = publisher
	}
	analyticsService := service.NewAnalyticsService(eventRepo, userRepo, analyticsCache)
	userService := service.NewUserService(userRepo)

	progressHandler := handlers.NewProgressHandler(progressService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	userHandler := handlers.NewUserHandler(userService)

	r.GET("/public/progress/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   "progress-service",
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	setupProgressRoutes(r, progressHandler, analyticsHandler, userHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "6667"
	}
	r.Run(":" + port)
}

func setupProgressRoutes(r *gin.Engine, progressHandler *handlers.ProgressHandler, analyticsHandler *handlers.AnalyticsHandler, userHandler *handlers.UserHandler, publisher *event.EventPublisher) {
	protected := r.Group("/protected/progress")

	// The authenticator in front of this service verifies the caller and
	// forwards the user id; the service trusts the header unconditionally.
	protected.Use(func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	{
		protected.POST("/answer", func(c *gin.Context) {
			progressHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish(event.AnswerSubmitted, gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.GET("/analytics", func(c *gin.Context) {
			analyticsHandler.GetAnalytics(c)
			if publisher != nil {
				publisher.Publish(event.AnalyticsViewed, gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timeframe": c.Query("timeframe"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.GET("/session/:id", progressHandler.GetSessionProgress)

		protected.PUT("/experience-level", func(c *gin.Context) {
			userHandler.SetExperienceLevel(c)
			if publisher != nil {
				publisher.Publish(event.LevelChanged, gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}
}
