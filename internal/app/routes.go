package app

import (
	"net/http"
	"time"

	"Assistant/internal/auth"
	"Assistant/internal/cache"
	"Assistant/internal/clients/gcal"
	"Assistant/internal/clients/gemini"
	"Assistant/internal/clients/gsearch"
	"Assistant/internal/clients/news"
	"Assistant/internal/clients/openai"
	"Assistant/internal/clients/weather"
	"Assistant/internal/config"
	"Assistant/internal/handlers"
	"Assistant/internal/repo"
	"Assistant/internal/service"
	"Assistant/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *logrus.Logger, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", MetricsHandler())
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	timeout := cfg.Providers.UpstreamTimeout.Duration()

	sessionStore := auth.NewStore(rdb, 24*time.Hour)
	r.Use(auth.OptionalSession(sessionStore))

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	recordCache := cache.NewRecordCache(rdb, cfg.Redis.DefaultTTL.Duration())

	todoRepo := repo.NewPGTodoRepo(db)
	todoSvc := service.NewTodoService(todoRepo, recordCache)
	todoHandler := handlers.NewTodoHandler(todoSvc)
	r.GET("/todos", todoHandler.List)
	r.POST("/todos", todoHandler.Create)
	r.PUT("/todos/:id", todoHandler.Update)
	r.DELETE("/todos/:id", todoHandler.Delete)

	reminderRepo := repo.NewPGReminderRepo(db)
	reminderSvc := service.NewReminderService(reminderRepo, recordCache)
	reminderHandler := handlers.NewReminderHandler(reminderSvc)
	r.GET("/reminders", reminderHandler.List)
	r.GET("/reminders/upcoming", reminderHandler.Upcoming)
	r.POST("/reminders", reminderHandler.Create)
	r.PUT("/reminders/:id", reminderHandler.Update)
	r.DELETE("/reminders/:id", reminderHandler.Delete)

	eventSvc := service.NewEventService(reminderRepo, todoRepo)
	gcalClient := gcal.NewClient(
		cfg.Providers.GoogleClientID,
		cfg.Providers.GoogleClientSecret,
		cfg.Providers.GoogleRedirectURI,
		timeout,
	)
	calendarSvc := service.NewCalendarService(gcalClient, repo.NewPGCredentialRepo(db))
	calendarHandler := handlers.NewCalendarHandler(eventSvc, calendarSvc)
	r.GET("/calendar/auth", calendarHandler.AuthURL)
	r.GET("/calendar/auth/callback", calendarHandler.Callback)
	r.GET("/calendar/events", calendarHandler.Events)
	r.GET("/calendar/events/:date", calendarHandler.EventsByDate)
	r.GET("/calendar/google/events", calendarHandler.GoogleEvents)
	r.POST("/calendar/google/events", calendarHandler.GoogleEventCreate)
	r.PUT("/calendar/google/events/:id", calendarHandler.GoogleEventUpdate)
	r.DELETE("/calendar/google/events/:id", calendarHandler.GoogleEventDelete)

	weatherHandler := handlers.NewWeatherHandler(weather.NewClient(cfg.Providers.OpenWeatherKey, timeout))
	r.GET("/weather", weatherHandler.Current)
	r.GET("/weather/multiple", weatherHandler.Multiple)
	r.GET("/weather/search", weatherHandler.Search)
	r.GET("/weather/coordinates", weatherHandler.Coordinates)
	r.GET("/weather/forecast", weatherHandler.Forecast)

	newsHandler := handlers.NewNewsHandler(news.NewClient(cfg.Providers.NewsKey, timeout))
	r.GET("/news/headlines", newsHandler.Headlines)
	r.GET("/news/search", newsHandler.Search)

	searchSvc := service.NewSearchService(
		gsearch.NewClient(cfg.Providers.SearchKey, cfg.Providers.SearchEngineID, timeout),
		log,
	)
	searchHandler := handlers.NewSearchHandler(searchSvc)
	r.GET("/search", searchHandler.Search)

	geminiClient := gemini.NewClient(cfg.Providers.GeminiKey, timeout)
	chatHandler := handlers.NewChatHandler(geminiClient)
	r.POST("/chat", chatHandler.Chat)
	r.GET("/chat/test", chatHandler.Test)

	speechHandler := handlers.NewSpeechHandler(openai.NewClient(cfg.Providers.OpenAIKey, timeout), geminiClient)
	r.POST("/speech/stt", speechHandler.STT)
	r.POST("/speech/tts", speechHandler.TTS)
	r.POST("/speech/conversation", speechHandler.Conversation)
	r.POST("/speech/speech-conversation", speechHandler.SpeechConversation)
	r.GET("/speech/health", speechHandler.Health)

	settingsHandler := handlers.NewSettingsHandler(settings.NewStore(rdb))
	r.GET("/settings", settingsHandler.Get)
	r.PUT("/settings", settingsHandler.Update)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Assistant API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":         "ok",
			"env":            cfg.App.Env,
			"geminiKey":      presence(cfg.Providers.GeminiKey),
			"openWeatherKey": presence(cfg.Providers.OpenWeatherKey),
			"newsKey":        presence(cfg.Providers.NewsKey),
			"searchKey":      presence(cfg.Providers.SearchKey),
			"openaiKey":      presence(cfg.Providers.OpenAIKey),
			"googleOAuth":    presence(cfg.Providers.GoogleClientID),
			"time":           time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func presence(key string) string {
	if key != "" {
		return "configured"
	}
	return "missing"
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
