package router

import (
	"time"

	"waypoint/config"
	"waypoint/internal/handler"
	"waypoint/internal/middleware"
	"waypoint/internal/repository"
	"waypoint/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	markerRepo := repository.NewMarkerRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	userSvc := service.NewUserService(userRepo, friendshipRepo)
	friendshipSvc := service.NewFriendshipService(friendshipRepo, alertRepo, userRepo)
	proximitySvc := service.NewProximityService(profileRepo, alertRepo, notificationRepo)
	alertSvc := service.NewAlertService(alertRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	markerSvc := service.NewMarkerService(markerRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	meHandler := handler.NewMeHandler(profileRepo, friendshipRepo, friendshipSvc)
	locationHandler := handler.NewLocationHandler(proximitySvc)
	friendshipHandler := handler.NewFriendshipHandler(friendshipSvc, friendshipRepo)
	alertHandler := handler.NewAlertHandler(alertSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	markerHandler := handler.NewMarkerHandler(markerSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		api.GET("/users/search", authMw, userHandler.Search)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.GET("/dashboard", meHandler.Dashboard)
			me.PATCH("/location", locationHandler.UpdateLocation)
			me.POST("/sharing/toggle", meHandler.ToggleSharing)
			me.POST("/notifications/toggle", meHandler.ToggleNotifications)
			me.GET("/alerts", alertHandler.List)
			me.PATCH("/alerts/:id", alertHandler.Update)
			me.GET("/notifications", notificationHandler.List)
			me.GET("/notifications/poll", notificationHandler.Poll)
			me.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			me.POST("/notifications/read-all", notificationHandler.MarkAllRead)
			me.GET("/friends", friendshipHandler.ListFriends)
			me.GET("/friend-requests", friendshipHandler.ListPending)
		}

		friends := api.Group("/friends")
		friends.Use(authMw)
		{
			friends.POST("/requests", friendshipHandler.Create)
			friends.POST("/requests/:id/accept", friendshipHandler.Accept)
			friends.POST("/requests/:id/decline", friendshipHandler.Decline)
		}

		// Markers are a shared map layer with no owner, so no auth.
		api.GET("/markers", markerHandler.List)
		api.POST("/markers", markerHandler.Create)
		api.DELETE("/markers/:id", markerHandler.Delete)
		api.DELETE("/markers", markerHandler.Clear)
	}

	return r
}
