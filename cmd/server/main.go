package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/teamspace-dev/teamspace-api/internal/config"
	"github.com/teamspace-dev/teamspace-api/internal/constants"
	"github.com/teamspace-dev/teamspace-api/internal/database"
	"github.com/teamspace-dev/teamspace-api/internal/handlers"
	"github.com/teamspace-dev/teamspace-api/internal/middleware"
	"github.com/teamspace-dev/teamspace-api/internal/repository"
	"github.com/teamspace-dev/teamspace-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	guestRepo := repository.NewGuestAccessRepository(db)
	engageRepo := repository.NewEngagementRepository(db)
	cascader := repository.NewProjectCascader(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	inviteService := services.NewInviteService(guestRepo, userRepo)
	previewService := services.NewLinkPreviewService()
	projectService := services.NewProjectService(
		projectRepo,
		memberRepo,
		guestRepo,
		engageRepo,
		userRepo,
		cascader,
		inviteService,
		cfg.ReadOnly,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	previewHandler := handlers.NewLinkPreviewHandler(previewService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Teamspace API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/joined", projectHandler.JoinedProjects)
			projects.GET("/:id", middleware.RequireProjectAccess(), projectHandler.GetProject)
			projects.DELETE("/:id", middleware.RequireProjectAccess(), projectHandler.DeleteProject)
			projects.POST("/:id/join", middleware.RequireProjectAccess(), projectHandler.Join)
			projects.POST("/:id/leave", middleware.RequireProjectAccess(), projectHandler.Leave)
			projects.POST("/:id/members", middleware.RequireProjectAccess(), projectHandler.AddMember)
			projects.DELETE("/:id/members/:user_id", middleware.RequireProjectAccess(), projectHandler.RemoveMember)
			projects.POST("/:id/move-to-team", middleware.RequireProjectAccess(), projectHandler.MoveToTeam)
			projects.POST("/:id/merge", middleware.RequireProjectAccess(), projectHandler.Merge)
			projects.POST("/:id/invite-guest", middleware.RequireProjectAccess(), projectHandler.InviteGuest)
			projects.POST("/:id/remove-guest", middleware.RequireProjectAccess(), projectHandler.RemoveGuest)
			projects.POST("/:id/visit", middleware.RequireProjectAccess(), projectHandler.TrackVisit)
			projects.POST("/:id/follow", middleware.RequireProjectAccess(), projectHandler.Follow)
			projects.POST("/:id/unfollow", middleware.RequireProjectAccess(), projectHandler.Unfollow)
			projects.PATCH("/:id/notification-settings", middleware.RequireProjectAccess(), projectHandler.UpdateNotificationSettings)
		}

		// Invite routes (protected)
		invites := api.Group("/invites")
		invites.Use(middleware.RequireAuth())
		{
			invites.POST("/accept", inviteHandler.AcceptInvite)
		}

		// Link preview (protected, unrelated to access control)
		api.GET("/link-preview", middleware.RequireAuth(), previewHandler.GetMetaTags)
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
