package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ideahub/config"
	"ideahub/handlers"
	"ideahub/middleware"
	"ideahub/repositories"
	"ideahub/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database (users, developer requests)
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	requestRepo := repositories.NewDeveloperRequestRepository(db)
	ideaRepo := repositories.NewIdeaRepository(config.IdeasFile())
	reportRepo := repositories.NewReportRepository(config.ReportsFile())

	// Initialize services
	authService := services.NewAuthService(userRepo)
	requestService := services.NewRequestService(requestRepo)
	ideaService := services.NewIdeaService(ideaRepo, reportRepo, config.UploadDir())
	chatbotService := services.NewChatbotService(ideaRepo, reportRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	requestHandler := handlers.NewRequestHandler(requestService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Uploaded idea images
	router.Static("/images", config.UploadDir())

	// Public routes
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/api/ideas", ideaHandler.List)
	router.GET("/api/ideas/:id/reports", ideaHandler.ListReports)
	router.POST("/chatbot", chatbotHandler.Chat)

	// Routes requiring a logged-in user
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/api/ideas", ideaHandler.Create)
		protected.POST("/api/ideas/:id/vote", ideaHandler.Vote)
		protected.POST("/api/ideas/:id/report", ideaHandler.Report)
		protected.POST("/edit_idea/:id", ideaHandler.Edit)
		protected.POST("/edit_idea/:id/inline", ideaHandler.InlineEdit)
		protected.DELETE("/delete_idea/:id", ideaHandler.Delete)

		protected.GET("/settings", authHandler.GetSettings)
		protected.POST("/settings", authHandler.UpdateSettings)
		protected.POST("/delete_account", authHandler.DeleteAccount)
		protected.POST("/developer_request", requestHandler.Submit)

		// Moderation routes (developer or admin tier)
		moderator := protected.Group("/")
		moderator.Use(middleware.RequireTier("developer", "admin"))
		{
			moderator.GET("/reports", ideaHandler.Moderation)
			moderator.DELETE("/delete_report/:id", ideaHandler.DeleteReport)
		}

		// Admin routes
		admin := protected.Group("/")
		admin.Use(middleware.RequireTier("admin"))
		{
			admin.GET("/requests", requestHandler.List)
			admin.POST("/approve/:id", requestHandler.Approve)
			admin.POST("/reject/:id", requestHandler.Reject)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
