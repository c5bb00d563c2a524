package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/admin-go/config"
	"github.com/skill-swap/admin-go/controllers"
	"github.com/skill-swap/admin-go/middleware"
	"github.com/skill-swap/admin-go/moderation"
)

func SetupRoutes(r *gin.Engine, engine *moderation.Engine, cfg *config.Config) {
	// Initialize controllers
	authController := controllers.NewAuthController(cfg)
	adminController := controllers.NewAdminController(engine)
	publicController := controllers.NewPublicController(engine)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/admin/login", authController.AdminLogin)
		public.POST("/contact", publicController.SubmitContactMessage)
		public.POST("/reports", publicController.FileReport)
	}

	// Protected admin console routes
	protected := r.Group("/api/admin")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.GET("/stats", adminController.GetStats)

		SetupAdminRoutes(protected, adminController)
	}
}
