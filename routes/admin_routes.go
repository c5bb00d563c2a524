package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/admin-go/controllers"
)

func SetupAdminRoutes(protected *gin.RouterGroup, adminController *controllers.AdminController) {
	// User management
	protected.GET("/users", adminController.GetUsers)
	protected.PATCH("/users/:userId", adminController.UpdateUserStatus)
	protected.DELETE("/users/:userId", adminController.DeleteUser)

	// Skill moderation
	protected.GET("/skills", adminController.GetSkills)
	protected.PATCH("/skills/:skillId", adminController.UpdateSkillStatus)
	protected.DELETE("/skills/:skillId", adminController.DeleteSkill)

	// Reports
	protected.GET("/reports", adminController.GetReports)
	protected.POST("/reports/:reportId/resolve", adminController.ResolveReport)

	// Contact messages
	protected.GET("/messages", adminController.GetMessages)
	protected.PATCH("/messages/:messageId", adminController.UpdateMessageStatus)
	protected.POST("/messages/:messageId/reply", adminController.ReplyToMessage)
	protected.DELETE("/messages/:messageId", adminController.DeleteMessage)

	// System settings
	protected.GET("/settings", adminController.GetSettings)
	protected.PUT("/settings", adminController.UpdateSettings)
}
