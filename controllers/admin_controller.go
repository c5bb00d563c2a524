package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/admin-go/models"
	"github.com/skill-swap/admin-go/moderation"
	"github.com/skill-swap/admin-go/utils"
)

type AdminController struct {
	Engine *moderation.Engine
}

func NewAdminController(engine *moderation.Engine) *AdminController {
	return &AdminController{Engine: engine}
}

// engineError maps the engine's error taxonomy onto HTTP statuses.
func engineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, moderation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "success": false})
	case errors.Is(err, moderation.ErrAlreadyReplied):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "success": false})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
	}
}

func (ac *AdminController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ac.Engine.Stats()})
}

// --- users ---

func (ac *AdminController) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ac.Engine.ListUsers()})
}

func (ac *AdminController) UpdateUserStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	user, err := ac.Engine.SetUserStatus(c.Param("userId"), input.Status)
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	if err := ac.Engine.DeleteUser(c.Param("userId")); err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}

// --- skills ---

func (ac *AdminController) GetSkills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ac.Engine.ListSkills()})
}

func (ac *AdminController) UpdateSkillStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	skill, err := ac.Engine.SetSkillStatus(c.Param("skillId"), input.Status)
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": skill})
}

func (ac *AdminController) DeleteSkill(c *gin.Context) {
	if err := ac.Engine.DeleteSkill(c.Param("skillId")); err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill deleted"})
}

// --- reports ---

func (ac *AdminController) GetReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ac.Engine.ListReports()})
}

func (ac *AdminController) ResolveReport(c *gin.Context) {
	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !models.IsValidReportOutcome(input.Action) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be approve or reject", "success": false})
		return
	}

	if err := ac.Engine.ResolveReport(c.Param("reportId"), input.Action); err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report resolved"})
}

// --- messages ---

func (ac *AdminController) GetMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ac.Engine.ListMessages()})
}

func (ac *AdminController) UpdateMessageStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required,oneof=read archived"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	message, err := ac.Engine.MarkMessage(c.Param("messageId"), input.Status)
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": message})
}

func (ac *AdminController) ReplyToMessage(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	// The reply is signed with the logged-in admin's display name.
	adminName := "Admin"
	if admin := utils.GetAdmin(c); admin != nil && admin.Name != "" {
		adminName = admin.Name
	}

	message, err := ac.Engine.ReplyToMessage(c.Param("messageId"), adminName, input.Content)
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": message})
}

func (ac *AdminController) DeleteMessage(c *gin.Context) {
	if err := ac.Engine.DeleteMessage(c.Param("messageId")); err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted"})
}

// --- settings ---

func (ac *AdminController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ac.Engine.Settings()})
}

func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var input models.SystemSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	settings, err := ac.Engine.UpdateSettings(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}
