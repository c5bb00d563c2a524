package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/admin-go/models"
	"github.com/skill-swap/admin-go/moderation"
)

// PublicController covers the two marketplace-facing endpoints that
// feed the moderation queues: the contact form and report filing.
type PublicController struct {
	Engine *moderation.Engine
}

func NewPublicController(engine *moderation.Engine) *PublicController {
	return &PublicController{Engine: engine}
}

func (pc *PublicController) SubmitContactMessage(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	message := pc.Engine.CreateMessage(models.Message{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": message})
}

func (pc *PublicController) FileReport(c *gin.Context) {
	var input struct {
		Type     string `json:"type" binding:"required,oneof=user skill"`
		TargetID string `json:"targetId" binding:"required"`
		Reason   string `json:"reason" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	report, err := pc.Engine.FileReport(input.Type, input.TargetID, input.Reason)
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": report})
}
