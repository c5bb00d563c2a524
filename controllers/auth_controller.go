package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/admin-go/config"
	"github.com/skill-swap/admin-go/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Config *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Config: cfg}
}

// AdminLogin verifies the console credentials and issues the admin
// session token.
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if input.Email != ac.Config.AdminEmail {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials", "success": false})
		return
	}

	if err := bcrypt.CompareHashAndPassword(ac.Config.AdminPasswordHash, []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials", "success": false})
		return
	}

	claims := &utils.AdminClaims{
		Email: ac.Config.AdminEmail,
		Name:  ac.Config.AdminName,
		Role:  "admin",
	}

	token, err := utils.GenerateAdminToken(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_type":   "Bearer",
		"access_token": token,
		"admin": gin.H{
			"email": claims.Email,
			"name":  claims.Name,
			"role":  claims.Role,
		},
		"success": true,
	})
}
