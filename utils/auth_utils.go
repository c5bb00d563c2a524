package utils

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type AdminClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type contextKey string

const AdminContextKey contextKey = "admin"

func GetAdmin(c *gin.Context) *AdminClaims {
	admin, exists := c.Get(string(AdminContextKey))
	if !exists {
		return nil
	}
	if adminClaims, ok := admin.(*AdminClaims); ok {
		return adminClaims
	}
	return nil
}

// GenerateAdminToken mints the HS256 session token for the admin
// console. Tokens expire after 24 hours.
func GenerateAdminToken(claims *AdminClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": claims.Email,
		"name":  claims.Name,
		"role":  claims.Role,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
