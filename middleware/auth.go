package middleware

import (
	"net/http"
	"strings"
	"time"

	"pizza-store/config"
	"pizza-store/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	Login string          `json:"login"`
	Role  models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		Login: user.Login,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("login", claims.Login)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RoleAtLeast enforces that the caller holds at minimum the given role.
// The token's role is only a hint about who logged in; the authoritative
// role is re-read from the store so a live role change is honored.
func RoleAtLeast(min models.UserRole, roleOf func(login string) (models.UserRole, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := roleOf(GetLogin(c))
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Could not resolve role"})
			c.Abort()
			return
		}
		c.Set("role", string(role))
		if !role.AtLeast(min) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Required role: " + string(min) + " or above"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetLogin extracts the caller's login from context
func GetLogin(c *gin.Context) string {
	val, _ := c.Get("login")
	login, _ := val.(string)
	return login
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get("role")
	role, _ := val.(string)
	return models.UserRole(role)
}
