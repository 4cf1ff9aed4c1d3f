package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/taniteam/catatan/internal/config"
	"github.com/taniteam/catatan/internal/models"
)

// actorKey is the gin context key under which the authenticated staff
// member is stored.
const actorKey = "actor"

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// SessionClaims represents the claims in a session token. The token is a
// session handle, not proof of identity: the login surface never verifies
// a password.
type SessionClaims struct {
	StaffID  string      `json:"staff_id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken generates a signed session token for a staff member.
func GenerateSessionToken(staff *models.Staff) (string, error) {
	claims := &SessionClaims{
		StaffID:  staff.ID,
		Username: staff.Username,
		Name:     staff.Name,
		Role:     staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "catatan-api",
			Subject:   staff.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// AuthMiddleware verifies the session token and sets the acting staff
// member in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Check if the header is in the correct format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Parse the token
		tokenString := parts[1]
		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return getJWTKey(), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		SetActor(c, models.Staff{
			ID:       claims.StaffID,
			Name:     claims.Name,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// SetActor stores the acting staff member in the gin context.
func SetActor(c *gin.Context, staff models.Staff) {
	c.Set(actorKey, staff)
}

// Actor returns the authenticated staff member from the gin context.
func Actor(c *gin.Context) (models.Staff, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return models.Staff{}, false
	}
	staff, ok := value.(models.Staff)
	return staff, ok
}
