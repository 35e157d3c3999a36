package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"geolumiere/services/auth"
	"geolumiere/utils"
)

// AdminAuthMiddleware guards the back-office routes. The bearer token must
// carry a valid HS256 signature with an unexpired claim set, and its hash
// must still be present in the session allow-list: the signature check
// rejects forged or expired tokens without touching Redis, the allow-list
// makes logout take effect immediately.
func AdminAuthMiddleware(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Non autorisé"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Non autorisé"})
			return
		}

		active, err := authSvc.IsSessionActive(c.Request.Context(), token)
		if err != nil || !active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Non autorisé"})
			return
		}

		c.Set("adminID", adminID)
		c.Set("adminToken", token)
		c.Set("isAdmin", true)
		c.Next()
	}
}
