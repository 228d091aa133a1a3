package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourtravels/utils"
)

// AdminCookieName is the httpOnly cookie carrying the admin session token.
const AdminCookieName = "adminToken"

// AdminAuthMiddleware validates the admin JWT cookie and checks the session
// is still live in the auth cache (logout revokes it before JWT expiry).
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin not authenticated"})
			return
		}

		adminID, err := utils.ExtractIDFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		live, err := utils.AdminSessionExists(utils.GetAuthCacheClient(), utils.HashToken(token))
		if err != nil || !live {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
