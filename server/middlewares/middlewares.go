package middlewares

import (
	"net/http"
	"strings"

	"bookmates/auth"
	"github.com/gin-gonic/gin"
)

// JWT fetches the caller's access token, looking first at the Authorization
// bearer header and falling back to the "token" query field. It then
// validates the token and adds a new header field "sub" storing the user's
// id. It aborts with 401 on token not provided or token is invalid (wrong
// token or expired).
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
				"msg":   "empty access token",
			})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
				"msg":   err.Error(),
			})
			c.Abort()
			return
		}

		// Successfully validated the token, stamp the caller's id so
		// handlers never parse the token themselves.
		c.Request.Header.Del("sub")
		c.Request.Header.Add("sub", claims.UserID)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
