package middleware

import (
	"net/http"
	"strings"

	"github.com/verumrexo/tip-harmony/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ClaimsKey = "claims"

// SessionClaims are the claims embedded in every session token minted by
// the PIN gate. There is a single shared role.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SessionAuth validates the Bearer token on every protected route.
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired session"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
