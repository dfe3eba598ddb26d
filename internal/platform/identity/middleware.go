package identity

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Middleware parses an optional Bearer token and stamps the resulting actor
// on the request context. Requests without a valid token proceed as the
// default actor; this API trusts its gateway for authentication.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := NewActor(actorName(c.GetHeader("Authorization"), secret))
		c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

func actorName(header, secret string) string {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || secret == "" {
		return ""
	}
	token, err := jwt.Parse(strings.TrimSpace(raw), func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if name, ok := claims["name"].(string); ok && strings.TrimSpace(name) != "" {
		return name
	}
	if email, ok := claims["email"].(string); ok {
		if local, _, found := strings.Cut(email, "@"); found && local != "" {
			return local
		}
	}
	return ""
}
