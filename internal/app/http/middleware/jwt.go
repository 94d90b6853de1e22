package middleware

import (
	"fmt"
	"net/http"

	"inventory-app/config"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// LoginPath is where unauthenticated requests get sent. Kept as a redirect
// rather than a 401 so the unauthenticated case stays distinguishable from
// the forbidden one.
const LoginPath = "/login"

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, LoginPath)
	c.Abort()
}

// AuthMiddleware authenticates the request from its Bearer token and stores
// user_id, username and role in the context. Missing, malformed or expired
// tokens all take the login redirect, never a forbidden response.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.JWT_SECRET)
		if len(jwtKey) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			redirectToLogin(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			redirectToLogin(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			redirectToLogin(c)
			return
		}

		if username, ok := claims["username"].(string); ok {
			c.Set("username", username)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}
		if userIDFloat, ok := claims["user_id"].(float64); ok {
			c.Set("user_id", uint(userIDFloat))
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		return "", false
	}
	return authHeader[len(prefix):], true
}

// RequireRoles admits the request only when the caller's role is in the
// admitted set. Admins bypass the set entirely, so the check order is:
// unauthenticated -> login redirect, admin -> admit, member -> admit,
// anything else -> 403. That order matters: an admin whose account also
// carries a supplier or buyer flag must be admitted by the bypass, not by
// membership.
func RequireRoles(roles ...users.Role) gin.HandlerFunc {
	admitted := make(map[users.Role]bool, len(roles))
	for _, r := range roles {
		admitted[r] = true
	}

	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			redirectToLogin(c)
			return
		}

		role := users.ParseRole(value.(string))
		if role == users.RoleAdmin {
			c.Next()
			return
		}
		if admitted[role] {
			c.Next()
			return
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this page."})
		c.Abort()
	}
}
