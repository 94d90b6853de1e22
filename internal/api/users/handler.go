package users

import (
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/access"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type MeResponse struct {
	ID           uint                `json:"id"`
	Username     string              `json:"username"`
	Email        string              `json:"email,omitempty"`
	Role         string              `json:"role"`
	Capabilities []access.Capability `json:"capabilities"`
}

// Me returns the caller's identity, derived role and capability list.
// Clients use the capability list to decide which controls to render.
func Me(table *access.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		if username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user users.User
		if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		role := users.RoleOf(user)
		caps := table.CapabilitiesFor(role)
		if caps == nil {
			caps = []access.Capability{}
		}

		c.JSON(http.StatusOK, MeResponse{
			ID:           user.ID,
			Username:     user.Username,
			Email:        user.Email,
			Role:         string(role),
			Capabilities: caps,
		})
	}
}
