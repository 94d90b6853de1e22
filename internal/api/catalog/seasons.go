package catalog

import (
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/store"

	"github.com/gin-gonic/gin"
)

type seasonInput struct {
	Name string `json:"name" binding:"required"`
}

func CreateSeason(c *gin.Context) {
	var input seasonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	season := store.Season{Name: input.Name}
	if err := database.DB.Create(&season).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create season"})
		return
	}
	c.JSON(http.StatusCreated, season)
}

func ListSeasons(c *gin.Context) {
	var seasons []store.Season
	if err := database.DB.Order("id DESC").Find(&seasons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load seasons"})
		return
	}
	c.JSON(http.StatusOK, seasons)
}

func UpdateSeason(c *gin.Context) {
	id := c.Param("id")

	var input seasonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var season store.Season
	if err := database.DB.First(&season, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
		return
	}

	season.Name = input.Name
	if err := database.DB.Save(&season).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update season"})
		return
	}
	c.JSON(http.StatusOK, season)
}

func DeleteSeason(c *gin.Context) {
	id := c.Param("id")

	var season store.Season
	if err := database.DB.First(&season, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
		return
	}

	if err := database.DB.Delete(&season).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete season"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Season deleted"})
}
