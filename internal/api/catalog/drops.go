package catalog

import (
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/store"

	"github.com/gin-gonic/gin"
)

type dropInput struct {
	Name string `json:"name" binding:"required"`
}

func CreateDrop(c *gin.Context) {
	var input dropInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drop := store.Drop{Name: input.Name}
	if err := database.DB.Create(&drop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create drop"})
		return
	}
	c.JSON(http.StatusCreated, drop)
}

func ListDrops(c *gin.Context) {
	var drops []store.Drop
	if err := database.DB.Order("id DESC").Find(&drops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drops"})
		return
	}
	c.JSON(http.StatusOK, drops)
}

func UpdateDrop(c *gin.Context) {
	id := c.Param("id")

	var input dropInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var drop store.Drop
	if err := database.DB.First(&drop, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drop not found"})
		return
	}

	drop.Name = input.Name
	if err := database.DB.Save(&drop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update drop"})
		return
	}
	c.JSON(http.StatusOK, drop)
}

func DeleteDrop(c *gin.Context) {
	id := c.Param("id")

	var drop store.Drop
	if err := database.DB.First(&drop, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drop not found"})
		return
	}

	if err := database.DB.Delete(&drop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete drop"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drop deleted"})
}
