package deliveries

import (
	"net/http"
	"time"

	"inventory-app/database"
	"inventory-app/internal/domain/store"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type DeliveryDTO struct {
	ID             uint       `json:"id"`
	OrderID        uint       `json:"order_id"`
	CourierName    string     `json:"courier_name"`
	TrackingNumber string     `json:"tracking_number"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	OrderStatus    string     `json:"order_status"`
}

func toDTO(d store.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:             d.ID,
		OrderID:        d.OrderID,
		CourierName:    d.CourierName,
		TrackingNumber: d.TrackingNumber,
		DeliveredAt:    d.DeliveredAt,
		OrderStatus:    string(d.Order.Status),
	}
}

type deliveryInput struct {
	OrderID        uint       `json:"order_id" binding:"required"`
	CourierName    string     `json:"courier_name"`
	TrackingNumber string     `json:"tracking_number"`
	DeliveredAt    *time.Time `json:"delivered_at"`
}

func CreateDelivery(c *gin.Context) {
	var input deliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order store.Order
	if err := database.DB.First(&order, input.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	delivery := store.Delivery{
		OrderID:        order.ID,
		CourierName:    input.CourierName,
		TrackingNumber: input.TrackingNumber,
		DeliveredAt:    input.DeliveredAt,
	}
	if err := database.DB.Create(&delivery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": delivery.ID})
}

// ListDeliveries returns the caller's role-scoped deliveries, newest first.
// Visibility follows the owning order: its buyer and its supplier see it.
func ListDeliveries(c *gin.Context) {
	role := users.ParseRole(c.GetString("role"))
	userID := c.GetUint("user_id")

	var deliveries []store.Delivery
	err := store.DeliveriesFor(database.DB, role, userID).
		Preload("Order").
		Order("deliveries.id DESC").
		Find(&deliveries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load deliveries"})
		return
	}

	out := make([]DeliveryDTO, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, toDTO(d))
	}
	c.JSON(http.StatusOK, out)
}

func UpdateDelivery(c *gin.Context) {
	id := c.Param("id")

	var input deliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var delivery store.Delivery
	if err := database.DB.First(&delivery, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}

	delivery.OrderID = input.OrderID
	delivery.CourierName = input.CourierName
	delivery.TrackingNumber = input.TrackingNumber
	delivery.DeliveredAt = input.DeliveredAt
	if err := database.DB.Save(&delivery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": delivery.ID})
}

func DeleteDelivery(c *gin.Context) {
	id := c.Param("id")

	var delivery store.Delivery
	if err := database.DB.First(&delivery, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}

	if err := database.DB.Delete(&delivery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery deleted"})
}
