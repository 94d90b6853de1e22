package orders

import (
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/store"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// OrderListPath is where status updates land regardless of outcome.
const OrderListPath = "/orders"

type OrderDTO struct {
	ID       uint   `json:"id"`
	Supplier string `json:"supplier"`
	Product  string `json:"product"`
	Buyer    string `json:"buyer"`
	Season   string `json:"season"`
	Drop     string `json:"drop"`
	Design   string `json:"design"`
	Color    string `json:"color"`
	Status   string `json:"status"`
}

func toDTO(o store.Order) OrderDTO {
	return OrderDTO{
		ID:       o.ID,
		Supplier: o.Supplier.Name,
		Product:  o.Product.Name,
		Buyer:    o.Buyer.Name,
		Season:   o.Season.Name,
		Drop:     o.Drop.Name,
		Design:   o.Design,
		Color:    o.Color,
		Status:   string(o.Status),
	}
}

func acting(c *gin.Context) (users.Role, uint) {
	return users.ParseRole(c.GetString("role")), c.GetUint("user_id")
}

// CreateOrder places an order for the calling buyer. Status is always
// pending at creation, whatever the client sends.
func CreateOrder(c *gin.Context) {
	var input struct {
		SupplierID uint   `json:"supplier_id" binding:"required"`
		ProductID  uint   `json:"product_id" binding:"required"`
		SeasonID   uint   `json:"season_id" binding:"required"`
		DropID     uint   `json:"drop_id" binding:"required"`
		BuyerID    uint   `json:"buyer_id"`
		Design     string `json:"design"`
		Color      string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, userID := acting(c)

	var buyer store.Buyer
	if err := database.DB.Where("user_id = ?", userID).First(&buyer).Error; err != nil {
		// admins have no buyer profile; they must name the buyer
		if role != users.RoleAdmin || input.BuyerID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Buyer profile not found"})
			return
		}
		if err := database.DB.First(&buyer, input.BuyerID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Buyer profile not found"})
			return
		}
	}

	order := store.Order{
		SupplierID: input.SupplierID,
		ProductID:  input.ProductID,
		BuyerID:    buyer.ID,
		SeasonID:   input.SeasonID,
		DropID:     input.DropID,
		Design:     input.Design,
		Color:      input.Color,
		Status:     store.StatusPending,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": order.ID, "status": string(order.Status)})
}

// ListOrders returns the caller's role-scoped order view, newest first.
// Suppliers also get the set of statuses they may assign, for rendering the
// status change control.
func ListOrders(c *gin.Context) {
	role, userID := acting(c)

	var orders []store.Order
	err := store.OrdersFor(database.DB, role, userID).
		Preload("Supplier").
		Preload("Product").
		Preload("Buyer").
		Preload("Season").
		Preload("Drop").
		Order("orders.id DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toDTO(o))
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":         out,
		"status_choices": store.StatusesFor(role),
	})
}

func UpdateOrder(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		SupplierID uint   `json:"supplier_id" binding:"required"`
		ProductID  uint   `json:"product_id" binding:"required"`
		SeasonID   uint   `json:"season_id" binding:"required"`
		DropID     uint   `json:"drop_id" binding:"required"`
		Design     string `json:"design"`
		Color      string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, userID := acting(c)

	var order store.Order
	if err := database.DB.Preload("Buyer").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if role != users.RoleAdmin && order.Buyer.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this page."})
		return
	}

	order.SupplierID = input.SupplierID
	order.ProductID = input.ProductID
	order.SeasonID = input.SeasonID
	order.DropID = input.DropID
	order.Design = input.Design
	order.Color = input.Color
	if err := database.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": order.ID})
}

func DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	role, userID := acting(c)

	var order store.Order
	if err := database.DB.Preload("Buyer").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if role != users.RoleAdmin && order.Buyer.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this page."})
		return
	}

	if err := database.DB.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// UpdateOrderStatus applies a status transition. Admins may act on any order
// with any label from the full set; suppliers only on their own orders, with
// labels from the supplier set. Everything else is a silent no-op: whatever
// happens, the caller is sent back to the order list.
func UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Redirect(http.StatusSeeOther, OrderListPath)
		return
	}

	role, userID := acting(c)

	var order store.Order
	if err := database.DB.Preload("Supplier").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	canUpdate := false
	switch role {
	case users.RoleAdmin:
		canUpdate = true
	case users.RoleSupplier:
		canUpdate = order.Supplier.UserID == userID
	}

	if canUpdate && store.ValidStatus(role, store.OrderStatus(input.Status)) {
		order.Status = store.OrderStatus(input.Status)
		if err := database.DB.Model(&store.Order{}).
			Where("id = ?", order.ID).
			Update("status", order.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}
	}

	c.Redirect(http.StatusSeeOther, OrderListPath)
}
