package dashboard

import (
	"net/http"

	"inventory-app/database"
	"inventory-app/internal/domain/store"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const recentLimit = 10

type orderSummary struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
	Design string `json:"design"`
	Color  string `json:"color"`
}

type deliverySummary struct {
	ID             uint   `json:"id"`
	OrderID        uint   `json:"order_id"`
	TrackingNumber string `json:"tracking_number"`
}

func orderSummaries(orders []store.Order) []orderSummary {
	out := make([]orderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderSummary{
			ID:     o.ID,
			Status: string(o.Status),
			Design: o.Design,
			Color:  o.Color,
		})
	}
	return out
}

func deliverySummaries(deliveries []store.Delivery) []deliverySummary {
	out := make([]deliverySummary, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, deliverySummary{
			ID:             d.ID,
			OrderID:        d.OrderID,
			TrackingNumber: d.TrackingNumber,
		})
	}
	return out
}

// Dashboard returns the role-conditioned summary. Admins get entity counts
// plus the ten most recent orders and deliveries; suppliers and buyers get
// their own slice of the data; anyone without a role gets an empty view.
func Dashboard(c *gin.Context) {
	role := users.ParseRole(c.GetString("role"))
	userID := c.GetUint("user_id")

	switch role {
	case users.RoleAdmin:
		adminDashboard(c)
	case users.RoleBuyer, users.RoleSupplier:
		scopedDashboard(c, role, userID)
	default:
		c.JSON(http.StatusOK, gin.H{"role": "unknown"})
	}
}

func adminDashboard(c *gin.Context) {
	var totalProducts, totalSuppliers, totalBuyers, totalOrders int64
	database.DB.Model(&store.Product{}).Count(&totalProducts)
	database.DB.Model(&store.Supplier{}).Count(&totalSuppliers)
	database.DB.Model(&store.Buyer{}).Count(&totalBuyers)
	database.DB.Model(&store.Order{}).Count(&totalOrders)

	var orders []store.Order
	var deliveries []store.Delivery
	database.DB.Order("id DESC").Limit(recentLimit).Find(&orders)
	database.DB.Order("id DESC").Limit(recentLimit).Find(&deliveries)

	c.JSON(http.StatusOK, gin.H{
		"role":       "admin",
		"product":    totalProducts,
		"supplier":   totalSuppliers,
		"buyer":      totalBuyers,
		"order":      totalOrders,
		"orders":     orderSummaries(orders),
		"deliveries": deliverySummaries(deliveries),
	})
}

func scopedDashboard(c *gin.Context, role users.Role, userID uint) {
	var orders []store.Order
	if err := store.OrdersFor(database.DB, role, userID).
		Order("orders.id DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var deliveries []store.Delivery
	if err := store.DeliveriesFor(database.DB, role, userID).
		Order("deliveries.id DESC").
		Find(&deliveries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	out := gin.H{
		"role":       string(role),
		"orders":     orderSummaries(orders),
		"deliveries": deliverySummaries(deliveries),
	}

	if role == users.RoleSupplier {
		var products []store.Product
		if err := store.ProductsFor(database.DB, role, userID).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		out["products"] = products
	}

	c.JSON(http.StatusOK, out)
}
