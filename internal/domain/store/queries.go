package store

import (
	"inventory-app/internal/domain/users"

	"gorm.io/gorm"
)

// Role-scoped visibility, used by every list endpoint and the dashboard so
// the ownership predicate exists in exactly one place. Ownership runs through
// the profile row: an order is a supplier's when order.supplier.user_id is
// the acting user, and a buyer's when order.buyer.user_id is.

func none(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// OrdersFor narrows orders to what role may see. Unknown roles see nothing.
func OrdersFor(db *gorm.DB, role users.Role, userID uint) *gorm.DB {
	q := db.Model(&Order{})
	switch role {
	case users.RoleAdmin:
		return q
	case users.RoleSupplier:
		return q.
			Joins("JOIN suppliers ON suppliers.id = orders.supplier_id").
			Where("suppliers.user_id = ?", userID)
	case users.RoleBuyer:
		return q.
			Joins("JOIN buyers ON buyers.id = orders.buyer_id").
			Where("buyers.user_id = ?", userID)
	default:
		return none(q)
	}
}

// DeliveriesFor narrows deliveries through their order's ownership links.
func DeliveriesFor(db *gorm.DB, role users.Role, userID uint) *gorm.DB {
	q := db.Model(&Delivery{})
	switch role {
	case users.RoleAdmin:
		return q
	case users.RoleSupplier:
		return q.
			Joins("JOIN orders ON orders.id = deliveries.order_id").
			Joins("JOIN suppliers ON suppliers.id = orders.supplier_id").
			Where("suppliers.user_id = ?", userID)
	case users.RoleBuyer:
		return q.
			Joins("JOIN orders ON orders.id = deliveries.order_id").
			Joins("JOIN buyers ON buyers.id = orders.buyer_id").
			Where("buyers.user_id = ?", userID)
	default:
		return none(q)
	}
}

// ProductsFor narrows products. Suppliers see the distinct products that
// appear on their own orders; buyers browse the full catalog to order from.
func ProductsFor(db *gorm.DB, role users.Role, userID uint) *gorm.DB {
	q := db.Model(&Product{})
	switch role {
	case users.RoleAdmin, users.RoleBuyer:
		return q
	case users.RoleSupplier:
		return q.
			Distinct("products.*").
			Joins("JOIN orders ON orders.product_id = products.id").
			Joins("JOIN suppliers ON suppliers.id = orders.supplier_id").
			Where("suppliers.user_id = ?", userID)
	default:
		return none(q)
	}
}
