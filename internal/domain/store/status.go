package store

import "inventory-app/internal/domain/users"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusDone       OrderStatus = "done"
	StatusCancelled  OrderStatus = "cancelled"
	StatusArchived   OrderStatus = "archived"
)

// AllStatuses is the full set an administrator may assign. Suppliers get the
// smaller supplierStatuses set. There are no terminal states: an order may be
// moved back to pending from done or cancelled.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusDone,
	StatusCancelled,
	StatusArchived,
}

var supplierStatuses = []OrderStatus{
	StatusPending,
	StatusDone,
	StatusCancelled,
}

// StatusesFor returns the statuses a role is allowed to assign.
// Roles with no say over order status get an empty set.
func StatusesFor(role users.Role) []OrderStatus {
	switch role {
	case users.RoleAdmin:
		return AllStatuses
	case users.RoleSupplier:
		return supplierStatuses
	default:
		return nil
	}
}

// ValidStatus reports whether role may set an order to status.
func ValidStatus(role users.Role, status OrderStatus) bool {
	for _, s := range StatusesFor(role) {
		if s == status {
			return true
		}
	}
	return false
}
