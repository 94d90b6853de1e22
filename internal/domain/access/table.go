package access

import "inventory-app/internal/domain/users"

type Capability string

const (
	CanViewProducts     Capability = "can_view_products"
	CanCreateProducts   Capability = "can_create_products"
	CanEditProducts     Capability = "can_edit_products"
	CanCreateOrders     Capability = "can_create_orders"
	CanManageOrders     Capability = "can_manage_orders"
	CanManageDeliveries Capability = "can_manage_deliveries"
	CanEditProfile      Capability = "can_edit_profile"
	CanViewSuppliers    Capability = "can_view_suppliers"
	CanViewBuyers       Capability = "can_view_buyers"
)

// Table maps role -> capability -> granted. It is built once at process start
// and never mutated afterwards; admins are granted everything without a
// lookup, so they have no row here.
type Table struct {
	grants map[users.Role]map[Capability]bool
}

func NewTable() *Table {
	return &Table{
		grants: map[users.Role]map[Capability]bool{
			users.RoleBuyer: {
				CanViewProducts:     true,
				CanCreateOrders:     true,
				CanEditProfile:      true,
				CanViewSuppliers:    false,
				CanManageDeliveries: false,
			},
			users.RoleSupplier: {
				CanViewProducts:   true,
				CanCreateProducts: true,
				CanEditProducts:   true,
				CanViewBuyers:     false,
				CanManageOrders:   true,
			},
		},
	}
}

// Allows reports whether role holds cap. Admin is granted unconditionally;
// unknown roles and unknown capabilities resolve to false.
func (t *Table) Allows(role users.Role, cap Capability) bool {
	if role == users.RoleAdmin {
		return true
	}
	return t.grants[role][cap]
}

// CapabilitiesFor lists the capabilities granted to role, for surfacing to
// clients (e.g. the /me endpoint). Admin gets every known capability.
func (t *Table) CapabilitiesFor(role users.Role) []Capability {
	if role == users.RoleAdmin {
		all := make(map[Capability]bool)
		for _, caps := range t.grants {
			for c := range caps {
				all[c] = true
			}
		}
		out := make([]Capability, 0, len(all))
		for c := range all {
			out = append(out, c)
		}
		return out
	}

	caps := t.grants[role]
	out := make([]Capability, 0, len(caps))
	for c, granted := range caps {
		if granted {
			out = append(out, c)
		}
	}
	return out
}
