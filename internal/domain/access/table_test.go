package access

import (
	"testing"

	"inventory-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func TestAdminAllowsEverything(t *testing.T) {
	table := NewTable()

	caps := []Capability{
		CanViewProducts,
		CanCreateProducts,
		CanManageOrders,
		CanManageDeliveries,
		Capability("some_capability_nobody_declared"),
	}
	for _, c := range caps {
		assert.True(t, table.Allows(users.RoleAdmin, c), string(c))
	}
}

func TestBuyerGrants(t *testing.T) {
	table := NewTable()

	assert.True(t, table.Allows(users.RoleBuyer, CanViewProducts))
	assert.True(t, table.Allows(users.RoleBuyer, CanCreateOrders))
	assert.True(t, table.Allows(users.RoleBuyer, CanEditProfile))
	assert.False(t, table.Allows(users.RoleBuyer, CanViewSuppliers))
	assert.False(t, table.Allows(users.RoleBuyer, CanManageDeliveries))
	// capability only declared for suppliers
	assert.False(t, table.Allows(users.RoleBuyer, CanManageOrders))
}

func TestSupplierGrants(t *testing.T) {
	table := NewTable()

	assert.True(t, table.Allows(users.RoleSupplier, CanViewProducts))
	assert.True(t, table.Allows(users.RoleSupplier, CanCreateProducts))
	assert.True(t, table.Allows(users.RoleSupplier, CanManageOrders))
	assert.False(t, table.Allows(users.RoleSupplier, CanViewBuyers))
	assert.False(t, table.Allows(users.RoleSupplier, CanCreateOrders))
}

func TestUnknownRoleAndCapability(t *testing.T) {
	table := NewTable()

	assert.False(t, table.Allows(users.RoleNone, CanViewProducts))
	assert.False(t, table.Allows(users.Role("auditor"), CanViewProducts))
	assert.False(t, table.Allows(users.RoleSupplier, Capability("can_fly")))
}

func TestCapabilitiesFor(t *testing.T) {
	table := NewTable()

	buyer := table.CapabilitiesFor(users.RoleBuyer)
	assert.ElementsMatch(t, []Capability{CanViewProducts, CanCreateOrders, CanEditProfile}, buyer)

	supplier := table.CapabilitiesFor(users.RoleSupplier)
	assert.ElementsMatch(t, []Capability{CanViewProducts, CanCreateProducts, CanEditProducts, CanManageOrders}, supplier)

	assert.Empty(t, table.CapabilitiesFor(users.RoleNone))

	// admin sees the union of every declared capability
	admin := table.CapabilitiesFor(users.RoleAdmin)
	for _, c := range append(buyer, supplier...) {
		assert.Contains(t, admin, c)
	}
}
