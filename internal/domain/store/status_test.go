package store

import (
	"testing"

	"inventory-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func TestStatusesFor(t *testing.T) {
	assert.Equal(t, AllStatuses, StatusesFor(users.RoleAdmin))
	assert.Equal(t, []OrderStatus{StatusPending, StatusDone, StatusCancelled}, StatusesFor(users.RoleSupplier))
	assert.Empty(t, StatusesFor(users.RoleBuyer))
	assert.Empty(t, StatusesFor(users.RoleNone))
}

func TestValidStatus(t *testing.T) {
	// admin may assign every label, including ones outside the supplier set
	for _, s := range AllStatuses {
		assert.True(t, ValidStatus(users.RoleAdmin, s), string(s))
	}

	assert.True(t, ValidStatus(users.RoleSupplier, StatusPending))
	assert.True(t, ValidStatus(users.RoleSupplier, StatusDone))
	assert.True(t, ValidStatus(users.RoleSupplier, StatusCancelled))
	assert.False(t, ValidStatus(users.RoleSupplier, StatusProcessing))
	assert.False(t, ValidStatus(users.RoleSupplier, StatusArchived))

	assert.False(t, ValidStatus(users.RoleBuyer, StatusPending))
	assert.False(t, ValidStatus(users.RoleNone, StatusDone))
	assert.False(t, ValidStatus(users.RoleSupplier, OrderStatus("shipped")))
}
