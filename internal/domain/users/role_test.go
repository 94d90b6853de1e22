package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOfPriority(t *testing.T) {
	tests := []struct {
		name string
		user User
		want Role
	}{
		{"no flags", User{}, RoleNone},
		{"buyer", User{IsBuyer: true}, RoleBuyer},
		{"supplier", User{IsSupplier: true}, RoleSupplier},
		{"admin", User{IsAdmin: true}, RoleAdmin},
		{"supplier beats buyer", User{IsBuyer: true, IsSupplier: true}, RoleSupplier},
		{"admin beats supplier", User{IsSupplier: true, IsAdmin: true}, RoleAdmin},
		{"admin beats everything", User{IsBuyer: true, IsSupplier: true, IsAdmin: true}, RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleOf(tt.user))
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleSupplier, ParseRole("supplier"))
	assert.Equal(t, RoleBuyer, ParseRole("buyer"))
	assert.Equal(t, RoleNone, ParseRole(""))
	assert.Equal(t, RoleNone, ParseRole("superuser"))
}
