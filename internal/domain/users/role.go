package users

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSupplier Role = "supplier"
	RoleBuyer    Role = "buyer"
	RoleNone     Role = ""
)

// RoleOf derives a user's effective role from its boolean flags.
// Priority: admin > supplier > buyer > none. The same derivation drives the
// access gate, dashboard branching and list filtering, so it lives here as a
// single function rather than being re-checked flag by flag at each call site.
func RoleOf(u User) Role {
	switch {
	case u.IsAdmin:
		return RoleAdmin
	case u.IsSupplier:
		return RoleSupplier
	case u.IsBuyer:
		return RoleBuyer
	default:
		return RoleNone
	}
}

// ParseRole maps a claim string back to a Role. Unknown values come back as
// RoleNone so a stale or tampered claim never widens access.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleSupplier, RoleBuyer:
		return Role(s)
	default:
		return RoleNone
	}
}
