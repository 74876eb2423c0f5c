package authorization

type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

func (r UserRole) String() string {
	return string(r)
}

// IsStaff reports whether the role belongs to back-office personnel.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin || r == RoleSuperAdmin
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}

// StaffRoles returns the role set used for back-office broadcast fan-out.
func StaffRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleSuperAdmin}
}
