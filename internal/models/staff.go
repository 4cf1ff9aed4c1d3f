package models

// Role represents the authority level of a staff member. The wire values
// are the display strings carried over from the persisted documents.
type Role string

const (
	RoleAdmin Role = "Administrator"
	RoleStaff Role = "Staff"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// AdminUsername is the reserved username whose staff record is protected
// from deletion by policy.
const AdminUsername = "admin"

// Staff represents an employee who can log in and record transactions.
type Staff struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the staff member holds administrator authority.
func (s Staff) IsAdmin() bool {
	return s.Role == RoleAdmin
}
