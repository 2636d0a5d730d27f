package user

type Role string

const (
	RoleViewer Role = "viewer"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleStaff:  2,
	RoleAdmin:  3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank nowhere.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	need, ok := roleRank[min]
	return ok && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
