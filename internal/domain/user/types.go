package user

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// rank orders roles; a higher rank includes every permission of the lower ones.
var rank = map[Role]int{
	RoleMember: 1,
	RoleAdmin:  2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := rank[r]
	return ok
}

// AtLeast reports whether r grants everything required does. Unknown roles never qualify.
func (r Role) AtLeast(required Role) bool {
	have, ok := rank[r]
	if !ok {
		return false
	}
	need, ok := rank[required]
	return ok && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
