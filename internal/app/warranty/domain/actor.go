package domain

// Role classifies the acting user for authorization checks. The core does
// not authenticate anyone; callers supply the identity with every mutating
// call and it is used for attribution and ownership checks only.
type Role string

const (
	RoleProvider    Role = "provider"
	RoleDealer      Role = "dealer"
	RoleDealerAdmin Role = "dealer_admin"
)

// Actor is the acting user's identity, threaded explicitly into every
// mutating operation.
type Actor struct {
	ID    string
	Email string
	Role  Role
}

func (a Actor) IsZero() bool {
	return a.ID == ""
}
