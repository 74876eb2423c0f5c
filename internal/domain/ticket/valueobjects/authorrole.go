package valueobjects

import "fmt"

// AuthorRole is stored on every message at creation time so that display
// attribution never has to be inferred from sender/owner comparisons.
type AuthorRole string

const (
	AuthorCustomer AuthorRole = "customer"
	AuthorStaff    AuthorRole = "staff"
)

func (r AuthorRole) String() string {
	return string(r)
}

func (r AuthorRole) IsValid() bool {
	return r == AuthorCustomer || r == AuthorStaff
}

func NewAuthorRole(s string) (AuthorRole, error) {
	r := AuthorRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid author role: %s", s)
	}
	return r, nil
}
