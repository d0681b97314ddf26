package user

// Role is the account role. Collections only ever hold one of the three
// constants below.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User is a platform account. JSON tags follow the persisted state layout,
// so records round-trip unchanged through the store.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Role      Role   `json:"role"`
	// IsApproved gates seller login. Buyers and admins are always
	// created approved.
	IsApproved bool `json:"isApproved"`
}

// FullName is the display name copied into seller snapshots.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
