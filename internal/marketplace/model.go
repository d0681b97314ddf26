package marketplace

import "time"

// SellerSnapshot is the seller contact info denormalized into a listing at
// creation time. It is intentionally not kept in sync with later profile
// edits.
type SellerSnapshot struct {
	SellerID    string `json:"sellerId"`
	SellerName  string `json:"sellerName"`
	SellerPhone string `json:"sellerPhone"`
}

// Service is a guest-post listing. DA and DR are third-party website
// authority scores carried as opaque numbers; Traffic is free text.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	WebsiteURL  string `json:"websiteUrl"`
	DA          int    `json:"da"`
	DR          int    `json:"dr"`
	Traffic     string `json:"traffic"`
	SellerSnapshot
	// IsApproved gates public visibility. False on creation and reset to
	// false on every edit.
	IsApproved bool `json:"isApproved"`
}

// Status is the order workflow state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is legal:
// pending -> accepted -> completed, or pending -> cancelled. Completed and
// cancelled are terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusCancelled
	case StatusAccepted:
		return next == StatusCompleted
	default:
		return false
	}
}

// ServiceSnapshot freezes the listing terms at order time so later edits
// to the service do not rewrite historical orders.
type ServiceSnapshot struct {
	Title       string `json:"title"`
	Price       int    `json:"price"`
	SellerName  string `json:"sellerName"`
	SellerPhone string `json:"sellerPhone"`
}

// Order is a buyer's purchase of a service.
type Order struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"serviceId"`
	BuyerID   string          `json:"buyerId"`
	SellerID  string          `json:"sellerId"`
	Status    Status          `json:"status"`
	Message   string          `json:"message"`
	CreatedAt time.Time       `json:"createdAt"`
	Service   ServiceSnapshot `json:"service"`
}
