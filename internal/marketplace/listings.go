package marketplace

import (
	"context"

	"github.com/google/uuid"

	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

// ListingInput is the seller-editable part of a service.
type ListingInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	WebsiteURL  string `json:"websiteUrl"`
	DA          int    `json:"da"`
	DR          int    `json:"dr"`
	Traffic     string `json:"traffic"`
}

func (in ListingInput) validate() error {
	if in.Title == "" || in.Price <= 0 {
		return ErrInvalidListing
	}
	return nil
}

// CreateListing adds an unapproved service carrying a snapshot of the
// seller's contact details.
func CreateListing(ctx context.Context, s *store.Store, seller user.User, in ListingInput) (Service, error) {
	if err := in.validate(); err != nil {
		return Service{}, err
	}
	svc := Service{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		WebsiteURL:  in.WebsiteURL,
		DA:          in.DA,
		DR:          in.DR,
		Traffic:     in.Traffic,
		SellerSnapshot: SellerSnapshot{
			SellerID:    seller.ID,
			SellerName:  seller.FullName(),
			SellerPhone: seller.Phone,
		},
		IsApproved: false,
	}
	err := store.Mutate(ctx, s, store.KeyServices, func(services []Service) ([]Service, error) {
		return append(services, svc), nil
	})
	if err != nil {
		return Service{}, err
	}
	return svc, nil
}

// UpdateListing rewrites the editable fields of the seller's own service.
// Any edit resets approval, so the listing goes back through admin review.
func UpdateListing(ctx context.Context, s *store.Store, sellerID, serviceID string, in ListingInput) (Service, error) {
	if err := in.validate(); err != nil {
		return Service{}, err
	}
	var updated Service
	err := store.Mutate(ctx, s, store.KeyServices, func(services []Service) ([]Service, error) {
		for i, svc := range services {
			if svc.ID != serviceID || svc.SellerID != sellerID {
				continue
			}
			svc.Title = in.Title
			svc.Description = in.Description
			svc.Price = in.Price
			svc.WebsiteURL = in.WebsiteURL
			svc.DA = in.DA
			svc.DR = in.DR
			svc.Traffic = in.Traffic
			svc.IsApproved = false
			services[i] = svc
			updated = svc
			return services, nil
		}
		return nil, ErrServiceNotFound
	})
	if err != nil {
		return Service{}, err
	}
	return updated, nil
}

// DeleteListing removes the seller's own service from the collection.
func DeleteListing(ctx context.Context, s *store.Store, sellerID, serviceID string) error {
	return store.Mutate(ctx, s, store.KeyServices, func(services []Service) ([]Service, error) {
		for i, svc := range services {
			if svc.ID == serviceID && svc.SellerID == sellerID {
				return append(services[:i], services[i+1:]...), nil
			}
		}
		return nil, ErrServiceNotFound
	})
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
