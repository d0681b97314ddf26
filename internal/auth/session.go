package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSellerPending      = errors.New("seller account pending approval")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("role must be buyer or seller")
)

// Session is the identity module. The active login is the user record
// persisted under the currentUser key; there are no tokens and no expiry.
type Session struct {
	Store *store.Store
}

func NewSession(s *store.Store) *Session {
	return &Session{Store: s}
}

// Default administrator seeded on first run.
const (
	adminID       = "admin-001"
	adminEmail    = "admin@guestpost.com"
	adminPassword = "admin123"
)

// Bootstrap seeds the default administrator when no admin account exists.
// Safe to call on every start.
func (a *Session) Bootstrap(ctx context.Context) error {
	seeded := false
	err := store.Mutate(ctx, a.Store, store.KeyUsers, func(users []user.User) ([]user.User, error) {
		for _, u := range users {
			if u.Role == user.RoleAdmin {
				return users, nil
			}
		}
		seeded = true
		return append(users, user.User{
			ID:         adminID,
			FirstName:  "Admin",
			LastName:   "User",
			Email:      adminEmail,
			Phone:      "+1234567890",
			Country:    "United States",
			City:       "New York",
			Role:       user.RoleAdmin,
			IsApproved: true,
		}), nil
	})
	if err != nil || !seeded {
		return err
	}
	return a.setCredential(ctx, adminEmail, adminPassword)
}

// RegisterInput is the profile plus password collected at signup.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Country   string
	City      string
	Role      user.Role
	Password  string
}

// Register creates an account. Buyers are approved and logged in
// immediately; sellers start unapproved and stay logged out until an
// administrator approves them.
func (a *Session) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	if in.Role != user.RoleBuyer && in.Role != user.RoleSeller {
		return user.User{}, ErrInvalidRole
	}

	newUser := user.User{
		ID:         newID(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Country:    in.Country,
		City:       in.City,
		Role:       in.Role,
		IsApproved: in.Role == user.RoleBuyer,
	}

	err := store.Mutate(ctx, a.Store, store.KeyUsers, func(users []user.User) ([]user.User, error) {
		for _, u := range users {
			if u.Email == in.Email {
				return nil, ErrEmailTaken
			}
		}
		return append(users, newUser), nil
	})
	if err != nil {
		return user.User{}, err
	}

	if err := a.setCredential(ctx, in.Email, in.Password); err != nil {
		// Roll back the account so the email is not taken without a
		// credential to log in with.
		_ = store.Mutate(ctx, a.Store, store.KeyUsers, func(users []user.User) ([]user.User, error) {
			for i, u := range users {
				if u.ID == newUser.ID {
					return append(users[:i], users[i+1:]...), nil
				}
			}
			return users, nil
		})
		return user.User{}, err
	}

	if newUser.Role == user.RoleBuyer {
		if err := a.Store.Save(ctx, store.KeyCurrentUser, newUser); err != nil {
			return user.User{}, err
		}
	}
	return newUser, nil
}

// Login checks the credential for email and persists the matched user as
// the current session. Unapproved sellers are rejected even with a valid
// password.
func (a *Session) Login(ctx context.Context, email, password string) (user.User, error) {
	u, err := user.ByEmail(ctx, a.Store, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, err
	}

	creds, err := a.credentials(ctx)
	if err != nil {
		return user.User{}, err
	}
	hash, ok := creds[email]
	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return user.User{}, ErrInvalidCredentials
	}

	if u.Role == user.RoleSeller && !u.IsApproved {
		return user.User{}, ErrSellerPending
	}

	if err := a.Store.Save(ctx, store.KeyCurrentUser, u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Logout clears the current-user pointer only; collections are untouched.
func (a *Session) Logout(ctx context.Context) error {
	return a.Store.Delete(ctx, store.KeyCurrentUser)
}

// Current returns the persisted session user. store.ErrNotFound means
// nobody is logged in.
func (a *Session) Current(ctx context.Context) (user.User, error) {
	var u user.User
	if err := a.Store.Load(ctx, store.KeyCurrentUser, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (a *Session) credentials(ctx context.Context) (map[string]string, error) {
	creds := map[string]string{}
	if err := a.Store.Load(ctx, store.KeyPasswords, &creds); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return creds, nil
}

func (a *Session) setCredential(ctx context.Context, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	creds, err := a.credentials(ctx)
	if err != nil {
		return err
	}
	creds[email] = string(hashed)
	return a.Store.Save(ctx, store.KeyPasswords, creds)
}

// newID returns a time-ordered identifier for new records.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
