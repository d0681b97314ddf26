package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guestpost-hub/guestposthub/internal/user"
)

type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Country         string `json:"country"`
	City            string `json:"city"`
	Role            string `json:"role" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ===== Register =====
func (h *Handler) Register(c echo.Context) error {
	req := new(RegisterRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email are required"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 6 characters"})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passwords do not match"})
	}

	u, err := h.Session.Register(c.Request().Context(), RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Country:   req.Country,
		City:      req.City,
		Role:      user.Role(req.Role),
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		case errors.Is(err, ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be buyer or seller"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
		}
	}

	if u.Role == user.RoleSeller {
		return c.JSON(http.StatusCreated, echo.Map{
			"user":    u,
			"message": "Account created. Your seller account is pending admin approval.",
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"user": u})
}
