package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/usecase"
	"github.com/nguyentranbao-ct/ott-backoffice/pkg/actor"
)

type AuthController interface {
	Login(c echo.Context) error
	Logout(c echo.Context) error
	Session(c echo.Context) error
	RequestPasswordReset(c echo.Context) error
}

type authController struct {
	auth    *usecase.AuthUsecase
	clients *usecase.ClientUsecase
}

func NewAuthController(auth *usecase.AuthUsecase, clients *usecase.ClientUsecase) AuthController {
	return &authController{auth: auth, clients: clients}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Admin    bool   `json:"admin"`
	ClientID string `json:"client_id,omitempty"`
}

func (ac *authController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	token, a, err := ac.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Admin:    a.Admin,
		ClientID: a.ClientID,
	})
}

func (ac *authController) Logout(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing authorization header")
	}

	ac.auth.Logout(c.Request().Context(), token)
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// Session returns the identity behind the current token.
func (ac *authController) Session(c echo.Context) error {
	a, _ := actor.From(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{
		"admin":     a.Admin,
		"client_id": a.ClientID,
	})
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestPasswordReset is unauthenticated: the portal login page exposes it.
// The response never reveals whether the address exists.
func (ac *authController) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	err := ac.clients.RequestPasswordReset(c.Request().Context(), req.Email)
	if err != nil && err != models.ErrNotFound {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "reset request received",
	})
}
