package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "solarsavers/internal/delivery/context"
	"solarsavers/internal/delivery/http/response"
	"solarsavers/internal/delivery/shell"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// SessionHandler serves sign-in, registration and the current identity.
type SessionHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		session: params.Session,
		logger:  params.Logger,
	}
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the customer sign-up form.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// VendorRegisterRequest is the vendor application form.
type VendorRegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"business_name"`
	Description  string `json:"description"`
	Phone        string `json:"phone"`
	AcceptTerms  bool   `json:"accept_terms"`
}

// SessionView is the identity part of every page.
type SessionView struct {
	State string       `json:"state"`
	User  *entity.User `json:"user,omitempty"`
	Nav   []shell.Link `json:"nav,omitempty"`
}

func sessionView(s entity.Session) SessionView {
	view := SessionView{State: s.State.String(), User: s.User}
	if s.User != nil {
		view.Nav = shell.NavLinks(s.User.Role)
	}

	return view
}

// Login handles POST /login.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.session.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sessionView(h.session.Snapshot()), "Signed in")
}

// Register handles POST /register. The account is signed in on success.
func (h *SessionHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	_, err := h.session.Register(c.Request().Context(), entity.Registration{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sessionView(h.session.Snapshot()), "Account created")
}

// RegisterVendor handles POST /vendor/register. The applicant is not signed in.
func (h *SessionHandler) RegisterVendor(c echo.Context) error {
	var req VendorRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	err := h.session.RegisterVendor(c.Request().Context(), entity.VendorRegistration{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Phone:        req.Phone,
		AcceptTerms:  req.AcceptTerms,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Vendor registration submitted")
}

// Logout handles POST /logout.
func (h *SessionHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, sessionView(h.session.Snapshot()), "Signed out")
}

// Current handles GET /session.
func (h *SessionHandler) Current(c echo.Context) error {
	snapshot, ok := deliverycontext.GetSession(c)
	if !ok {
		snapshot = h.session.Snapshot()
	}

	return response.Success(c, http.StatusOK, sessionView(snapshot), "")
}
