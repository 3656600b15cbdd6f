package middleware

import (
	"net/http"

	deliverycontext "solarsavers/internal/delivery/context"
	"solarsavers/internal/delivery/http/response"
	"solarsavers/internal/delivery/shell"
	"solarsavers/internal/domain/entity"
	"solarsavers/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GateMiddleware applies the navigation shell's role decisions to routes.
type GateMiddleware struct {
	session usecase.SessionUsecase
	notices deliverycontext.NoticeSource
}

// NewGateMiddleware is the constructor for GateMiddleware.
func NewGateMiddleware(session usecase.SessionUsecase, notices deliverycontext.NoticeSource) *GateMiddleware {
	return &GateMiddleware{session: session, notices: notices}
}

// Attach stores the current session snapshot and the notice queue on every request.
func (m *GateMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetSession(c, m.session.Snapshot())
		deliverycontext.SetNoticeSource(c, m.notices)

		return next(c)
	}
}

// RoleGate lets the request through only when the shell decides to render.
// A nil role list admits any signed-in role.
func (m *GateMiddleware) RoleGate(allowed ...entity.Role) echo.MiddlewareFunc {
	var roles entity.Roles
	if len(allowed) > 0 {
		roles = entity.Roles(allowed)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snapshot, ok := deliverycontext.GetSession(c)
			if !ok {
				snapshot = m.session.Snapshot()
			}

			decision := shell.Decide(snapshot, roles)
			switch decision.Kind {
			case shell.Loading:
				return c.JSON(http.StatusAccepted, response.Loading{Loading: true})
			case shell.Redirect:
				return c.Redirect(http.StatusFound, decision.Location)
			default:
				return next(c)
			}
		}
	}
}
