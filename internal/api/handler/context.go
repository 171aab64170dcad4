package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

// headerCartID selects the visitor cart; requests without it share the
// default cart, matching the single-visitor trust model of the storefront.
const headerCartID = "X-Cart-ID"

// ctxSession extracts the session claims injected by the Auth middleware.
// A missing role proves the guard did not run for this route; fail fast with
// 401 rather than act on a half-populated identity.
func ctxSession(c echo.Context) (domain.Session, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	name, _ := c.Get("name").(string)
	email, _ := c.Get("email").(string)
	return domain.Session{Name: name, Email: email, Role: role}, nil
}

// actorEmail returns the acting identity for audit events, or "anonymous"
// on unguarded routes.
func actorEmail(c echo.Context) string {
	if email, _ := c.Get("email").(string); email != "" {
		return email
	}
	return "anonymous"
}

func cartID(c echo.Context) string {
	if id := c.Request().Header.Get(headerCartID); id != "" {
		return id
	}
	return "default"
}

func newActivityEvent(c echo.Context, action, entity, entityID string) domain.ActivityEvent {
	return domain.ActivityEvent{
		Actor:     actorEmail(c),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

// record forwards an audit event when a recorder is wired. Auditing is
// advisory: handlers never fail a request over it.
func record(recorder ports.ActivityRecorder, event domain.ActivityEvent) {
	if recorder != nil {
		recorder.Record(event)
	}
}
