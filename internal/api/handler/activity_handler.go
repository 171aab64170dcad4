package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityHandler exposes the audit trail to the admin panel.
type ActivityHandler struct {
	repo ports.ActivityRepository
}

func NewActivityHandler(repo ports.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

type activityEventResponse struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

// List handles GET /v1/admin/activity — most recent events first.
//
// @Summary      List recent audit events
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum events to return (default 50, cap 200)"
// @Success      200    {array}   activityEventResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/admin/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	limit := int64(defaultActivityLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		if n > maxActivityLimit {
			n = maxActivityLimit
		}
		limit = n
	}

	events, err := h.repo.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	out := make([]activityEventResponse, len(events))
	for i, e := range events {
		out[i] = activityEventResponse{
			Actor:     e.Actor,
			Action:    e.Action,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Timestamp: e.Timestamp,
		}
	}
	return c.JSON(http.StatusOK, out)
}
