package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fusionasiatica/storefront-api/internal/api/metrics"
	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

// ContactHandler handles the contact form and the admin view of the log.
type ContactHandler struct {
	service  ports.ContactService
	activity ports.ActivityRecorder
}

func NewContactHandler(service ports.ContactService, activity ports.ActivityRecorder) *ContactHandler {
	return &ContactHandler{service: service, activity: activity}
}

type createContactRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Category string `json:"category" validate:"required,oneof=consulta reserva reclamo felicitacion sugerencia trabajo"`
	Message  string `json:"message"  validate:"required"`
}

type contactResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}

// Create handles POST /v1/contact — the id and timestamp are stamped by the
// service.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Message details"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sub, err := h.service.Add(c.Request().Context(), ports.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Category: req.Category,
		Message:  req.Message,
	})
	if err != nil {
		return err
	}

	metrics.ContactSubmissionsTotal.WithLabelValues(sub.Category).Inc()
	return c.JSON(http.StatusCreated, toContactResponse(sub))
}

// List handles GET /v1/contact — the admin panel's view of the log.
//
// @Summary      List contact submissions
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   contactResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	subs := h.service.List(c.Request().Context())
	out := make([]contactResponse, len(subs))
	for i, s := range subs {
		out[i] = toContactResponse(s)
	}
	return c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /v1/contact/:id.
//
// @Summary      Delete a contact submission
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Submission id"
// @Success      204  "submission deleted"
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/contact/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid submission id")
	}

	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		return err
	}

	record(h.activity, newActivityEvent(c, "submission_removed", "contact", c.Param("id")))
	return c.NoContent(http.StatusNoContent)
}

func toContactResponse(s domain.ContactSubmission) contactResponse {
	return contactResponse{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		Category:    s.Category,
		Message:     s.Message,
		SubmittedAt: s.SubmittedAt,
	}
}
