package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

type stubContactService struct {
	subs      []domain.ContactSubmission
	added     *ports.ContactInput
	removedID int64
}

func (s *stubContactService) Initialize(ctx context.Context) error { return nil }

func (s *stubContactService) List(ctx context.Context) []domain.ContactSubmission { return s.subs }

func (s *stubContactService) Add(ctx context.Context, input ports.ContactInput) (domain.ContactSubmission, error) {
	s.added = &input
	return domain.ContactSubmission{
		ID:          1717171717000,
		Name:        input.Name,
		Email:       input.Email,
		Category:    input.Category,
		Message:     input.Message,
		SubmittedAt: "14-03-2026, 09:26:53",
	}, nil
}

func (s *stubContactService) Remove(ctx context.Context, id int64) error {
	s.removedID = id
	return nil
}

func TestContactHandler_Create(t *testing.T) {
	stub := &stubContactService{}
	h := NewContactHandler(stub, nil)

	c, rec := newAuthContext(http.MethodPost, "/v1/contact",
		`{"name":"Ana","email":"ana@x.com","category":"reserva","message":"mesa para dos"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.added == nil || stub.added.Category != domain.CategoryReservation {
		t.Fatalf("submission not forwarded to the service")
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"id":1717171717000`) || !strings.Contains(body, `"submitted_at":"14-03-2026, 09:26:53"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestContactHandler_Create_UnknownCategory(t *testing.T) {
	h := NewContactHandler(&stubContactService{}, nil)

	c, _ := newAuthContext(http.MethodPost, "/v1/contact",
		`{"name":"Ana","email":"ana@x.com","category":"spam","message":"hola"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestContactHandler_Create_InvalidEmail(t *testing.T) {
	h := NewContactHandler(&stubContactService{}, nil)

	c, _ := newAuthContext(http.MethodPost, "/v1/contact",
		`{"name":"Ana","email":"not-an-email","category":"consulta","message":"hola"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestContactHandler_List(t *testing.T) {
	stub := &stubContactService{subs: []domain.ContactSubmission{
		{ID: 1, Name: "A", Email: "a@x.com", Category: domain.CategoryInquiry, Message: "1", SubmittedAt: "01-01-2026, 10:00:00"},
		{ID: 2, Name: "B", Email: "b@x.com", Category: domain.CategoryJob, Message: "2", SubmittedAt: "02-01-2026, 10:00:00"},
	}}
	h := NewContactHandler(stub, nil)

	c, rec := newAuthContext(http.MethodGet, "/v1/contact", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"category":"trabajo"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestContactHandler_Delete(t *testing.T) {
	stub := &stubContactService{}
	h := NewContactHandler(stub, nil)

	c, rec := newAuthContext(http.MethodDelete, "/v1/contact/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stub.removedID != 42 {
		t.Fatalf("expected remove of id 42, got %d", stub.removedID)
	}
}

func TestContactHandler_Delete_BadID(t *testing.T) {
	h := NewContactHandler(&stubContactService{}, nil)

	c, _ := newAuthContext(http.MethodDelete, "/v1/contact/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
