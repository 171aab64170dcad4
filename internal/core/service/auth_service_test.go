package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

func newTestAuth(t *testing.T, store *memorySlotStore) *AuthService {
	t.Helper()
	svc := NewAuthService(store, "secret", time.Hour, zerolog.Nop())
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return svc
}

func TestAuthService_Initialize_SeedsDefaultAccounts(t *testing.T) {
	store := newMemorySlotStore()
	_ = newTestAuth(t, store)

	raw, ok := store.data[ports.SlotCredentials]
	if !ok {
		t.Fatalf("credential map was not persisted")
	}

	var creds map[string]domain.Credential
	if err := json.Unmarshal(raw, &creds); err != nil {
		t.Fatalf("persisted credentials unparseable: %v", err)
	}
	if len(creds) != 2 {
		t.Fatalf("expected 2 seeded accounts, got %d", len(creds))
	}

	admin, ok := creds[domain.SeedAdminEmail]
	if !ok {
		t.Fatalf("admin account missing")
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("unexpected admin role: %s", admin.Role)
	}
	if admin.PasswordHash == domain.SeedAdminPassword {
		t.Fatalf("seed password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(domain.SeedAdminPassword)); err != nil {
		t.Fatalf("stored hash does not match seed password: %v", err)
	}
}

func TestAuthService_Login_SeededAdmin(t *testing.T) {
	store := newMemorySlotStore()
	svc := newTestAuth(t, store)

	token, session, err := svc.Login(context.Background(), domain.SeedAdminEmail, domain.SeedAdminPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if session == nil || session.Role != domain.RoleAdmin || session.Name != domain.SeedAdminName {
		t.Fatalf("unexpected session: %+v", session)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin || claims["email"] != domain.SeedAdminEmail {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_PersistsSessionSlot(t *testing.T) {
	store := newMemorySlotStore()
	svc := newTestAuth(t, store)

	if _, _, err := svc.Login(context.Background(), domain.SeedUserEmail, domain.SeedUserPassword); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	var session domain.Session
	found, err := store.Load(context.Background(), ports.SlotSession, &session)
	if err != nil || !found {
		t.Fatalf("session slot not persisted (found=%v err=%v)", found, err)
	}
	if session.Email != domain.SeedUserEmail || session.Role != domain.RoleUser {
		t.Fatalf("unexpected persisted session: %+v", session)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store := newMemorySlotStore()
	svc := newTestAuth(t, store)

	if _, _, err := svc.Login(context.Background(), domain.SeedUserEmail, "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, ok := store.data[ports.SlotSession]; ok {
		t.Fatalf("failed login must not install a session")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	store := newMemorySlotStore()
	svc := newTestAuth(t, store)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Register_AutoLogin(t *testing.T) {
	store := newMemorySlotStore()
	svc := newTestAuth(t, store)

	token, session, err := svc.Register(context.Background(), "Alice", "a@x.com", "p")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token after registration")
	}
	if session == nil || session.Role != domain.RoleUser || session.Name != "Alice" {
		t.Fatalf("unexpected session: %+v", session)
	}

	// Registration must log the new account in immediately.
	var persisted domain.Session
	if found, _ := store.Load(context.Background(), ports.SlotSession, &persisted); !found || persisted.Email != "a@x.com" {
		t.Fatalf("expected persisted session for a@x.com, got %+v", persisted)
	}
}

func TestAuthService_Register_DuplicateLeavesOriginalUntouched(t *testing.T) {
	store := newMemorySlotStore()
	svc := newTestAuth(t, store)

	if _, _, err := svc.Register(context.Background(), "A", "a@x.com", "p"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "B", "a@x.com", "q"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Original credential still wins.
	_, session, err := svc.Login(context.Background(), "a@x.com", "p")
	if err != nil {
		t.Fatalf("login with original password failed: %v", err)
	}
	if session.Name != "A" {
		t.Fatalf("expected original name A, got %s", session.Name)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", "q"); err != domain.ErrInvalidCredentials {
		t.Fatalf("second password must not work, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	store := newMemorySlotStore()
	svc := newTestAuth(t, store)

	if _, _, err := svc.Register(context.Background(), "", "a@x.com", "p"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "A", "a@x.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_ClearsSessionSlot(t *testing.T) {
	store := newMemorySlotStore()
	svc := newTestAuth(t, store)

	if _, _, err := svc.Login(context.Background(), domain.SeedUserEmail, domain.SeedUserPassword); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, ok := store.data[ports.SlotSession]; ok {
		t.Fatalf("session slot not removed on logout")
	}
}

func TestAuthService_Initialize_LoadsPersistedCredentials(t *testing.T) {
	store := newMemorySlotStore()
	first := newTestAuth(t, store)
	if _, _, err := first.Register(context.Background(), "Alice", "a@x.com", "p"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// A fresh service over the same store sees the registered account.
	second := newTestAuth(t, store)
	if _, _, err := second.Login(context.Background(), "a@x.com", "p"); err != nil {
		t.Fatalf("login after reload failed: %v", err)
	}
}
