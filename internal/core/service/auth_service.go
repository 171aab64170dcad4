package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

// AuthService implements login, registration and logout over a credential map
// keyed by email. Credentials and the current session persist to their own
// slots on every change.
type AuthService struct {
	store     ports.SlotStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger

	mu      sync.Mutex
	creds   map[string]domain.Credential
	session *domain.Session
}

func NewAuthService(store ports.SlotStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Initialize loads the credential map and any persisted session. When no
// usable credential map is stored, the two default accounts are seeded with
// bcrypt hashes and persisted immediately.
func (s *AuthService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var creds map[string]domain.Credential
	found, err := s.store.Load(ctx, ports.SlotCredentials, &creds)
	if err != nil {
		return err
	}
	if found && len(creds) > 0 {
		s.creds = creds
	} else {
		seeded, err := seedCredentials()
		if err != nil {
			return err
		}
		s.creds = seeded
		if err := s.store.Save(ctx, ports.SlotCredentials, s.creds); err != nil {
			return err
		}
		s.log.Info().Msg("default accounts seeded")
	}

	var session domain.Session
	if found, err := s.store.Load(ctx, ports.SlotSession, &session); err == nil && found {
		s.session = &session
	}
	return nil
}

// Login checks the password against the stored bcrypt hash. On success the
// session is installed and persisted and a signed token returned; on failure
// nothing changes.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.creds[email]
	if !ok {
		return "", nil, domain.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	return s.installSession(ctx, domain.Session{Name: cred.Name, Email: email, Role: cred.Role})
}

// Register creates a credential with role "user" and logs the account in
// immediately. A duplicate email fails with ErrUserExists and leaves the
// existing credential untouched.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.Session, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.creds[email]; exists {
		return "", nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	s.creds[email] = domain.Credential{Name: name, PasswordHash: string(hash), Role: domain.RoleUser}
	if err := s.store.Save(ctx, ports.SlotCredentials, s.creds); err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", email).Msg("user registered")
	return s.installSession(ctx, domain.Session{Name: name, Email: email, Role: domain.RoleUser})
}

// Logout clears the session and removes its persisted slot.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.store.Delete(ctx, ports.SlotSession)
}

// installSession persists the session slot and issues a token.
// Callers must hold s.mu.
func (s *AuthService) installSession(ctx context.Context, session domain.Session) (string, *domain.Session, error) {
	if err := s.store.Save(ctx, ports.SlotSession, session); err != nil {
		return "", nil, err
	}
	s.session = &session

	token, err := s.generateToken(session)
	if err != nil {
		return "", nil, err
	}
	return token, &session, nil
}

func (s *AuthService) generateToken(session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"name":  session.Name,
		"email": session.Email,
		"role":  session.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func seedCredentials() (map[string]domain.Credential, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(domain.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte(domain.SeedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return map[string]domain.Credential{
		domain.SeedAdminEmail: {Name: domain.SeedAdminName, PasswordHash: string(adminHash), Role: domain.RoleAdmin},
		domain.SeedUserEmail:  {Name: domain.SeedUserName, PasswordHash: string(userHash), Role: domain.RoleUser},
	}, nil
}
