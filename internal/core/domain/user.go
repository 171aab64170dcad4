package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Credential is one registered account, keyed by email in the credential map.
// The password field carries a bcrypt hash, never the plaintext value.
type Credential struct {
	Name         string `json:"name"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// Session is the currently authenticated visitor. At most one session record
// is persisted at a time; it is absent when nobody is logged in.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Default accounts seeded into the credential map on first run.
// Seed passwords are hashed at seed time.
const (
	SeedAdminEmail    = "admin@fusionasiatica.com"
	SeedAdminName     = "Admin"
	SeedAdminPassword = "admin123"

	SeedUserEmail    = "user@example.com"
	SeedUserName     = "Usuario"
	SeedUserPassword = "user123"
)
