package domain

// Contact form categories, matching the options offered by the storefront.
const (
	CategoryInquiry     = "consulta"
	CategoryReservation = "reserva"
	CategoryComplaint   = "reclamo"
	CategoryCompliment  = "felicitacion"
	CategorySuggestion  = "sugerencia"
	CategoryJob         = "trabajo"
)

// ContactSubmission is one visitor-submitted message. The ID is derived from
// the insertion timestamp (unix milliseconds) and is unique for the lifetime of
// the log; SubmittedAt is a human-readable copy of the same instant.
type ContactSubmission struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}
