package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Price       int      `json:"price"       validate:"gte=0"`
	Image       string   `json:"image"       validate:"required"`
	Ingredients []string `json:"ingredients"`
	Category    string   `json:"category"    validate:"required"`
	Stock       int      `json:"stock"`
}

// updateStockRequest intentionally carries no bounds: negative stock is a
// valid state the admin panel can write.
type updateStockRequest struct {
	Stock int `json:"stock"`
}

type productResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
}
