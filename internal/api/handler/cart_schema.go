package handler

type addCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// updateCartItemRequest: zero and negative quantities are meaningful (they
// remove the line), so no validation bound applies.
type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartLineResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type cartResponse struct {
	Items []cartLineResponse `json:"items"`
	Total int                `json:"total"`
	IVA   float64            `json:"iva"`
	Neto  float64            `json:"neto"`
}

type checkoutResponse struct {
	Total            int     `json:"total"`
	IVA              float64 `json:"iva"`
	Neto             float64 `json:"neto"`
	AlreadyProcessed bool    `json:"already_processed,omitempty"`
}
