package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fusionasiatica/storefront-api/internal/api/metrics"
	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

// CartHandler handles HTTP requests for the visitor cart. The cart is selected
// by the X-Cart-ID header; product fields are snapshotted from the catalog
// when a line is added.
type CartHandler struct {
	cart     ports.CartService
	catalog  ports.CatalogService
	activity ports.ActivityRecorder
}

func NewCartHandler(cart ports.CartService, catalog ports.CatalogService, activity ports.ActivityRecorder) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, activity: activity}
}

// Get handles GET /v1/cart.
//
// @Summary      Get the cart with totals
// @Tags         cart
// @Produce      json
// @Param        X-Cart-ID  header    string  false  "Visitor cart id"
// @Success      200        {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	id := cartID(c)
	return c.JSON(http.StatusOK, toCartResponse(h.cart.Items(id), h.cart.Totals(id)))
}

// AddItem handles POST /v1/cart/items — merge-or-append by product id.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID  header    string              false  "Visitor cart id"
// @Param        body       body      addCartItemRequest  true   "Product reference"
// @Success      200        {object}  cartResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.catalog.Get(c.Request().Context(), req.ProductID)
	if err != nil {
		return err
	}

	id := cartID(c)
	h.cart.Add(id, product)
	metrics.CartOpsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, toCartResponse(h.cart.Items(id), h.cart.Totals(id)))
}

// UpdateItem handles PATCH /v1/cart/items/:id — sets the quantity exactly;
// zero or negative removes the line.
//
// @Summary      Set a cart line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID  header    string                 false  "Visitor cart id"
// @Param        id         path      int                    true   "Product id"
// @Param        body       body      updateCartItemRequest  true   "New quantity"
// @Success      200        {object}  cartResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id := cartID(c)
	h.cart.UpdateQuantity(id, productID, req.Quantity)
	metrics.CartOpsTotal.WithLabelValues("update_quantity").Inc()
	return c.JSON(http.StatusOK, toCartResponse(h.cart.Items(id), h.cart.Totals(id)))
}

// RemoveItem handles DELETE /v1/cart/items/:id.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        X-Cart-ID  header  string  false  "Visitor cart id"
// @Param        id         path    int     true   "Product id"
// @Success      204  "line removed"
// @Failure      400  {object}  errorResponse
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	h.cart.Remove(cartID(c), productID)
	metrics.CartOpsTotal.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Param        X-Cart-ID  header  string  false  "Visitor cart id"
// @Success      204  "cart emptied"
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	h.cart.Clear(cartID(c))
	metrics.CartOpsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Checkout handles POST /v1/cart/checkout — the simulated purchase. The cart
// is emptied and the totals breakdown returned; an Idempotency-Key header
// suppresses accidental replays.
//
// @Summary      Check out the cart
// @Tags         cart
// @Produce      json
// @Param        X-Cart-ID        header    string  false  "Visitor cart id"
// @Param        Idempotency-Key  header    string  false  "Idempotency key to prevent duplicate checkouts"
// @Success      200              {object}  checkoutResponse
// @Failure      500              {object}  errorResponse
// @Router       /v1/cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	id := cartID(c)
	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	result, err := h.cart.Checkout(c.Request().Context(), id, idempotencyKey)
	if err != nil {
		return err
	}

	if !result.AlreadyProcessed {
		metrics.CheckoutsTotal.Inc()
		metrics.CheckoutValue.Observe(float64(result.Total))
		record(h.activity, newActivityEvent(c, "checkout", "cart", id))
	}

	return c.JSON(http.StatusOK, checkoutResponse{
		Total:            result.Total,
		IVA:              result.IVA,
		Neto:             result.Neto,
		AlreadyProcessed: result.AlreadyProcessed,
	})
}

func toCartResponse(lines []domain.CartLine, totals domain.CartTotals) cartResponse {
	items := make([]cartLineResponse, len(lines))
	for i, l := range lines {
		items[i] = cartLineResponse{ID: l.ID, Name: l.Name, Image: l.Image, Price: l.Price, Quantity: l.Quantity}
	}
	return cartResponse{Items: items, Total: totals.Total, IVA: totals.IVA, Neto: totals.Neto}
}
