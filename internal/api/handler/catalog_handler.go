package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fusionasiatica/storefront-api/internal/api/metrics"
	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for catalog operations.
type CatalogHandler struct {
	service  ports.CatalogService
	activity ports.ActivityRecorder
}

func NewCatalogHandler(service ports.CatalogService, activity ports.ActivityRecorder) *CatalogHandler {
	return &CatalogHandler{service: service, activity: activity}
}

// List handles GET /v1/products.
//
// @Summary      List catalog products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products := h.service.List(c.Request().Context())
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/products — the service assigns the id.
//
// @Summary      Add a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Add(c.Request().Context(), ports.CatalogInput{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Ingredients: req.Ingredients,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("add").Inc()
	record(h.activity, newActivityEvent(c, "product_added", "product", strconv.Itoa(product.ID)))
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Delete handles DELETE /v1/products/:id. Removing an absent id succeeds.
//
// @Summary      Remove a product
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204  "product removed"
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/products/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("remove").Inc()
	record(h.activity, newActivityEvent(c, "product_removed", "product", c.Param("id")))
	return c.NoContent(http.StatusNoContent)
}

// UpdateStock handles PATCH /v1/products/:id/stock.
//
// @Summary      Replace a product's stock count
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Product id"
// @Param        body  body  updateStockRequest  true  "New stock count"
// @Success      204  "stock updated"
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/products/{id}/stock [patch]
func (h *CatalogHandler) UpdateStock(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.UpdateStock(c.Request().Context(), id, req.Stock); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("update_stock").Inc()
	record(h.activity, newActivityEvent(c, "stock_updated", "product", c.Param("id")))
	return c.NoContent(http.StatusNoContent)
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Ingredients: p.Ingredients,
		Category:    p.Category,
		Stock:       p.Stock,
	}
}
