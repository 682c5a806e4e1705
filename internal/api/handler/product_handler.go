package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storemgmt/store-api/internal/api/metrics"
	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.InventoryService
}

func NewProductHandler(service ports.InventoryService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Get handles GET /api/v1/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// List handles GET /api/v1/products. An empty catalog is an explicit 404,
// not an empty array.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  productListResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]productResponse, 0, len(products))
	for _, p := range products {
		data = append(data, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, productListResponse{Data: data})
}

// Add handles POST /api/v1/products.
//
// @Summary      Add a product to the catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Add(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Add(c.Request().Context(), ports.AddProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// UpdatePrice handles PATCH /api/v1/products/:id/price.
//
// @Summary      Update a product's price
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Product id"
// @Param        body  body      updatePriceRequest  true  "New price"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/products/{id}/price [patch]
func (h *ProductHandler) UpdatePrice(c echo.Context) error {
	var req updatePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.UpdatePrice(c.Request().Context(), c.Param("id"), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Purchase handles PATCH /api/v1/products/:id/purchase.
//
// @Summary      Purchase product stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Product id"
// @Param        body  body      purchaseRequest  true  "Quantity to buy"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      412   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/products/{id}/purchase [patch]
func (h *ProductHandler) Purchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	product, err := h.service.Purchase(c.Request().Context(), c.Param("id"), req.Quantity)
	metrics.PurchaseDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOutOfStock):
			metrics.PurchasesTotal.WithLabelValues("out_of_stock").Inc()
		case errors.Is(err, domain.ErrProductNotFound):
			metrics.PurchasesTotal.WithLabelValues("not_found").Inc()
		default:
			metrics.PurchasesTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.PurchasesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toProductResponse(product))
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
