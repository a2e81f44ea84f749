package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-shop-api/internal/api/metrics"
	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

// SweetHandler handles HTTP requests for inventory operations.
type SweetHandler struct {
	service ports.SweetService
}

func NewSweetHandler(service ports.SweetService) *SweetHandler {
	return &SweetHandler{service: service}
}

// List handles GET /api/sweets.
//
// @Summary      List all sweets, newest first
// @Tags         sweets
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if sweets == nil {
		sweets = []*domain.Sweet{}
	}
	return respondList(c, sweets, len(sweets))
}

// Search handles GET /api/sweets/search.
//
// @Summary      Search sweets by name, category and price range
// @Tags         sweets
// @Produce      json
// @Param        name      query     string  false  "Case-insensitive substring match"
// @Param        category  query     string  false  "Exact category"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Success      200       {object}  envelope
// @Failure      400       {object}  envelope
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	filter := ports.SweetFilter{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, echo.NewHTTPError(http.StatusBadRequest, "minPrice must be a number"))
		}
		filter.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, echo.NewHTTPError(http.StatusBadRequest, "maxPrice must be a number"))
		}
		filter.MaxPrice = &v
	}

	sweets, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	if sweets == nil {
		sweets = []*domain.Sweet{}
	}
	return respondList(c, sweets, len(sweets))
}

// Create handles POST /api/sweets.
//
// @Summary      Create a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return respondError(c, err)
	}

	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, err.Error()))
	}

	sweet, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return respondError(c, err)
	}
	metrics.SweetsCreatedTotal.WithLabelValues(sweet.Category).Inc()
	return respondData(c, http.StatusCreated, sweet)
}

// Update handles PUT /api/sweets/:id.
//
// @Summary      Update a sweet (partial fields)
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return respondError(c, err)
	}

	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), toPatch(req))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, sweet)
}

// Purchase handles POST /api/sweets/:id/purchase.
//
// @Summary      Purchase a sweet (decrement stock)
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true   "Sweet id"
// @Param        body  body      purchaseRequest  false  "Quantity to purchase (default 1)"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return respondError(c, err)
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	sweet, err := h.service.Purchase(c.Request().Context(), c.Param("id"), quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.PurchasesTotal.WithLabelValues("insufficient_stock").Inc()
		}
		return respondError(c, err)
	}
	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	return respondData(c, http.StatusOK, sweet)
}

// Restock handles POST /api/sweets/:id/restock. Admin only (route-gated).
//
// @Summary      Restock a sweet (increment stock)
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Sweet id"
// @Param        body  body      restockRequest  true  "Quantity to add"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return respondError(c, err)
	}

	var req restockRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	}

	sweet, err := h.service.Restock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RestocksTotal.Inc()
	return respondData(c, http.StatusOK, sweet)
}

// Delete handles DELETE /api/sweets/:id. Admin only (route-gated).
//
// @Summary      Delete a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Sweet id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return respondError(c, err)
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	metrics.SweetsDeletedTotal.Inc()
	return respondMessage(c, http.StatusOK, "sweet deleted")
}
