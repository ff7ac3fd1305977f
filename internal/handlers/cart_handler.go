package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/als344572-ai/Rahal-store/internal/cart"
	"github.com/als344572-ai/Rahal-store/internal/catalog"
	"github.com/als344572-ai/Rahal-store/internal/checkout"
	"github.com/als344572-ai/Rahal-store/internal/i18n"
	"github.com/als344572-ai/Rahal-store/internal/models"
	"github.com/als344572-ai/Rahal-store/internal/pricing"
)

type CartHandler struct {
	carts    *cart.Store
	details  *catalog.Details
	checkout *checkout.Service
	taxRate  decimal.Decimal
}

func NewCartHandler(carts *cart.Store, details *catalog.Details, svc *checkout.Service, taxRate decimal.Decimal) *CartHandler {
	return &CartHandler{carts: carts, details: details, checkout: svc, taxRate: taxRate}
}

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	SizeID    string `json:"size_id"`
	Color     string `json:"color"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CartResponse struct {
	Items   []models.CartLineItem  `json:"items"`
	Count   int                    `json:"count"`
	Summary pricing.DisplaySummary `json:"summary"`
	TaxRate string                 `json:"tax_rate"`
}

type CheckoutResponse struct {
	Message string           `json:"message"`
	Receipt checkout.Receipt `json:"receipt"`
}

func (h *CartHandler) response(c *cart.Cart) CartResponse {
	items := c.Items()
	return CartResponse{
		Items:   items,
		Count:   len(items),
		Summary: pricing.Summarize(items, h.taxRate).Display(),
		TaxRate: h.taxRate.String(),
	}
}

// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sc, ok := h.carts.Peek(cartSessionFrom(c))
	if !ok {
		sc = cart.New()
	}
	c.JSON(http.StatusOK, h.response(sc))
}

// POST /v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: i18n.InvalidRequest})
		return
	}

	detail, err := h.details.Find(c.Request.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		abortWithNotice(c, http.StatusNotFound, i18n.ProductNotFound)
		return
	}
	if err != nil {
		_ = c.Error(err)
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}

	item, err := cart.NewLineItem(detail, req.SizeID, req.Color, req.StartDate, req.EndDate, LocaleFrom(c))
	switch {
	case errors.Is(err, cart.ErrMissingDates):
		abortWithNotice(c, http.StatusBadRequest, i18n.SelectDates)
		return
	case errors.Is(err, cart.ErrUnknownSize):
		abortWithNotice(c, http.StatusBadRequest, i18n.UnknownSize)
		return
	case errors.Is(err, pricing.ErrNegativePrice):
		abortWithNotice(c, http.StatusUnprocessableEntity, i18n.NegativePrice)
		return
	case err != nil:
		_ = c.Error(err)
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}

	sc := h.carts.Get(cartSessionFrom(c))
	sc.Add(item)
	c.JSON(http.StatusCreated, gin.H{"item": item, "cart": h.response(sc)})
}

// DELETE /v1/cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sc, ok := h.carts.Peek(cartSessionFrom(c))
	if !ok || !sc.Remove(c.Param("id")) {
		abortWithNotice(c, http.StatusNotFound, i18n.ItemNotFound)
		return
	}
	c.JSON(http.StatusOK, h.response(sc))
}

// POST /v1/cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	var card checkout.CardDetails
	if err := c.ShouldBindJSON(&card); err != nil {
		abortWithNotice(c, http.StatusBadRequest, i18n.InvalidCard)
		return
	}

	session := cartSessionFrom(c)
	sc, ok := h.carts.Peek(session)
	if !ok {
		abortWithNotice(c, http.StatusBadRequest, i18n.EmptyCart)
		return
	}

	receipt, err := h.checkout.Checkout(c.Request.Context(), sc, card, UserFrom(c))
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		abortWithNotice(c, http.StatusBadRequest, i18n.EmptyCart)
		return
	case errors.Is(err, checkout.ErrInProgress):
		abortWithNotice(c, http.StatusConflict, i18n.CheckoutInProgress)
		return
	case errors.Is(err, checkout.ErrInvalidCard):
		abortWithNotice(c, http.StatusBadRequest, i18n.InvalidCard)
		return
	case errors.Is(err, checkout.ErrCardExpired):
		abortWithNotice(c, http.StatusBadRequest, i18n.CardExpired)
		return
	case errors.Is(err, checkout.ErrPaymentDeclined):
		abortWithNotice(c, http.StatusPaymentRequired, i18n.PaymentDeclined)
		return
	case errors.Is(err, checkout.ErrGatewayUnavailable):
		abortWithNotice(c, http.StatusServiceUnavailable, i18n.PaymentUnavailable)
		return
	case err != nil:
		_ = c.Error(err)
		abortWithNotice(c, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	if sc.Len() == 0 {
		h.carts.Drop(session)
	}

	c.JSON(http.StatusOK, CheckoutResponse{
		Message: i18n.T(LocaleFrom(c), i18n.PaymentSuccessful),
		Receipt: receipt,
	})
}
