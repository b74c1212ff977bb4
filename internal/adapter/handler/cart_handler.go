package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

// CartHandler exposes the cart store over HTTP. The cart identity is
// the authenticated user id, or the X-Cart-ID header for guests.
type CartHandler struct {
	carts    *service.CartService
	catalog  *service.CatalogService
	checkout *service.CheckoutService
}

func NewCartHandler(carts *service.CartService, catalog *service.CatalogService, checkout *service.CheckoutService) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog, checkout: checkout}
}

type cartResponse struct {
	Items      []domain.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

func (h *CartHandler) respondCart(w http.ResponseWriter, cartID string, status int) {
	writeJSON(w, status, cartResponse{
		Items:      h.carts.Lines(cartID),
		TotalItems: h.carts.TotalItems(cartID),
		TotalPrice: h.carts.TotalPrice(cartID),
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cartID := cartIDFromRequest(r)
	if cartID == "" {
		writeError(w, http.StatusBadRequest, "missing cart identity")
		return
	}
	h.respondCart(w, cartID, http.StatusOK)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cartID := cartIDFromRequest(r)
	if cartID == "" {
		writeError(w, http.StatusBadRequest, "missing cart identity")
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	product, ok := h.catalog.ProductByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	h.carts.AddToCart(cartID, product)
	h.respondCart(w, cartID, http.StatusOK)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem sets the line quantity; zero or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cartID := cartIDFromRequest(r)
	if cartID == "" {
		writeError(w, http.StatusBadRequest, "missing cart identity")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.carts.UpdateQuantity(cartID, ps.ByName("productid"), req.Quantity)
	h.respondCart(w, cartID, http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cartID := cartIDFromRequest(r)
	if cartID == "" {
		writeError(w, http.StatusBadRequest, "missing cart identity")
		return
	}

	h.carts.RemoveFromCart(cartID, ps.ByName("productid"))
	h.respondCart(w, cartID, http.StatusOK)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cartID := cartIDFromRequest(r)
	if cartID == "" {
		writeError(w, http.StatusBadRequest, "missing cart identity")
		return
	}

	h.carts.ClearCart(cartID)
	h.respondCart(w, cartID, http.StatusOK)
}

type checkoutRequest struct {
	RequestID       string `json:"requestId"`
	ShippingAddress string `json:"shippingAddress"`
}

// Checkout requires authentication: the order snapshots the buyer.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := ClaimsFromContext(r.Context())

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RequestID == "" || req.ShippingAddress == "" {
		writeError(w, http.StatusBadRequest, "requestId and shippingAddress are required")
		return
	}

	order, err := h.checkout.Checkout(r.Context(), service.CheckoutRequest{
		RequestID:       req.RequestID,
		CartID:          claims.UserID,
		UserID:          claims.UserID,
		UserName:        claims.Name,
		UserEmail:       claims.Email,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateRequest):
			writeError(w, http.StatusConflict, "duplicate request")
		case errors.Is(err, service.ErrCartEmpty):
			writeError(w, http.StatusBadRequest, "cart is empty")
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}
