package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

// CatalogHandler serves the public browsing surface.
type CatalogHandler struct {
	catalog      *service.CatalogService
	priceCeiling float64
}

func NewCatalogHandler(catalog *service.CatalogService, priceCeiling float64) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, priceCeiling: priceCeiling}
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
	Total    int              `json:"total"`
}

// ListProducts filters the catalog by the query parameters: q (free
// text), brand, ram, processor (each repeatable) and max_price.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{
		Query:      q.Get("q"),
		Brands:     q["brand"],
		Memory:     q["ram"],
		Processors: q["processor"],
		MaxPrice:   h.priceCeiling,
	}
	if raw := q.Get("max_price"); raw != "" {
		ceiling, err := strconv.ParseFloat(raw, 64)
		if err != nil || ceiling < 0 {
			writeError(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		criteria.MaxPrice = ceiling
	}

	all := h.catalog.Products()
	matched := domain.FilterProducts(all, criteria)

	writeJSON(w, http.StatusOK, productListResponse{
		Products: matched,
		Count:    len(matched),
		Total:    len(all),
	})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, ok := h.catalog.ProductByID(ps.ByName("productid"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// FilterOptions returns the facet values for the filter sidebar.
func (h *CatalogHandler) FilterOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, h.catalog.FilterOptions())
}
