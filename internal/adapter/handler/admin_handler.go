package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

// AdminHandler serves the admin panel: product CRUD (including the
// multipart upload form), user moderation and order status changes.
type AdminHandler struct {
	catalog   *service.CatalogService
	uploadDir string
}

func NewAdminHandler(catalog *service.CatalogService, uploadDir string) *AdminHandler {
	return &AdminHandler{catalog: catalog, uploadDir: uploadDir}
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, h.catalog.Products())
}

// CreateProduct accepts the multipart form posted by the admin panel:
// text fields for the product record, a JSON-encoded features array and
// optional image files (jpg, png or webp).
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse form: "+err.Error())
		return
	}

	name := r.FormValue("name")
	if len(name) == 0 || len(name) > 100 {
		writeError(w, http.StatusBadRequest, "name must be between 1 and 100 characters")
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		writeError(w, http.StatusBadRequest, "invalid price value, must be a non-negative number")
		return
	}

	product := domain.Product{
		ID:          r.FormValue("id"),
		Name:        name,
		Brand:       r.FormValue("brand"),
		Processor:   r.FormValue("processor"),
		Memory:      r.FormValue("ram"),
		Storage:     r.FormValue("storage"),
		Graphics:    r.FormValue("graphics"),
		Display:     r.FormValue("display"),
		Price:       price,
		Description: r.FormValue("description"),
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if raw := r.FormValue("originalPrice"); raw != "" {
		op, err := strconv.ParseFloat(raw, 64)
		if err != nil || op < 0 {
			writeError(w, http.StatusBadRequest, "invalid originalPrice value")
			return
		}
		product.OriginalPrice = op
	}
	if raw := r.FormValue("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			writeError(w, http.StatusBadRequest, "rating must be between 0 and 5")
			return
		}
		product.Rating = rating
	}
	if raw := r.FormValue("reviews"); raw != "" {
		reviews, err := strconv.Atoi(raw)
		if err != nil || reviews < 0 {
			writeError(w, http.StatusBadRequest, "reviews must be a non-negative integer")
			return
		}
		product.Reviews = reviews
	}
	if raw := r.FormValue("features"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &product.Features); err != nil {
			writeError(w, http.StatusBadRequest, "features must be a JSON array of strings")
			return
		}
	}

	if r.MultipartForm != nil {
		for i, header := range r.MultipartForm.File["images"] {
			path, err := saveUploadedImage(h.uploadDir, product.ID, i, header)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			product.Images = append(product.Images, path)
		}
	}
	if len(product.Images) > 0 {
		product.Image = product.Images[0]
	}

	h.catalog.AddProduct(product)

	writeJSON(w, http.StatusCreated, map[string]any{
		"ok":   true,
		"data": product,
	})
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("productid")
	if _, ok := h.catalog.ProductByID(id); !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product.ID = id

	h.catalog.UpdateProduct(product)
	writeJSON(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("productid")
	if _, ok := h.catalog.ProductByID(id); !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	h.catalog.DeleteProduct(id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, h.catalog.Users())
}

type userStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req userStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status, ok := domain.ParseUserStatus(req.Status)
	if !ok {
		writeError(w, http.StatusBadRequest, "status must be active or blocked")
		return
	}

	id := ps.ByName("userid")
	if _, exists := h.catalog.UserByID(id); !exists {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	h.catalog.SetUserStatus(id, status)
	writeJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("userid")
	if _, exists := h.catalog.UserByID(id); !exists {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	h.catalog.DeleteUser(id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, h.catalog.Orders())
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// SetOrderStatus accepts any of the five statuses; there is no
// transition legality check, matching the admin panel's behavior.
func (h *AdminHandler) SetOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order status")
		return
	}

	id := ps.ByName("orderid")
	if _, exists := h.catalog.OrderByID(id); !exists {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	h.catalog.SetOrderStatus(id, status)
	order, _ := h.catalog.OrderByID(id)
	writeJSON(w, http.StatusOK, order)
}
