package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/catalog"
	"ecommerce-api/internal/models"
)

type ProductHandlers struct {
	Svc *catalog.Service
	Log zerolog.Logger
}

func (h *ProductHandlers) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := CallerIdentity(r)
	if !ok {
		respondErr(w, r, h.Log, apperr.ErrInvalidToken)
		return
	}
	var in catalog.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErr(w, r, h.Log, apperr.ErrInvalidRequest)
		return
	}
	p, err := h.Svc.CreateProduct(r.Context(), id.UserID, in)
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusCreated, "product.created", p)
}

func (h *ProductHandlers) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Svc.GetProducts(r.Context())
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "product.list", products)
}

func (h *ProductHandlers) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.GetProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "product.detail", p)
}

func (h *ProductHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := CallerIdentity(r)
	if !ok {
		respondErr(w, r, h.Log, apperr.ErrInvalidToken)
		return
	}
	var patch models.ProductPatch
	dec := json.NewDecoder(r.Body)
	// Only the enumerated mutable fields are accepted; unknown keys are an error.
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		respondErr(w, r, h.Log, apperr.ErrInvalidRequest)
		return
	}
	p, err := h.Svc.UpdateProduct(r.Context(), chi.URLParam(r, "id"), id.UserID, id.Role, patch)
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "product.updated", p)
}

func (h *ProductHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := CallerIdentity(r)
	if !ok {
		respondErr(w, r, h.Log, apperr.ErrInvalidToken)
		return
	}
	if err := h.Svc.DeleteProduct(r.Context(), chi.URLParam(r, "id"), id.UserID, id.Role); err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "product.deleted", nil)
}
