package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/orders"
)

type OrderHandlers struct {
	Svc *orders.Service
	Log zerolog.Logger
}

type createOrderReq struct {
	Items []orders.ItemInput `json:"items"`
}

func (h *OrderHandlers) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := CallerIdentity(r)
	if !ok {
		respondErr(w, r, h.Log, apperr.ErrInvalidToken)
		return
	}
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, r, h.Log, apperr.ErrInvalidItems)
		return
	}
	o, err := h.Svc.CreateOrder(r.Context(), id.UserID, req.Items)
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusCreated, "order.created", o)
}

func (h *OrderHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := CallerIdentity(r)
	if !ok {
		respondErr(w, r, h.Log, apperr.ErrInvalidToken)
		return
	}
	out, err := h.Svc.GetUserOrders(r.Context(), id.UserID)
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "order.list", out)
}

func (h *OrderHandlers) ListAll(w http.ResponseWriter, r *http.Request) {
	id, ok := CallerIdentity(r)
	if !ok {
		respondErr(w, r, h.Log, apperr.ErrInvalidToken)
		return
	}
	out, err := h.Svc.GetAllOrders(r.Context(), id.Role)
	if err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "order.list", out)
}

func (h *OrderHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := CallerIdentity(r)
	if !ok {
		respondErr(w, r, h.Log, apperr.ErrInvalidToken)
		return
	}
	if err := h.Svc.DeleteOrderByID(r.Context(), chi.URLParam(r, "id"), id.Role); err != nil {
		respondErr(w, r, h.Log, err)
		return
	}
	respond(w, r, http.StatusOK, "order.deleted", nil)
}
