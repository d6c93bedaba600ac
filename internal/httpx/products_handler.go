package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
	"github.com/spf13/cast"
)

type ProductsHandler struct {
	Service *inventory.Service
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/api/products", h.listProducts)
	r.Post("/api/products", h.createProduct)
	r.Put("/api/products/{id}", h.updateProduct)
	r.Delete("/api/products/{id}", h.deleteProduct)
	r.Post("/api/products/{id}/sales", h.recordSale)
	r.Delete("/api/products/{id}/sales/{saleId}", h.deleteSale)
	r.Post("/api/products/{id}/restock", h.restock)
	r.Get("/api/stats", h.stats)
	r.Get("/api/stats/top", h.topPerformers)
	r.Get("/api/sales", h.salesHistory)
	r.Post("/api/calc/profit", h.calcProfit)
	r.Post("/api/calc/price", h.calcPrice)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain error kinds to status codes: validation 400,
// missing product/sale 404, insufficient stock 409, anything else
// (persistence) 500.
func writeErr(w http.ResponseWriter, err error) {
	var ve *inventory.ValidationError
	var ise *inventory.InsufficientStockError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.Is(err, inventory.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
	case errors.Is(err, inventory.ErrSaleNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Sale record not found"})
	case errors.As(err, &ise):
		writeJSON(w, http.StatusConflict, map[string]string{"error": ise.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func mutationCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}

func (h *ProductsHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Products())
}

func (h *ProductsHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := mutationCtx(r)
	defer cancel()

	p, err := h.Service.AddProduct(ctx, fields)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := mutationCtx(r)
	defer cancel()

	p, err := h.Service.UpdateProduct(ctx, chi.URLParam(r, "id"), fields)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := mutationCtx(r)
	defer cancel()

	if err := h.Service.DeleteProduct(ctx, chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

type recordSaleReq struct {
	Platform inventory.Platform `json:"platform"`
	Quantity any                `json:"quantity"` // number or numeric string
	Date     string             `json:"date"`
}

func (h *ProductsHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	qty, err := cast.ToIntE(req.Quantity)
	if err != nil {
		qty = 0 // fails quantity validation below
	}

	ctx, cancel := mutationCtx(r)
	defer cancel()

	p, err := h.Service.RecordSale(ctx, chi.URLParam(r, "id"), req.Platform, qty, req.Date)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) deleteSale(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := mutationCtx(r)
	defer cancel()

	p, err := h.Service.DeleteSale(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "saleId"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) restock(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := mutationCtx(r)
	defer cancel()

	p, err := h.Service.Restock(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type calcReq struct {
	CostPrice     float64  `json:"costPrice"`
	SellingPrice  float64  `json:"sellingPrice"`
	DesiredProfit float64  `json:"desiredProfit"`
	GST           *float64 `json:"gst"` // percent, DefaultGSTRate when omitted
	inventory.UnitExpenses
}

func (c calcReq) gstRate() float64 {
	if c.GST == nil {
		return inventory.DefaultGSTRate
	}
	return *c.GST
}

func (h *ProductsHandler) calcProfit(w http.ResponseWriter, r *http.Request) {
	var req calcReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	pb, err := inventory.NetProfit(req.CostPrice, req.SellingPrice, req.UnitExpenses, req.gstRate())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pb)
}

func (h *ProductsHandler) calcPrice(w http.ResponseWriter, r *http.Request) {
	var req calcReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	sug, err := inventory.SuggestedPrice(req.CostPrice, req.DesiredProfit, req.UnitExpenses, req.gstRate())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sug)
}

func (h *ProductsHandler) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Overview())
}

func (h *ProductsHandler) topPerformers(w http.ResponseWriter, r *http.Request) {
	n := 5
	if s := r.URL.Query().Get("n"); s != "" {
		if v, err := cast.ToIntE(s); err == nil && v > 0 {
			n = v
		}
	}
	writeJSON(w, http.StatusOK, h.Service.TopPerformers(n))
}

func (h *ProductsHandler) salesHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.SalesHistory(r.URL.Query().Get("q")))
}
