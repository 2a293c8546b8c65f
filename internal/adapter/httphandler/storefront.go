package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/menu/{handle} (200 OK)
// GET v1/products?query=&sort_key=&reverse= (200 OK)
// GET v1/collections (200 OK)
// GET v1/collections/{handle}/products?sort_key=&reverse= (200 OK)
// GET v1/products/{handle} (200 OK, 204 No content)
// GET v1/recommendations/{id} (200 OK)

type StorefrontHandler struct {
	reader port.StorefrontReader
}

func RegisterStorefront(mux *http.ServeMux, reader port.StorefrontReader) {
	h := StorefrontHandler{reader}
	mux.HandleFunc("GET /v1/menu/{handle}", h.GetMenu)
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{handle}", h.GetProduct)
	mux.HandleFunc("GET /v1/recommendations/{id}", h.GetRecommendations)
	mux.HandleFunc("GET /v1/collections", h.GetCollections)
	mux.HandleFunc("GET /v1/collections/{handle}/products", h.GetCollectionProducts)
}

func (h StorefrontHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetMenu"

	items, err := h.reader.GetMenu(r.Context(), r.PathValue("handle"))
	if err != nil {
		writeUpstreamError(w, op, err)
		return
	}
	writeJSON(w, op, toMenu(items))
}

func (h StorefrontHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetProducts"

	ps, err := h.reader.GetProducts(r.Context(), productQuery(r))
	if err != nil {
		writeUpstreamError(w, op, err)
		return
	}
	writeJSON(w, op, toProducts(ps))
}

func (h StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetProduct"

	p, found, err := h.reader.GetProduct(r.Context(), r.PathValue("handle"))
	if err != nil {
		writeUpstreamError(w, op, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, op, toProduct(p))
}

func (h StorefrontHandler) GetRecommendations(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetRecommendations"

	ps, err := h.reader.GetProductRecommendations(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(w, op, err)
		return
	}
	writeJSON(w, op, toProducts(ps))
}

func (h StorefrontHandler) GetCollections(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetCollections"

	cs, err := h.reader.GetCollections(r.Context())
	if err != nil {
		writeUpstreamError(w, op, err)
		return
	}
	writeJSON(w, op, toCollections(cs))
}

func (h StorefrontHandler) GetCollectionProducts(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetCollectionProducts"

	ps, err := h.reader.GetCollectionProducts(
		r.Context(), r.PathValue("handle"), productQuery(r),
	)
	if err != nil {
		writeUpstreamError(w, op, err)
		return
	}
	writeJSON(w, op, toProducts(ps))
}

func productQuery(r *http.Request) domain.ProductQuery {
	reverse, _ := strconv.ParseBool(r.URL.Query().Get("reverse"))
	return domain.ProductQuery{
		Query:   r.URL.Query().Get("query"),
		SortKey: r.URL.Query().Get("sort_key"),
		Reverse: reverse,
	}
}

func writeJSON(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func writeUpstreamError(w http.ResponseWriter, op string, err error) {
	slog.Error("commerce backend call failed", "op", op, "err", err)
	http.Error(w, "commerce backend unavailable", http.StatusBadGateway)
}
