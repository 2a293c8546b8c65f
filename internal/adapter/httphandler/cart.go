package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/cart Headers X-Cart-ID (200 OK, 204 No content)
// POST v1/cart/lines JSON Headers X-Cart-ID (200 OK, 400 Bad request)

const cartIDHeader = "X-Cart-ID"

type CartHandler struct {
	cart port.CartService
}

func RegisterCart(mux *http.ServeMux, cart port.CartService) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/lines", h.AddLines)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"

	cart, found, err := h.cart.GetCart(r.Context(), r.Header.Get(cartIDHeader))
	if err != nil {
		writeUpstreamError(w, op, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, op, toCart(cart))
}

// AddLines surfaces one generic failure message whatever went wrong,
// never backend internals.
func (h CartHandler) AddLines(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddLines"
	log := slog.With("op", op)

	var lines []CartLineInput
	if err := json.NewDecoder(r.Body).Decode(&lines); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	cartID := r.Header.Get(cartIDHeader)
	cart, err := h.cart.AddToCart(r.Context(), cartID, h.toDomain(lines))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrValidation) {
			status = http.StatusBadRequest
		}
		http.Error(w, "error adding item to cart", status)
		log.Warn("failed to add cart lines", "err", err)
		return
	}

	writeJSON(w, op, toCart(cart))
}

func (h CartHandler) toDomain(lines []CartLineInput) []domain.CartLineInput {
	out := make([]domain.CartLineInput, 0, len(lines))
	for _, line := range lines {
		out = append(out, domain.CartLineInput{
			MerchandiseID: line.MerchandiseID,
			Quantity:      line.Quantity,
		})
	}
	return out
}
