package httphandler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/core/port"
)

// POST v1/revalidate?secret= Headers X-Shopify-Topic (200 OK, 401 Unauthorized)

const topicHeader = "X-Shopify-Topic"

// RevalidateHandler is the backend-originated invalidation entry
// point. The shared secret gates eviction so third parties cannot
// force cache stampedes.
type RevalidateHandler struct {
	revalidator port.CacheRevalidator
	secret      string
}

func RegisterRevalidate(
	mux *http.ServeMux, revalidator port.CacheRevalidator, secret string,
) {
	h := RevalidateHandler{revalidator, secret}
	mux.HandleFunc("POST /v1/revalidate", h.Revalidate)
}

func (h RevalidateHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	const op = "RevalidateHandler.Revalidate"
	log := slog.With("op", op)

	secret := r.URL.Query().Get("secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.secret)) != 1 {
		log.Warn("invalid revalidation secret")
		http.Error(w, "invalid revalidation secret", http.StatusUnauthorized)
		return
	}

	topic := r.Header.Get(topicHeader)
	tags := h.revalidator.Revalidate(topic)

	resp := struct {
		Revalidated bool     `json:"revalidated"`
		Tags        []string `json:"tags"`
		Now         int64    `json:"now"`
	}{
		Revalidated: len(tags) > 0,
		Tags:        tags,
		Now:         time.Now().Unix(),
	}
	writeJSON(w, op, resp)
}
