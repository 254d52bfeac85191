package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sony/gobreaker/v2"

	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/tracking"
)

type TrackingHandler struct {
	tracking *tracking.Service
	timeout  time.Duration
}

func NewTrackingHandler(tracking *tracking.Service, timeout time.Duration) *TrackingHandler {
	return &TrackingHandler{
		tracking: tracking,
		timeout:  timeout,
	}
}

type OrderStatusDTO struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// GET /api/v1/orders/{order_id}/status
func (h *TrackingHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID := chi.URLParam(r, "order_id")

	status, err := h.tracking.Track(ctx, orderID)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			respondError(w, http.StatusServiceUnavailable, "service_unavailable", "order tracking is temporarily unavailable")
			return
		}
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, OrderStatusDTO{
		OrderID: orderID,
		Status:  string(status),
	})
}
