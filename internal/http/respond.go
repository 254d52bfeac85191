package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	cartstore "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/store"
	catalogrepo "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/repository"
	checkoutservice "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/service"
	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/tracking"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func getSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value("session_id").(string); ok {
		return sessionID
	}
	return ""
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps core errors to HTTP status codes.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *checkoutservice.ValidationError
	if errors.As(err, &validationErr) {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   validationErr.Error(),
			Code:    "missing_field",
			Details: validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, catalogrepo.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, cartstore.ErrLineNotFound):
		respondError(w, http.StatusNotFound, "line_not_found", err.Error())
	case errors.Is(err, checkoutservice.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, checkoutservice.ErrNoActiveCheckout):
		respondError(w, http.StatusNotFound, "no_active_checkout", err.Error())
	case errors.Is(err, checkoutservice.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, tracking.ErrInvalidOrderID):
		respondError(w, http.StatusBadRequest, "invalid_order_id", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "timeout", "request timed out")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
