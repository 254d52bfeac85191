package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	checkoutdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/domain"
	checkoutservice "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/service"
)

type CheckoutHandler struct {
	checkout *checkoutservice.CheckoutService
	timeout  time.Duration
}

func NewCheckoutHandler(checkout *checkoutservice.CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		timeout:  timeout,
	}
}

type BillingRequestDTO struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

type CardPaymentDTO struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type UPIPaymentDTO struct {
	ID string `json:"id"`
}

type PaymentRequestDTO struct {
	Method string          `json:"method"`
	Card   *CardPaymentDTO `json:"card,omitempty"`
	UPI    *UPIPaymentDTO  `json:"upi,omitempty"`
}

type OrderDTO struct {
	OrderID string `json:"order_id"`
	Amount  string `json:"amount"`
}

type CheckoutSessionDTO struct {
	Step  string    `json:"step"`
	Order *OrderDTO `json:"order,omitempty"`
}

func toSessionDTO(session *checkoutdomain.Session) CheckoutSessionDTO {
	dto := CheckoutSessionDTO{Step: session.Step.String()}
	if session.Order != nil {
		dto.Order = &OrderDTO{
			OrderID: session.Order.ID,
			Amount:  session.Order.Amount.String(),
		}
	}
	return dto
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing shopper session")
		return
	}

	session, err := h.checkout.Begin(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toSessionDTO(session))
}

// GET /api/v1/checkout
func (h *CheckoutHandler) Current(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing shopper session")
		return
	}

	session, err := h.checkout.Current(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// POST /api/v1/checkout/billing
func (h *CheckoutHandler) SubmitBilling(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing shopper session")
		return
	}

	var req BillingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	session, err := h.checkout.SubmitBilling(ctx, sessionID, checkoutdomain.BillingDetails{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// POST /api/v1/checkout/payment
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing shopper session")
		return
	}

	var req PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	method := checkoutdomain.PaymentMethod{Kind: checkoutdomain.PaymentKind(req.Method)}
	if req.Card != nil {
		method.Card = &checkoutdomain.CardPayment{
			Number: req.Card.Number,
			Expiry: req.Card.Expiry,
			CVV:    req.Card.CVV,
		}
	}
	if req.UPI != nil {
		method.UPI = &checkoutdomain.UPIPayment{ID: req.UPI.ID}
	}

	session, err := h.checkout.SubmitPayment(ctx, sessionID, method)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// POST /api/v1/checkout/finish
func (h *CheckoutHandler) Finish(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing shopper session")
		return
	}

	order, err := h.checkout.Finish(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, OrderDTO{
		OrderID: order.ID,
		Amount:  order.Amount.String(),
	})
}

// DELETE /api/v1/checkout
func (h *CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing shopper session")
		return
	}

	if err := h.checkout.Abandon(ctx, sessionID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
