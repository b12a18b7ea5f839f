package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mockapi/internal/service"
)

// PayFastHandler handles HTTP requests for the PayFast mock.
type PayFastHandler struct {
	payFastService *service.PayFastService
}

// NewPayFastHandler creates a new PayFastHandler.
func NewPayFastHandler(payFastService *service.PayFastService) *PayFastHandler {
	return &PayFastHandler{payFastService: payFastService}
}

// PayFastInitiateRequest is the HTTP request body for a PayFast initiation.
// The optional fields are kept only in the stored request body.
type PayFastInitiateRequest struct {
	MerchantID   string  `json:"merchant_id"`
	Amount       float64 `json:"amount"` // cents
	ItemName     string  `json:"item_name"`
	ReturnURL    string  `json:"return_url,omitempty"`
	CancelURL    string  `json:"cancel_url,omitempty"`
	NotifyURL    string  `json:"notify_url,omitempty"`
	NameFirst    string  `json:"name_first,omitempty"`
	NameLast     string  `json:"name_last,omitempty"`
	EmailAddress string  `json:"email_address,omitempty"`
}

// PayFastInitiateResponse is returned by a successful initiation.
type PayFastInitiateResponse struct {
	PaymentID  string  `json:"payment_id"`
	PaymentURL string  `json:"payment_url"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

// PayFastStatusResponse is returned by a status poll.
type PayFastStatusResponse struct {
	PaymentID string  `json:"payment_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	ItemName  string  `json:"item_name"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// Initiate handles POST /api/mocks/payment/payfast
func (h *PayFastHandler) Initiate(c *gin.Context) {
	var req PayFastInitiateRequest
	raw, ok := bindPaymentBody(c, &req)
	if !ok {
		return
	}

	payment, err := h.payFastService.Initiate(c.Request.Context(), service.PayFastInitiateRequest{
		MerchantID: req.MerchantID,
		Amount:     req.Amount,
		ItemName:   req.ItemName,
		Raw:        raw,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PayFastInitiateResponse{
		PaymentID:  payment.ID,
		PaymentURL: payment.Link,
		Status:     string(payment.Status),
		Amount:     payment.Amount,
		Currency:   payment.Currency,
	})
}

// Status handles GET /api/mocks/payment/payfast?payment_id=
func (h *PayFastHandler) Status(c *gin.Context) {
	payment, err := h.payFastService.CheckStatus(c.Request.Context(), c.Query("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PayFastStatusResponse{
		PaymentID: payment.ID,
		Status:    string(payment.Status),
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		ItemName:  payment.ItemName,
		CreatedAt: formatTime(payment.CreatedAt),
		UpdatedAt: formatTime(payment.UpdatedAt),
	})
}
