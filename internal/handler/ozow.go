package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mockapi/internal/service"
)

// OzowHandler handles HTTP requests for the Ozow mock.
type OzowHandler struct {
	ozowService *service.OzowService
}

// NewOzowHandler creates a new OzowHandler.
func NewOzowHandler(ozowService *service.OzowService) *OzowHandler {
	return &OzowHandler{ozowService: ozowService}
}

// OzowCustomer is the optional customer block of an Ozow initiation.
type OzowCustomer struct {
	CountryCode string `json:"countryCode,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
}

// OzowInitiateRequest is the HTTP request body for an Ozow initiation.
type OzowInitiateRequest struct {
	Amount        float64       `json:"amount"`
	BankReference string        `json:"bankReference"`
	CancelURL     string        `json:"cancelUrl,omitempty"`
	ErrorURL      string        `json:"errorUrl,omitempty"`
	SuccessURL    string        `json:"successUrl,omitempty"`
	NotifyURL     string        `json:"notifyUrl,omitempty"`
	IsTest        bool          `json:"isTest"`
	Customer      *OzowCustomer `json:"customer,omitempty"`
}

// OzowInitiateResponse is returned by a successful initiation.
type OzowInitiateResponse struct {
	TransactionID string  `json:"transactionId"`
	PaymentLink   string  `json:"paymentLink"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// OzowStatusResponse is returned by a status poll.
type OzowStatusResponse struct {
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	BankReference string  `json:"bankReference"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// Initiate handles POST /api/mocks/payment/ozow
func (h *OzowHandler) Initiate(c *gin.Context) {
	var req OzowInitiateRequest
	raw, ok := bindPaymentBody(c, &req)
	if !ok {
		return
	}

	payment, err := h.ozowService.Initiate(c.Request.Context(), service.OzowInitiateRequest{
		Amount:        req.Amount,
		BankReference: req.BankReference,
		Raw:           raw,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, OzowInitiateResponse{
		TransactionID: payment.ID,
		PaymentLink:   payment.Link,
		Status:        string(payment.Status),
		Amount:        payment.Amount,
		Currency:      payment.Currency,
	})
}

// Status handles GET /api/mocks/payment/ozow?transaction_id=
func (h *OzowHandler) Status(c *gin.Context) {
	payment, err := h.ozowService.CheckStatus(c.Request.Context(), c.Query("transaction_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, OzowStatusResponse{
		TransactionID: payment.ID,
		Status:        string(payment.Status),
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		BankReference: payment.Reference,
		CreatedAt:     formatTime(payment.CreatedAt),
		UpdatedAt:     formatTime(payment.UpdatedAt),
	})
}
