package dto

import "github.com/google/uuid"

type OrderLineDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	LineSum  float64 `json:"line_sum"`
}

type OrderSummaryResponse struct {
	Items    []OrderLineDTO `json:"items"`
	Subtotal float64        `json:"subtotal"`
	Tax      float64        `json:"tax"`
	Total    float64        `json:"total"`
	Currency string         `json:"currency"`
}

type PaymentRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	Method     string    `json:"method" validate:"required,oneof=qpay card wallet"`
	QpayPhone  string    `json:"qpay_phone,omitempty"`
	CardNumber string    `json:"card_number,omitempty"`
	CardExpiry string    `json:"card_expiry,omitempty"`
	CardCvv    string    `json:"card_cvv,omitempty"`
	CardName   string    `json:"card_name,omitempty"`
}

type PaymentResponse struct {
	Status          string  `json:"status"`
	Paid            float64 `json:"paid"`
	Method          string  `json:"method"`
	SnapToken       string  `json:"snap_token,omitempty"`
	SnapRedirectUrl string  `json:"snap_redirect_url,omitempty"`
}
