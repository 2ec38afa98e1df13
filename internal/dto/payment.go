package dto

import (
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data for raising a payment request.
type CreatePaymentRequest struct {
	Reference     string          `json:"reference" binding:"required"`
	PayeeEmail    string          `json:"payeeEmail" binding:"required,email"`
	PayeeName     string          `json:"payeeName"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency" binding:"omitempty,len=3"`
	Description   string          `json:"description"`
	InvoiceNumber string          `json:"invoiceNumber"`
	DueDate       string          `json:"dueDate" binding:"omitempty,dateonly"`
	Attachments   []string        `json:"attachments"`
}

// UpdatePaymentRequest defines a partial payment update. Pointers
// distinguish omitted fields from zero values. Workflow fields (status,
// approver stamps) are not updatable here; use the workflow endpoints.
type UpdatePaymentRequest struct {
	Reference     *string          `json:"reference"`
	PayeeEmail    *string          `json:"payeeEmail" binding:"omitempty,email"`
	PayeeName     *string          `json:"payeeName"`
	Amount        *decimal.Decimal `json:"amount"`
	Currency      *string          `json:"currency" binding:"omitempty,len=3"`
	Description   *string          `json:"description"`
	InvoiceNumber *string          `json:"invoiceNumber"`
	DueDate       *string          `json:"dueDate" binding:"omitempty,dateonly"`
	Attachments   *[]string        `json:"attachments"`
}

// RejectPaymentRequest carries the reason for rejecting a payment.
type RejectPaymentRequest struct {
	Reason string `json:"reason"`
}

// PaymentListResponse wraps a payment listing.
type PaymentListResponse struct {
	Payments []domain.Payment `json:"payments"`
}
