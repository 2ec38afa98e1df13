package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus enumerates the approval workflow states of a payment
// request. No transition table is enforced; workflow wrappers set status
// fields directly and callers infer ordering from the timestamps.
type PaymentStatus string

const (
	PaymentStatusDraft    PaymentStatus = "Draft"
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusApproved PaymentStatus = "Approved"
	PaymentStatusRejected PaymentStatus = "Rejected"
	PaymentStatusPaid     PaymentStatus = "Paid"
)

// Payment is a payment request tracked in the payments list.
type Payment struct {
	PaymentID       string          `json:"paymentId"`
	Reference       string          `json:"reference"`
	PayeeEmail      string          `json:"payeeEmail"`
	PayeeName       string          `json:"payeeName"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	Status          PaymentStatus   `json:"status"`
	ApprovedBy      string          `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	RejectedBy      string          `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time      `json:"rejectedAt,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	PaidBy          string          `json:"paidBy,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	Attachments     []string        `json:"attachments"`
	SoftDeleteFields
	AuditFields
}

// OwnerIdentity returns the payee email used for visibility filtering.
func (p Payment) OwnerIdentity() string {
	return p.PayeeEmail
}
