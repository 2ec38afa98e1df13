package services

import (
	"context"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment requests.
type PaymentReaderSvc interface {
	// ListPayments retrieves all live payments visible to the actor.
	ListPayments(ctx context.Context, actor domain.Actor) ([]domain.Payment, error)

	// GetPaymentByID retrieves a single payment request.
	GetPaymentByID(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment requests.
type PaymentWriterSvc interface {
	CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, actor domain.Actor, paymentID string) error
	RestorePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
	PurgePayment(ctx context.Context, actor domain.Actor, paymentID string) error
}

// PaymentWorkflowSvc defines the approval workflow operations. All three
// require a privileged actor; ErrForbidden otherwise.
type PaymentWorkflowSvc interface {
	// ApprovePayment stamps the actor as approver and sets status Approved.
	ApprovePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)

	// RejectPayment stamps the actor as rejector with the given reason.
	RejectPayment(ctx context.Context, actor domain.Actor, paymentID string, reason string) (*domain.Payment, error)

	// MarkPaymentPaid records the payment as disbursed by the actor.
	MarkPaymentPaid(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
	PaymentWorkflowSvc
}
