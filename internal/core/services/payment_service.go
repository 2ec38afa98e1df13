package services

import (
	"context"
	"log/slog"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

type paymentService struct {
	entityCRUD[domain.Payment]
	payments portsrepo.PaymentRepository
}

// NewPaymentService creates the payment request service.
func NewPaymentService(repo portsrepo.PaymentRepository) portssvc.PaymentSvcFacade {
	return &paymentService{
		entityCRUD: entityCRUD[domain.Payment]{repo: repo, kind: "payment"},
		payments:   repo,
	}
}

func (s *paymentService) ListPayments(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	return s.list(ctx, actor)
}

func (s *paymentService) GetPaymentByID(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	return s.get(ctx, actor, paymentID)
}

func (s *paymentService) CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	record := map[string]any{
		"reference":      req.Reference,
		"payee_email":    req.PayeeEmail,
		"payee_name":     req.PayeeName,
		"amount":         req.Amount,
		"currency":       req.Currency,
		"description":    req.Description,
		"invoice_number": req.InvoiceNumber,
		"due_date":       req.DueDate,
		"status":         domain.PaymentStatusPending,
	}
	if req.Attachments != nil {
		record["attachments"] = req.Attachments
	}
	payment, err := s.create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment request created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("reference", payment.Reference),
		slog.String("amount", payment.Amount.String()))
	return payment, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	record := map[string]any{}
	setIf(record, "reference", req.Reference)
	setIf(record, "payee_email", req.PayeeEmail)
	setIf(record, "payee_name", req.PayeeName)
	setIf(record, "amount", req.Amount)
	setIf(record, "currency", req.Currency)
	setIf(record, "description", req.Description)
	setIf(record, "invoice_number", req.InvoiceNumber)
	setIf(record, "due_date", req.DueDate)
	setIf(record, "attachments", req.Attachments)
	return s.update(ctx, actor, paymentID, record)
}

func (s *paymentService) DeletePayment(ctx context.Context, actor domain.Actor, paymentID string) error {
	return s.softDelete(ctx, actor, paymentID)
}

func (s *paymentService) RestorePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	return s.restore(ctx, actor, paymentID)
}

func (s *paymentService) PurgePayment(ctx context.Context, actor domain.Actor, paymentID string) error {
	return s.purge(ctx, actor, paymentID)
}

func (s *paymentService) ApprovePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	if err := s.RequirePrivileged(ctx, actor, "approve payment"); err != nil {
		return nil, err
	}
	if _, err := s.requireLivePayment(ctx, paymentID); err != nil {
		return nil, err
	}
	payment, err := s.payments.Approve(ctx, paymentID, actor.Email)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment approved",
		slog.String("payment_id", paymentID),
		slog.String("approver", actor.Email))
	return payment, nil
}

func (s *paymentService) RejectPayment(ctx context.Context, actor domain.Actor, paymentID string, reason string) (*domain.Payment, error) {
	if err := s.RequirePrivileged(ctx, actor, "reject payment"); err != nil {
		return nil, err
	}
	if _, err := s.requireLivePayment(ctx, paymentID); err != nil {
		return nil, err
	}
	payment, err := s.payments.Reject(ctx, paymentID, actor.Email, reason)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment rejected",
		slog.String("payment_id", paymentID),
		slog.String("approver", actor.Email))
	return payment, nil
}

func (s *paymentService) MarkPaymentPaid(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	if err := s.RequirePrivileged(ctx, actor, "mark payment paid"); err != nil {
		return nil, err
	}
	if _, err := s.requireLivePayment(ctx, paymentID); err != nil {
		return nil, err
	}
	payment, err := s.payments.MarkAsPaid(ctx, paymentID, actor.Email)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment marked paid",
		slog.String("payment_id", paymentID),
		slog.String("payer", actor.Email))
	return payment, nil
}

// requireLivePayment guards the workflow wrappers against acting on
// missing or soft-deleted payments. No transition table is checked; the
// timestamps tell the story.
func (s *paymentService) requireLivePayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.Deleted() {
		return nil, notFound("payment", paymentID)
	}
	return payment, nil
}
