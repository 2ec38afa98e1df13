package sharepoint

import (
	"context"
	"time"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	"github.com/nimbusworks/intranet_portal_app/internal/utils/mapping"
)

// PaymentRepository manages the payments list and its approval workflow
// wrappers. The wrappers are thin updates; they set their fixed field
// combination unconditionally and never validate the prior state.
type PaymentRepository struct {
	*listRepository[domain.Payment]
}

var _ portsrepo.PaymentRepository = (*PaymentRepository)(nil)

// NewPaymentRepository builds the repository; no I/O happens here.
func NewPaymentRepository(store listStore, listName string) *PaymentRepository {
	return &PaymentRepository{
		listRepository: newListRepository(
			store,
			listName,
			mapping.PaymentDict,
			mapping.DecodePayment,
			[]string{"reference"},
			map[string]any{"status": string(domain.PaymentStatusDraft)},
		),
	}
}

// Approve stamps the approver and moves the payment to Approved.
func (r *PaymentRepository) Approve(ctx context.Context, id string, approver string) (*domain.Payment, error) {
	return r.Update(ctx, id, map[string]any{
		"status":      string(domain.PaymentStatusApproved),
		"approved_by": approver,
		"approved_at": time.Now().UTC(),
	})
}

// Reject stamps the rejecting actor and reason and moves the payment to
// Rejected.
func (r *PaymentRepository) Reject(ctx context.Context, id string, approver string, reason string) (*domain.Payment, error) {
	return r.Update(ctx, id, map[string]any{
		"status":           string(domain.PaymentStatusRejected),
		"rejected_by":      approver,
		"rejected_at":      time.Now().UTC(),
		"rejection_reason": reason,
	})
}

// MarkAsPaid records the disbursement actor and timestamp.
func (r *PaymentRepository) MarkAsPaid(ctx context.Context, id string, payer string) (*domain.Payment, error) {
	return r.Update(ctx, id, map[string]any{
		"status":  string(domain.PaymentStatusPaid),
		"paid_by": payer,
		"paid_at": time.Now().UTC(),
	})
}
