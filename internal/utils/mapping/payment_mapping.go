package mapping

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// PaymentDict maps payment request domain fields to list columns. The
// reference number doubles as the item title.
var PaymentDict = withCommon(
	FieldDef{Domain: "reference", External: "Title", Type: Text},
	FieldDef{Domain: "payee_email", External: "PayeeEmail", Type: Text},
	FieldDef{Domain: "payee_name", External: "PayeeName", Type: Text},
	FieldDef{Domain: "amount", External: "Amount", Type: Number},
	FieldDef{Domain: "currency", External: "Currency", Type: Text},
	FieldDef{Domain: "description", External: "Description", Type: Text},
	FieldDef{Domain: "invoice_number", External: "InvoiceNumber", Type: Text},
	FieldDef{Domain: "due_date", External: "DueDate", Type: Date},
	FieldDef{Domain: "status", External: "PaymentStatus", Type: Text},
	FieldDef{Domain: "approved_by", External: "ApprovedBy", Type: Text},
	FieldDef{Domain: "approved_at", External: "ApprovedAt", Type: Date},
	FieldDef{Domain: "rejected_by", External: "RejectedBy", Type: Text},
	FieldDef{Domain: "rejected_at", External: "RejectedAt", Type: Date},
	FieldDef{Domain: "rejection_reason", External: "RejectionReason", Type: Text},
	FieldDef{Domain: "paid_by", External: "PaidBy", Type: Text},
	FieldDef{Domain: "paid_at", External: "PaidAt", Type: Date},
	FieldDef{Domain: "attachments", External: "Attachments", Type: JSONBlob},
)

// DecodePayment projects a raw item field bag into a domain Payment.
func DecodePayment(id string, fields map[string]any) domain.Payment {
	vals := PaymentDict.FromExternal(fields)
	return domain.Payment{
		PaymentID:        id,
		Reference:        Str(vals, "reference"),
		PayeeEmail:       Str(vals, "payee_email"),
		PayeeName:        Str(vals, "payee_name"),
		Amount:           Dec(vals, "amount"),
		Currency:         Str(vals, "currency"),
		Description:      Str(vals, "description"),
		InvoiceNumber:    Str(vals, "invoice_number"),
		DueDate:          TimePtr(vals, "due_date"),
		Status:           domain.PaymentStatus(Str(vals, "status")),
		ApprovedBy:       Str(vals, "approved_by"),
		ApprovedAt:       TimePtr(vals, "approved_at"),
		RejectedBy:       Str(vals, "rejected_by"),
		RejectedAt:       TimePtr(vals, "rejected_at"),
		RejectionReason:  Str(vals, "rejection_reason"),
		PaidBy:           Str(vals, "paid_by"),
		PaidAt:           TimePtr(vals, "paid_at"),
		Attachments:      StrList(vals, "attachments"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}
