package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// paymentHandler handles HTTP requests for payment requests.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.createPayment)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
		payments.POST("/:id/restore", h.restorePayment)
		payments.DELETE("/:id/purge", h.purgePayment)
		payments.POST("/:id/approve", h.approvePayment)
		payments.POST("/:id/reject", h.rejectPayment)
		payments.POST("/:id/pay", h.markPaymentPaid)
	}
}

// listPayments godoc
// @Summary List payment requests
// @Tags payments
// @Produce json
// @Success 200 {object} dto.PaymentListResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payments, err := h.paymentService.ListPayments(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, dto.PaymentListResponse{Payments: payments})
}

// getPayment godoc
// @Summary Get a payment request by id
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// createPayment godoc
// @Summary Raise a payment request
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.paymentService.CreatePayment(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "create payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// updatePayment godoc
// @Summary Update a payment request
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} domain.Payment
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "update payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// deletePayment godoc
// @Summary Soft-delete a payment request
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.paymentService.DeletePayment(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}

// restorePayment godoc
// @Summary Restore a soft-deleted payment request
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Security BearerAuth
// @Router /payments/{id}/restore [post]
func (h *paymentHandler) restorePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.RestorePayment(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "restore payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// purgePayment godoc
// @Summary Permanently delete a payment request
// @Description Irreversibly removes the payment. Admin only.
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 204 "Purged"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /payments/{id}/purge [delete]
func (h *paymentHandler) purgePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.paymentService.PurgePayment(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "purge payment")
		return
	}
	c.Status(http.StatusNoContent)
}

// approvePayment godoc
// @Summary Approve a payment request
// @Description Stamps the caller as approver. Admin or manager only.
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 403 {object} map[string]string "Privileged role required"
// @Security BearerAuth
// @Router /payments/{id}/approve [post]
func (h *paymentHandler) approvePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.ApprovePayment(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "approve payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// rejectPayment godoc
// @Summary Reject a payment request
// @Description Stamps the caller as rejector with a reason. Admin or manager only.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param rejection body dto.RejectPaymentRequest true "Rejection reason"
// @Success 200 {object} domain.Payment
// @Failure 403 {object} map[string]string "Privileged role required"
// @Security BearerAuth
// @Router /payments/{id}/reject [post]
func (h *paymentHandler) rejectPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RejectPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.paymentService.RejectPayment(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		respondServiceError(c, err, "reject payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// markPaymentPaid godoc
// @Summary Mark a payment request as paid
// @Description Records disbursement by the caller. Admin or manager only.
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.Payment
// @Failure 403 {object} map[string]string "Privileged role required"
// @Security BearerAuth
// @Router /payments/{id}/pay [post]
func (h *paymentHandler) markPaymentPaid(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.MarkPaymentPaid(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "mark payment paid")
		return
	}
	c.JSON(http.StatusOK, payment)
}
