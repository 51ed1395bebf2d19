package handler

import (
	"payment-lifecycle-service/internal/adapter/http/dto"
	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"
	"payment-lifecycle-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartPaymentHandler handles cart payment endpoints.
type CartPaymentHandler struct {
	processor ports.CartPaymentProcessor
}

// NewCartPaymentHandler creates a new CartPaymentHandler.
func NewCartPaymentHandler(processor ports.CartPaymentProcessor) *CartPaymentHandler {
	return &CartPaymentHandler{processor: processor}
}

// Create handles POST /api/v1/cart_payments.
func (h *CartPaymentHandler) Create(c *gin.Context) {
	var req dto.CreateCartPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payerID, err := uuid.Parse(req.PayerID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid payer_id"))
		return
	}
	methodID, err := uuid.Parse(req.PaymentMethodID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment_method_id"))
		return
	}

	submitReq := ports.SubmitCartPaymentRequest{
		IdempotencyKey:  req.IdempotencyKey,
		PayerID:         payerID,
		Amount:          req.Amount,
		Country:         req.Country,
		Currency:        req.Currency,
		PaymentMethodID: methodID,
		CaptureMethod:   domain.CaptureMethod(req.CaptureMethod),
		CartMetadata: domain.CartMetadata{
			ReferenceID:   req.CartMetadata.ReferenceID,
			CtReferenceID: req.CartMetadata.CtReferenceID,
			Type:          domain.CartType(req.CartMetadata.Type),
		},
		ClientDescription:         req.ClientDescription,
		PayerStatementDescription: req.PayerStatementDescription,
	}
	if req.LegacyPayment != nil {
		submitReq.LegacyPayment = &domain.LegacyPayment{
			ConsumerID:       req.LegacyPayment.ConsumerID,
			ChargeID:         req.LegacyPayment.ChargeID,
			StripeCustomerID: req.LegacyPayment.StripeCustomerID,
		}
	}
	if req.SplitPayment != nil {
		submitReq.SplitPayment = &domain.SplitPayment{
			PayoutAccountID:      req.SplitPayment.PayoutAccountID,
			ApplicationFeeAmount: req.SplitPayment.ApplicationFeeAmount,
		}
	}

	payment, err := h.processor.SubmitPayment(c.Request.Context(), submitReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromCartPayment(payment))
}

// Adjust handles POST /api/v1/cart_payments/:id/adjust.
func (h *CartPaymentHandler) Adjust(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid cart payment id"))
		return
	}

	var req dto.AdjustCartPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payerID, err := uuid.Parse(req.PayerID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid payer_id"))
		return
	}

	updateReq := ports.UpdateCartPaymentRequest{
		IdempotencyKey:            req.IdempotencyKey,
		CartPaymentID:             paymentID,
		PayerID:                   payerID,
		Amount:                    req.Amount,
		ClientDescription:         req.ClientDescription,
		PayerStatementDescription: req.PayerStatementDescription,
	}
	if req.LegacyPayment != nil {
		updateReq.LegacyPayment = &domain.LegacyPayment{
			ConsumerID:       req.LegacyPayment.ConsumerID,
			ChargeID:         req.LegacyPayment.ChargeID,
			StripeCustomerID: req.LegacyPayment.StripeCustomerID,
		}
	}
	if req.CartMetadata != nil {
		updateReq.CartMetadata = &domain.CartMetadata{
			ReferenceID:   req.CartMetadata.ReferenceID,
			CtReferenceID: req.CartMetadata.CtReferenceID,
			Type:          domain.CartType(req.CartMetadata.Type),
		}
	}

	payment, err := h.processor.UpdatePayment(c.Request.Context(), updateReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromCartPayment(payment))
}
