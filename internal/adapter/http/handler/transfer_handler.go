package handler

import (
	"time"

	"payment-lifecycle-service/internal/adapter/http/dto"
	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"
	"payment-lifecycle-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles transfer endpoints.
type TransferHandler struct {
	processor ports.TransferProcessor
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(processor ports.TransferProcessor) *TransferHandler {
	return &TransferHandler{processor: processor}
}

// Create handles POST /api/v1/transfers.
func (h *TransferHandler) Create(c *gin.Context) {
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		response.Error(c, apperror.Validation("invalid start_time, expected RFC3339"))
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		response.Error(c, apperror.Validation("invalid end_time, expected RFC3339"))
		return
	}

	transfer, err := h.processor.CreateTransfer(c.Request.Context(), ports.CreateTransferRequest{
		PayoutAccountID:  req.PayoutAccountID,
		TransferType:     domain.TransferType(req.TransferType),
		StartTime:        startTime,
		EndTime:          endTime,
		TargetID:         req.TargetID,
		TargetType:       req.TargetType,
		TargetBusinessID: req.TargetBusinessID,
		PayoutCountries:  req.PayoutCountries,
		Currency:         req.Currency,
		CreatedByID:      req.CreatedByID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromTransfer(transfer))
}

// Submit handles POST /api/v1/transfers/:id/submit.
func (h *TransferHandler) Submit(c *gin.Context) {
	transferID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid transfer id"))
		return
	}

	var req dto.SubmitTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	record, err := h.processor.SubmitTransfer(c.Request.Context(), ports.SubmitTransferRequest{
		TransferID:          transferID,
		Retry:               req.Retry,
		SubmittedBy:         req.SubmittedBy,
		StatementDescriptor: req.StatementDescriptor,
		TargetType:          req.TargetType,
		TargetID:            req.TargetID,
		Method:              req.Method,
		PayoutMethodID:      req.PayoutMethodID,
		StripeAccountID:     req.StripeAccountID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromPayoutRequest(record))
}
