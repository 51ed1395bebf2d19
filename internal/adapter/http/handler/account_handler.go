package handler

import (
	"strconv"
	"time"

	"payment-lifecycle-service/internal/adapter/http/dto"
	"payment-lifecycle-service/internal/core/domain"
	"payment-lifecycle-service/internal/core/ports"
	"payment-lifecycle-service/pkg/apperror"
	"payment-lifecycle-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles payment account edit history endpoints.
type AccountHandler struct {
	historySvc ports.AccountHistoryService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(historySvc ports.AccountHistoryService) *AccountHandler {
	return &AccountHandler{historySvc: historySvc}
}

// RecordBankUpdate handles POST /api/v1/payment_accounts/bank_updates.
func (h *AccountHandler) RecordBankUpdate(c *gin.Context) {
	var req dto.RecordBankUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	entry, err := h.historySvc.RecordBankUpdate(
		c.Request.Context(),
		req.PaymentAccountID,
		domain.BankUpdateOwnerType(req.OwnerType),
		req.Payload,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromBankUpdate(entry))
}

// GetMostRecentBankUpdate handles
// GET /api/v1/payment_accounts/:id/bank_updates/latest?within_hours=24.
func (h *AccountHandler) GetMostRecentBankUpdate(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || accountID <= 0 {
		response.Error(c, apperror.Validation("invalid payment account id"))
		return
	}

	var within *time.Duration
	if raw := c.Query("within_hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			response.Error(c, apperror.Validation("invalid within_hours"))
			return
		}
		d := time.Duration(hours) * time.Hour
		within = &d
	}

	entry, err := h.historySvc.GetMostRecentBankUpdate(c.Request.Context(), accountID, within)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entry == nil {
		response.Error(c, apperror.ErrNotFound("bank update"))
		return
	}

	response.OK(c, dto.FromBankUpdate(entry))
}

// ListBankUpdates handles
// GET /api/v1/payment_accounts/:id/bank_updates?start=...&end=...
func (h *AccountHandler) ListBankUpdates(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || accountID <= 0 {
		response.Error(c, apperror.Validation("invalid payment account id"))
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid start, expected RFC3339"))
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid end, expected RFC3339"))
		return
	}

	entries, err := h.historySvc.ListBankUpdates(c.Request.Context(), accountID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.BankUpdateListResponse{Total: len(entries)}
	for i := range entries {
		resp.Items = append(resp.Items, dto.FromBankUpdate(&entries[i]))
	}
	response.OK(c, resp)
}

// ListRecentlyUpdatedAccounts handles
// GET /api/v1/payment_accounts/bank_updates/recent?since=...
func (h *AccountHandler) ListRecentlyUpdatedAccounts(c *gin.Context) {
	since, err := time.Parse(time.RFC3339, c.Query("since"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid since, expected RFC3339"))
		return
	}

	ids, err := h.historySvc.ListRecentlyUpdatedAccountIDs(c.Request.Context(), since)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RecentlyUpdatedAccountsResponse{PaymentAccountIDs: ids})
}
