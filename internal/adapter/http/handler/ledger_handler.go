package handler

import (
	"insurance-gateway/internal/adapter/http/dto"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/apperror"
	"insurance-gateway/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// LedgerHandler serves read-only ledger queries.
type LedgerHandler struct {
	reportingSvc ports.ReportingService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(reportingSvc ports.ReportingService) *LedgerHandler {
	return &LedgerHandler{reportingSvc: reportingSvc}
}

// GetBalance handles GET /api/v1/accounts/:address/balance.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	account, ok := parseAddressParam(c, "address")
	if !ok {
		return
	}

	balance, err := h.reportingSvc.GetBalance(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Account: account.Hex(), Balance: balance.Dec()})
}

// ListTransfers handles GET /api/v1/transfers.
func (h *LedgerHandler) ListTransfers(c *gin.Context) {
	var q dto.TransferListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params := ports.TransferListParams{Page: q.Page, PageSize: q.PageSize}
	if q.Instance != "" {
		addr := common.HexToAddress(q.Instance)
		params.Instance = &addr
	}
	if q.To != "" {
		addr := common.HexToAddress(q.To)
		params.To = &addr
	}

	transfers, total, err := h.reportingSvc.ListTransfers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, pageSize := normalizePage(q.Page, q.PageSize)
	items := make([]dto.TransferResponse, len(transfers))
	for i := range transfers {
		items[i] = dto.NewTransferResponse(&transfers[i])
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	response.OK(c, dto.TransferListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// normalizePage mirrors the defaults the reporting service applies.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
