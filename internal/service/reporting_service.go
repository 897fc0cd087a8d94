package service

import (
	"context"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// reportingService implements ports.ReportingService.
type reportingService struct {
	ledgerRepo ports.LedgerRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledgerRepo ports.LedgerRepository) ports.ReportingService {
	return &reportingService{ledgerRepo: ledgerRepo}
}

// GetBalance returns the credited balance of account. Unknown accounts hold 0.
func (s *reportingService) GetBalance(ctx context.Context, account common.Address) (*uint256.Int, error) {
	if domain.IsZeroAddress(account) {
		return nil, apperror.ErrInvalidAddress("account")
	}
	balance, err := s.ledgerRepo.Balance(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return balance, nil
}

// ListTransfers returns a paginated list of transfers, newest first.
func (s *reportingService) ListTransfers(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	transfers, total, err := s.ledgerRepo.ListTransfers(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return transfers, total, nil
}
