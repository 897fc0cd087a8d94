package handler

import (
	"context"

	"insurance-gateway/internal/adapter/http/dto"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles the wallet registry and wallet engine endpoints.
type WalletHandler struct {
	registryHandler[ports.WalletEngine]
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(registry ports.WalletRegistry) *WalletHandler {
	return &WalletHandler{registryHandler[ports.WalletEngine]{registry: registry}}
}

// SelectPackage handles POST /api/v1/wallets/:ref/package.
func (h *WalletHandler) SelectPackage(c *gin.Context) {
	var req dto.SelectPackageRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutateUser(c, func(ctx context.Context, eng ports.WalletEngine, caller common.Address) error {
		return eng.SelectPackage(ctx, caller, *req.Package, req.Value)
	})
}

// PayPremium handles POST /api/v1/wallets/:ref/premiums.
func (h *WalletHandler) PayPremium(c *gin.Context) {
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutateUser(c, func(ctx context.Context, eng ports.WalletEngine, caller common.Address) error {
		return eng.PayPremiumToVerifier(ctx, caller, req.Value)
	})
}

// CancelInsurance handles POST /api/v1/wallets/:ref/cancel.
func (h *WalletHandler) CancelInsurance(c *gin.Context) {
	h.mutateUser(c, func(ctx context.Context, eng ports.WalletEngine, caller common.Address) error {
		return eng.CancelInsurance(ctx, caller)
	})
}

// SubmitClaim handles POST /api/v1/wallets/:ref/claims.
func (h *WalletHandler) SubmitClaim(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	eng, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := eng.SubmitClaim(c.Request.Context(), caller); err != nil {
		response.Error(c, err)
		return
	}
	h.renderClaim(c, eng, caller)
}

// ApproveClaim handles POST /api/v1/wallets/:ref/claims/:target/approve. Verifier only.
func (h *WalletHandler) ApproveClaim(c *gin.Context) {
	h.decide(c, ports.WalletEngine.ApproveClaim)
}

// RejectClaim handles POST /api/v1/wallets/:ref/claims/:target/reject. Verifier only.
func (h *WalletHandler) RejectClaim(c *gin.Context) {
	h.decide(c, ports.WalletEngine.RejectClaim)
}

// Users handles GET /api/v1/wallets/:ref/users/:address.
func (h *WalletHandler) Users(c *gin.Context) {
	eng, ok := h.resolve(c)
	if !ok {
		return
	}
	address, ok := parseAddressParam(c, "address")
	if !ok {
		return
	}
	h.renderUser(c, eng, address)
}

// Claims handles GET /api/v1/wallets/:ref/claims/:address.
func (h *WalletHandler) Claims(c *gin.Context) {
	eng, ok := h.resolve(c)
	if !ok {
		return
	}
	address, ok := parseAddressParam(c, "address")
	if !ok {
		return
	}
	h.renderClaim(c, eng, address)
}

type decision func(eng ports.WalletEngine, ctx context.Context, caller, target common.Address) error

func (h *WalletHandler) decide(c *gin.Context, decideFn decision) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	eng, ok := h.resolve(c)
	if !ok {
		return
	}
	target, ok := parseAddressParam(c, "target")
	if !ok {
		return
	}
	if err := decideFn(eng, c.Request.Context(), caller, target); err != nil {
		response.Error(c, err)
		return
	}
	h.renderClaim(c, eng, target)
}

// mutateUser runs op for the caller and renders the caller's updated record.
func (h *WalletHandler) mutateUser(c *gin.Context, op func(ctx context.Context, eng ports.WalletEngine, caller common.Address) error) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	eng, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), eng, caller); err != nil {
		response.Error(c, err)
		return
	}
	h.renderUser(c, eng, caller)
}

func (h *WalletHandler) renderUser(c *gin.Context, eng ports.WalletEngine, address common.Address) {
	record, err := eng.Users(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletUserResponse(eng.Ref(), address, record))
}

func (h *WalletHandler) renderClaim(c *gin.Context, eng ports.WalletEngine, address common.Address) {
	status, err := eng.Claims(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ClaimResponse{
		Instance: eng.Ref().Hex(),
		Address:  address.Hex(),
		Status:   status.String(),
	})
}
