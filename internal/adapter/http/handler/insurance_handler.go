package handler

import (
	"context"

	"insurance-gateway/internal/adapter/http/dto"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// InsuranceHandler handles the insurance registry and policy engine endpoints.
type InsuranceHandler struct {
	registryHandler[ports.PolicyEngine]
}

// NewInsuranceHandler creates a new InsuranceHandler.
func NewInsuranceHandler(registry ports.PolicyRegistry) *InsuranceHandler {
	return &InsuranceHandler{registryHandler[ports.PolicyEngine]{registry: registry}}
}

// SetCollateralValue handles POST /api/v1/insurance/:ref/collateral.
func (h *InsuranceHandler) SetCollateralValue(c *gin.Context) {
	var req dto.CollateralValueRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, func(ctx context.Context, eng ports.PolicyEngine, caller common.Address) (common.Address, error) {
		return caller, eng.SetCollateralValue(ctx, caller, req.Amount)
	})
}

// SetCollateralStatus handles PUT /api/v1/insurance/:ref/collateral/status.
func (h *InsuranceHandler) SetCollateralStatus(c *gin.Context) {
	var req dto.CollateralStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, func(ctx context.Context, eng ports.PolicyEngine, caller common.Address) (common.Address, error) {
		return caller, eng.SetCollateralStatus(ctx, caller, *req.Dropped)
	})
}

// ApproveCollateral handles POST /api/v1/insurance/:ref/collateral/approve. Verifier only.
func (h *InsuranceHandler) ApproveCollateral(c *gin.Context) {
	var req dto.TargetRequest
	if !bindJSON(c, &req) {
		return
	}
	target := common.HexToAddress(req.Target)
	h.mutate(c, func(ctx context.Context, eng ports.PolicyEngine, caller common.Address) (common.Address, error) {
		return target, eng.ApproveCollateral(ctx, caller, target)
	})
}

// PayPremiumCategoryA handles POST /api/v1/insurance/:ref/premiums/category-a.
func (h *InsuranceHandler) PayPremiumCategoryA(c *gin.Context) {
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, func(ctx context.Context, eng ports.PolicyEngine, caller common.Address) (common.Address, error) {
		return caller, eng.PayPremiumCategoryA(ctx, caller, req.Value)
	})
}

// PayPremiumCategoryB handles POST /api/v1/insurance/:ref/premiums/category-b.
func (h *InsuranceHandler) PayPremiumCategoryB(c *gin.Context) {
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, func(ctx context.Context, eng ports.PolicyEngine, caller common.Address) (common.Address, error) {
		return caller, eng.PayPremiumCategoryB(ctx, caller, req.Value)
	})
}

// Users handles GET /api/v1/insurance/:ref/users/:address.
func (h *InsuranceHandler) Users(c *gin.Context) {
	eng, ok := h.resolve(c)
	if !ok {
		return
	}
	address, ok := parseAddressParam(c, "address")
	if !ok {
		return
	}
	h.render(c, eng, address)
}

// mutate runs op against the resolved engine and renders the record of the affected address.
func (h *InsuranceHandler) mutate(c *gin.Context, op func(ctx context.Context, eng ports.PolicyEngine, caller common.Address) (common.Address, error)) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	eng, ok := h.resolve(c)
	if !ok {
		return
	}

	affected, err := op(c.Request.Context(), eng, caller)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.render(c, eng, affected)
}

func (h *InsuranceHandler) render(c *gin.Context, eng ports.PolicyEngine, address common.Address) {
	record, err := eng.Users(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPolicyRecordResponse(eng.Ref(), address, record))
}
