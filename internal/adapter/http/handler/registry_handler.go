package handler

import (
	"insurance-gateway/internal/adapter/http/dto"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// boundEngine is what every registry entry exposes regardless of kind.
type boundEngine interface {
	Ref() common.Address
	VerifierCompany() common.Address
}

// registryHandler serves the registry endpoints shared by insurance and wallet instances.
type registryHandler[T boundEngine] struct {
	registry ports.InstanceRegistry[T]
}

// Create handles POST /{kind}: deploys an instance owned by the caller.
func (h *registryHandler[T]) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	instance, err := h.registry.Create(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewInstanceResponse(instance))
}

// List handles GET /{kind}: every instance in creation order.
func (h *registryHandler[T]) List(c *gin.Context) {
	instances, err := h.registry.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.InstanceResponse, len(instances))
	for i := range instances {
		items[i] = dto.NewInstanceResponse(&instances[i])
	}
	response.OK(c, dto.InstanceListResponse{Items: items, Total: len(items)})
}

// GetByOwner handles GET /{kind}/owners/:owner. Owners without an instance report exists=false.
func (h *registryHandler[T]) GetByOwner(c *gin.Context) {
	owner, ok := parseAddressParam(c, "owner")
	if !ok {
		return
	}

	instance, err := h.registry.GetByOwner(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.OwnerLookupResponse{Owner: owner.Hex()}
	if instance != nil {
		r := dto.NewInstanceResponse(instance)
		resp.Exists = true
		resp.Instance = &r
	}
	response.OK(c, resp)
}

// Verifier handles GET /{kind}/:ref/verifier.
func (h *registryHandler[T]) Verifier(c *gin.Context) {
	eng, ok := h.resolve(c)
	if !ok {
		return
	}
	response.OK(c, dto.VerifierResponse{
		Instance:        eng.Ref().Hex(),
		VerifierCompany: eng.VerifierCompany().Hex(),
	})
}

// resolve looks up the engine named by the :ref parameter.
func (h *registryHandler[T]) resolve(c *gin.Context) (T, bool) {
	var zero T
	ref, ok := parseAddressParam(c, "ref")
	if !ok {
		return zero, false
	}
	eng, err := h.registry.Resolve(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return zero, false
	}
	return eng, true
}
