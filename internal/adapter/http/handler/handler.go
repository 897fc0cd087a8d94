package handler

import (
	"insurance-gateway/internal/adapter/http/dto"
	"insurance-gateway/internal/adapter/http/middleware"
	"insurance-gateway/pkg/apperror"
	"insurance-gateway/pkg/response"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// callerFrom returns the authenticated caller or writes AUTH_001.
func callerFrom(c *gin.Context) (common.Address, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return common.Address{}, false
	}
	return caller, true
}

// parseAddressParam parses a path parameter holding an account address or writes VAL_004.
func parseAddressParam(c *gin.Context, name string) (common.Address, bool) {
	addr, ok := dto.ParseAccount(c.Param(name))
	if !ok {
		response.Error(c, apperror.ErrInvalidAddress(name))
		return common.Address{}, false
	}
	return addr, true
}

// bindJSON binds and sanitizes the request body or writes VAL_005.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}
