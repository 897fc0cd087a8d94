package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// Actions are looked up by the matched route template.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var caller string
		if addr, ok := CallerFrom(c); ok {
			caller = addr.Hex()
		}

		resourceID := c.Param("ref")
		detail := map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}
		if target := c.Param("target"); target != "" {
			detail["target"] = target
		}
		details, _ := json.Marshal(detail)

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Caller:       caller,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

type auditRoute struct {
	method, path string
}

var auditedRoutes = map[auditRoute]struct {
	action       domain.AuditAction
	resourceType string
}{
	{http.MethodPost, "/api/v1/insurance"}:                           {domain.AuditActionCreateInstance, "insurance"},
	{http.MethodPost, "/api/v1/insurance/:ref/collateral"}:           {domain.AuditActionSetCollateral, "insurance"},
	{http.MethodPut, "/api/v1/insurance/:ref/collateral/status"}:     {domain.AuditActionCollateralStatus, "insurance"},
	{http.MethodPost, "/api/v1/insurance/:ref/collateral/approve"}:   {domain.AuditActionApproveCollateral, "insurance"},
	{http.MethodPost, "/api/v1/insurance/:ref/premiums/category-a"}:  {domain.AuditActionPayPremium, "insurance"},
	{http.MethodPost, "/api/v1/insurance/:ref/premiums/category-b"}:  {domain.AuditActionPayPremium, "insurance"},
	{http.MethodPost, "/api/v1/wallets"}:                             {domain.AuditActionCreateInstance, "wallet"},
	{http.MethodPost, "/api/v1/wallets/:ref/package"}:                {domain.AuditActionSelectPackage, "wallet"},
	{http.MethodPost, "/api/v1/wallets/:ref/premiums"}:               {domain.AuditActionPayPremium, "wallet"},
	{http.MethodPost, "/api/v1/wallets/:ref/claims"}:                 {domain.AuditActionSubmitClaim, "wallet"},
	{http.MethodPost, "/api/v1/wallets/:ref/claims/:target/approve"}: {domain.AuditActionDecideClaim, "wallet"},
	{http.MethodPost, "/api/v1/wallets/:ref/claims/:target/reject"}:  {domain.AuditActionDecideClaim, "wallet"},
	{http.MethodPost, "/api/v1/wallets/:ref/cancel"}:                 {domain.AuditActionCancelInsurance, "wallet"},
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	route, ok := auditedRoutes[auditRoute{method, path}]
	if !ok {
		return "", ""
	}
	return route.action, route.resourceType
}
