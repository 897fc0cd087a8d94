package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreateInstance    AuditAction = "CREATE_INSTANCE"
	AuditActionSetCollateral     AuditAction = "SET_COLLATERAL"
	AuditActionCollateralStatus  AuditAction = "COLLATERAL_STATUS"
	AuditActionApproveCollateral AuditAction = "APPROVE_COLLATERAL"
	AuditActionPayPremium        AuditAction = "PAY_PREMIUM"
	AuditActionSelectPackage     AuditAction = "SELECT_PACKAGE"
	AuditActionSubmitClaim       AuditAction = "SUBMIT_CLAIM"
	AuditActionDecideClaim       AuditAction = "DECIDE_CLAIM"
	AuditActionCancelInsurance   AuditAction = "CANCEL_INSURANCE"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Caller       string      `json:"caller,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
