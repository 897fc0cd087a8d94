package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Stable error codes. Clients match on these, never on messages.
const (
	CodeDuplicateInstance   = "PRE_001"
	CodeAlreadyActive       = "PRE_002"
	CodeUserNotActive       = "PRE_003"
	CodeNoCollateralSet     = "PRE_004"
	CodeNoPendingClaim      = "PRE_005"
	CodeNotVerifier         = "PRE_006"
	CodeClaimAlreadyPending = "PRE_007"
	CodeClaimAlreadySettled = "PRE_008"
	CodeNotFound            = "PRE_009"

	CodeCollateralExceedsLimit = "VAL_001"
	CodeIncorrectPremium       = "VAL_002"
	CodeInvalidPackage         = "VAL_003"
	CodeInvalidAddress         = "VAL_004"
	CodeValidation             = "VAL_005"

	CodeIntervalNotElapsed = "TIME_001"

	CodeTransferFailed = "XFER_001"

	CodeInvalidToken = "AUTH_001"
	CodeNonceUsed    = "AUTH_002"

	CodeRateLimitExceeded = "RATE_001"

	CodeInternal = "SYS_001"
)

// Taxonomy families of error codes.
const (
	CategoryPrecondition = "PreconditionViolation"
	CategoryValue        = "ValueViolation"
	CategoryTiming       = "TimingViolation"
	CategoryTransfer     = "TransferFailure"
	CategoryAuth         = "AuthenticationFailure"
	CategoryRateLimit    = "RateLimited"
	CategorySystem       = "SystemFailure"
)

// Category maps an error code to its taxonomy family.
func Category(code string) string {
	prefix, _, _ := strings.Cut(code, "_")
	switch prefix {
	case "PRE":
		return CategoryPrecondition
	case "VAL":
		return CategoryValue
	case "TIME":
		return CategoryTiming
	case "XFER":
		return CategoryTransfer
	case "AUTH":
		return CategoryAuth
	case "RATE":
		return CategoryRateLimit
	default:
		return CategorySystem
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Preconditions (PRE) ----

func ErrDuplicateInstance() *AppError {
	return New(CodeDuplicateInstance, "Contract already exists for this address", http.StatusConflict)
}

func ErrAlreadyActive() *AppError {
	return New(CodeAlreadyActive, "User already has an active insurance package.", http.StatusConflict)
}

func ErrUserNotActive() *AppError {
	return New(CodeUserNotActive, "User does not have an active insurance package.", http.StatusConflict)
}

func ErrNoCollateralSet() *AppError {
	return New(CodeNoCollateralSet, "No collateral value set", http.StatusConflict)
}

func ErrNoPendingClaim() *AppError {
	return New(CodeNoPendingClaim, "No pending claim for this user.", http.StatusConflict)
}

func ErrNotVerifier() *AppError {
	return New(CodeNotVerifier, "Only the verifier company can perform this action.", http.StatusForbidden)
}

func ErrClaimAlreadyPending() *AppError {
	return New(CodeClaimAlreadyPending, "Claim is already pending.", http.StatusConflict)
}

func ErrClaimAlreadySettled() *AppError {
	return New(CodeClaimAlreadySettled, "Claim has already been approved.", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Values (VAL) ----

func ErrCollateralExceedsLimit() *AppError {
	return New(CodeCollateralExceedsLimit, "Collateral value exceeds the limit", http.StatusBadRequest)
}

func ErrIncorrectPremiumAmount() *AppError {
	return New(CodeIncorrectPremium, "Incorrect premium amount", http.StatusBadRequest)
}

func ErrInvalidPackage() *AppError {
	return New(CodeInvalidPackage, "Invalid insurance package.", http.StatusBadRequest)
}

func ErrInvalidAddress(field string) *AppError {
	return New(CodeInvalidAddress, fmt.Sprintf("Invalid %s address", field), http.StatusBadRequest)
}

// Validation returns a VAL_005 request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Timing (TIME) ----

func ErrIntervalNotElapsed() *AppError {
	return New(CodeIntervalNotElapsed, "Payment interval has not elapsed yet.", http.StatusTooEarly)
}

// ---- Transfers (XFER) ----

func ErrTransferFailed(err error) *AppError {
	return Wrap(CodeTransferFailed, "Transfer to verifier failed", http.StatusFailedDependency, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNonceUsed() *AppError {
	return New(CodeNonceUsed, "Nonce has already been used", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
