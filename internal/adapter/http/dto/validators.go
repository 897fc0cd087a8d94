package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]{1,128}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("eth_account", validateAccount)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return IsSafeID(fl.Field().String())
}

// validateAccount accepts a non-zero 20-byte hex address.
func validateAccount(fl validator.FieldLevel) bool {
	_, ok := ParseAccount(fl.Field().String())
	return ok
}

// IsSafeID reports whether s is a short token of alphanumerics, underscore, dash and dot.
func IsSafeID(s string) bool {
	return safeStringRe.MatchString(s)
}

// ParseAccount parses a hex address, rejecting malformed input and the zero address.
func ParseAccount(raw string) (common.Address, bool) {
	raw = strings.TrimSpace(raw)
	if !common.IsHexAddress(raw) {
		return common.Address{}, false
	}
	addr := common.HexToAddress(raw)
	if domain.IsZeroAddress(addr) {
		return common.Address{}, false
	}
	return addr, true
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
