package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
// Codes carry a module prefix (COMMON, DRG, FOOD, AI, SRC) so that logging
// and metrics layers can attribute failures without inspecting messages.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeTimeout            ErrorCode = "COMMON_004"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_005"
	ErrCodeValidation         ErrorCode = "COMMON_006"
	ErrCodeSerialization      ErrorCode = "COMMON_007"
	ErrCodeCacheError         ErrorCode = "COMMON_008"
)

// Drug module error codes
const (
	ErrCodeDrugNotFound      ErrorCode = "DRG_001"
	ErrCodeDrugInvalidSMILES ErrorCode = "DRG_002"
	ErrCodeDescriptorFailed  ErrorCode = "DRG_003"
	ErrCodeFingerprintFailed ErrorCode = "DRG_004"
)

// Food module error codes
const (
	ErrCodeFoodNotFound      ErrorCode = "FOOD_001"
	ErrCodeNutrientParseFail ErrorCode = "FOOD_002"
)

// Scoring / model error codes
const (
	ErrCodeModelUnavailable   ErrorCode = "AI_001"
	ErrCodeInferenceFailed    ErrorCode = "AI_002"
	ErrCodeBundleIncomplete   ErrorCode = "AI_003"
	ErrCodeLabelDecodeFailed  ErrorCode = "AI_004"
	ErrCodeArtifactLoadFailed ErrorCode = "AI_005"
)

// Upstream data-source error codes
const (
	ErrCodeSourceUnavailable ErrorCode = "SRC_001"
	ErrCodeSourceRateLimited ErrorCode = "SRC_002"
	ErrCodeSourceTimeout     ErrorCode = "SRC_003"
	ErrCodeSourceParseError  ErrorCode = "SRC_004"
)

// Aliases used at call sites for readability.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,

	ErrCodeDrugNotFound:      http.StatusNotFound,
	ErrCodeDrugInvalidSMILES: http.StatusBadRequest,
	ErrCodeDescriptorFailed:  http.StatusInternalServerError,
	ErrCodeFingerprintFailed: http.StatusInternalServerError,

	ErrCodeFoodNotFound:      http.StatusNotFound,
	ErrCodeNutrientParseFail: http.StatusBadGateway,

	ErrCodeModelUnavailable:   http.StatusServiceUnavailable,
	ErrCodeInferenceFailed:    http.StatusInternalServerError,
	ErrCodeBundleIncomplete:   http.StatusServiceUnavailable,
	ErrCodeLabelDecodeFailed:  http.StatusInternalServerError,
	ErrCodeArtifactLoadFailed: http.StatusInternalServerError,

	ErrCodeSourceUnavailable: http.StatusServiceUnavailable,
	ErrCodeSourceRateLimited: http.StatusTooManyRequests,
	ErrCodeSourceTimeout:     http.StatusGatewayTimeout,
	ErrCodeSourceParseError:  http.StatusBadGateway,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeTimeout:            "request timeout",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",

	ErrCodeDrugNotFound:      "drug not found",
	ErrCodeDrugInvalidSMILES: "invalid SMILES format",
	ErrCodeDescriptorFailed:  "descriptor computation failed",
	ErrCodeFingerprintFailed: "failed to generate fingerprint",

	ErrCodeFoodNotFound:      "food not found",
	ErrCodeNutrientParseFail: "failed to parse nutrient record",

	ErrCodeModelUnavailable:   "interaction model not available",
	ErrCodeInferenceFailed:    "model inference failed",
	ErrCodeBundleIncomplete:   "classifier bundle incomplete",
	ErrCodeLabelDecodeFailed:  "label decoding failed",
	ErrCodeArtifactLoadFailed: "failed to load model artifact",

	ErrCodeSourceUnavailable: "data source unavailable",
	ErrCodeSourceRateLimited: "data source rate limited",
	ErrCodeSourceTimeout:     "data source timeout",
	ErrCodeSourceParseError:  "failed to parse data source response",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
