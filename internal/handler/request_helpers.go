package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/reverseludo/admin-api/internal/logger"
)

// maxMultipartMemory bounds how much of an upload is buffered in memory
// before spilling to temp files.
const maxMultipartMemory = 32 << 20 // 32MB

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// returns appropriate errors. If this function returns an error, the HTTP
// response has already been written and the handler should return.
//
// Example usage:
//
//	var req SendGiftRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Send gift"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves and validates a required query parameter from the
// request. If ok is false, the HTTP response has already been written and
// the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the
// request, falling back to defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetInt64QueryParam retrieves a required numeric query parameter. If ok is
// false, the HTTP response has already been written.
func GetInt64QueryParam(r *http.Request, w http.ResponseWriter, paramName string) (int64, bool) {
	raw, ok := GetQueryParam(r, w, paramName)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid numeric query parameter",
			"param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIDParam)
		return 0, false
	}
	return value, true
}

// parseMultipart parses a multipart form request. On failure the error
// response has already been written.
func parseMultipart(r *http.Request, w http.ResponseWriter, actionName string) bool {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.FromContext(r.Context()).Warn(
			fmt.Sprintf("Failed to parse %s multipart form", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMultipart)
		return false
	}
	return true
}
