package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// internalDetail replaces the message of unmapped errors, which may carry
// store or transport internals.
const internalDetail = "the request could not be completed"

// statusRules is checked in order; the first matching target decides the
// status. Anything unmatched is a 500.
var statusRules = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// pathFields are validation field names that come from the URL rather than
// the body.
var pathFields = map[string]bool{"id": true}

// StatusFor returns the HTTP status err maps to.
func StatusFor(err error) int {
	for _, rule := range statusRules {
		if errors.Is(err, rule.target) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. Callers log
// the full error; the service layer does so for every failed usecase.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// fieldDetails orders details by location so responses are stable.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := "body."
		if pathFields[field] {
			loc = "path."
		}
		details = append(details, ErrorDetail{Location: loc + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
