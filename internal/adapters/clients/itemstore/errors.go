// Package itemstore is the outbound adapter for the remote item store's REST
// API. It translates between the store's wire format and the item model, and
// maps HTTP failures to domain errors so the saga layer never sees transport
// details.
package itemstore

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail is an RFC 7807 body returned by the item store.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an item store error response to a domain error.
// 400/422 bodies with field errors become a *domain.ValidationError keyed by
// field id.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError strips the "item." and "body." prefixes the store puts on
// field locations.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		field = strings.TrimPrefix(field, "item.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
