package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-saga-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-saga-service/internal/domain"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/logging"
)

const (
	// maxIDLength bounds path ids; store-assigned ids are far shorter.
	maxIDLength = 128
	// maxJSONBodyBytes caps request bodies at 1 MiB.
	maxJSONBodyBytes = 1 << 20
)

func parseID(r *http.Request, param string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, param))
	switch {
	case id == "":
		return "", domain.NewValidationError(param, domain.MsgRequired)
	case len(id) > maxIDLength:
		return "", domain.NewValidationError(param, "is too long")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

// request is implemented by the request DTOs.
type request interface {
	Validate() error
}

// decodeAndValidate reads a single JSON object into dst and validates it.
// On failure it writes a 400 problem response and returns false.
func decodeAndValidate[T request](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := decodeBody(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeBody rejects unknown fields, oversized bodies, and trailing data,
// describing the problem without echoing the payload.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		if dec.More() {
			return domain.NewValidationError("body", "must contain a single JSON object")
		}
		return nil
	}

	var (
		syntaxErr  *json.SyntaxError
		typeErr    *json.UnmarshalTypeError
		maxErr     *http.MaxBytesError
		unknownMsg = "json: unknown field "
	)
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", domain.MsgMustNotEmpty)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("body", "invalid JSON")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.NewValidationError(typeErr.Field, fmt.Sprintf("must be %s", typeErr.Type))
	case errors.As(err, &maxErr):
		return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
	case strings.HasPrefix(err.Error(), unknownMsg):
		field := strings.Trim(strings.TrimPrefix(err.Error(), unknownMsg), `"`)
		return domain.NewValidationError(field, "is not a known field")
	default:
		return domain.NewValidationError("body", "invalid JSON")
	}
}
