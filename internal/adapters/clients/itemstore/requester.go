package itemstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/task-saga-service/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle: JSON marshaling, bearer
// authentication, execution through httpclient.Client, status validation,
// error translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	token  string
	logger *slog.Logger
}

// NewRequester creates a Requester. An empty token sends no Authorization
// header.
func NewRequester(client *httpclient.Client, token string, logger *slog.Logger) *Requester {
	return &Requester{client: client, token: token, logger: logger}
}

// Do sends method to path relative to the client's base URL. reqBody is
// marshaled to JSON when non-nil; respBody is decoded from the response when
// non-nil. Any status other than wantStatus goes through TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	return r.execute(req, wantStatus, respBody)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status: both resp and err are set.
		// Translate the response so callers get a domain error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "item store request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		r.logger.WarnContext(ctx, "unexpected item store status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		dec := json.NewDecoder(resp.Body)
		dec.UseNumber()
		if err := dec.Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
