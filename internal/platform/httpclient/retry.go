package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/task-saga-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

type idempotentKey struct{}

// Idempotent marks requests sent with the returned context as safe to repeat
// even though their method is not. Use it for POST searches and for PATCHes
// that write absolute values.
func Idempotent(ctx context.Context) context.Context {
	return context.WithValue(ctx, idempotentKey{}, true)
}

// replayable reports whether req may be sent again after the server could
// have acted on it. GET, HEAD, OPTIONS, PUT, and DELETE are idempotent by
// definition.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	marked, _ := req.Context().Value(idempotentKey{}).(bool)
	return marked
}

// doWithRetry sends req up to maxAttempts times. A request that may have
// been processed is repeated only when replayable; a create that times out
// mid-flight is not resent, since a duplicate would be an item no unit of
// work knows to compensate. The result is written to resp; the caller closes
// its body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}
	canReplay := replayable(req)

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return err
			}
		}
		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !retryableError(err, canReplay) {
				return err
			}
			retryAfter = 0
			continue
		}

		if !retryableStatus(r.StatusCode, canReplay) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == c.retryCfg.maxAttempts-1 {
			*resp = r
			return lastErr
		}
		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), time.Now())
		drainResponseBody(r)
	}

	return lastErr
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody lets the connection be reused by the next attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry sleeps before attempt (1-indexed retry number). A Retry-After
// hint from the server replaces the computed backoff, capped at maxInterval.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)
	if retryAfter > 0 {
		delay = min(retryAfter, c.retryCfg.maxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying item store request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff is initialInterval * multiplier^(attempt-1), capped at maxInterval,
// with ±25% jitter.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = min(delay, float64(cfg.maxInterval))
	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(delay, 0))
}

// parseRetryAfter reads a Retry-After value in either delta-seconds or
// HTTP-date form. Unparseable or past values yield 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// retryableError reports whether a transport error warrants another attempt.
// Cancellation never does. A failed dial never reached the server, so it is
// retried regardless of method; anything else only when canReplay.
func retryableError(err error, canReplay bool) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return canReplay
}

// retryableStatus reports whether a status warrants another attempt. 429 and
// 503 mean the request was turned away unprocessed; other 5xx responses may
// follow a partial write and are retried only when canReplay.
func retryableStatus(code int, canReplay bool) bool {
	switch {
	case code == http.StatusTooManyRequests, code == http.StatusServiceUnavailable:
		return true
	case code >= http.StatusInternalServerError:
		return canReplay
	default:
		return false
	}
}
