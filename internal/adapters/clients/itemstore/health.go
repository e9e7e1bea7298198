package itemstore

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name the underlying
// [httpclient.Client] uses for tracing and metrics.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the item store's availability from the circuit breaker
// state. No network call is made.
//
// This reports downstream status, not service readiness: tying readiness to
// the store would keep the breaker from ever seeing the traffic it needs to
// recover.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
