package gateway

import (
	"net/http"
)

// authTransport attaches the bearer credential to every outgoing request
// and reports 401s through a single callback. Per-endpoint code never
// touches auth.
type authTransport struct {
	inner          http.RoundTripper
	token          string
	onUnauthorized func()
}

func newAuthTransport(inner http.RoundTripper, token string, onUnauthorized func()) *authTransport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &authTransport{
		inner:          inner,
		token:          token,
		onUnauthorized: onUnauthorized,
	}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the original request is not mutated.
	clone := req.Clone(req.Context())
	if t.token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.inner.RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}

	return resp, nil
}
