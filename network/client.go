// Package network provides the shared HTTP client used for metadata requests.
package network

import (
	"net/http"
	"time"

	"github.com/cinebox-cli/cinebox/constant"
)

// Client is shared by every API call. Per-request deadlines come from the caller's context.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: &userAgentTransport{next: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 20 * time.Second
	return t
}

// userAgentTransport stamps requests that carry no User-Agent of their own.
type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return t.next.RoundTrip(req)
}
