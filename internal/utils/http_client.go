package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding keeps the full resty API on the
// wrapper while leaving room for vault-specific helpers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool
// and configuration. The adapter sets the base URL and timeout afterwards.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
