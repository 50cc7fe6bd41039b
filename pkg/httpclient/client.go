package httpclient

import (
	"net/http"
	"time"
)

// DefaultTimeout matches the collection pipeline's default request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultHeaders is a realistic desktop-browser header profile. Member sites
// frequently reject requests carrying Go's default User-Agent.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"DNT":                       "1",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	}
}

// HTTPClient wraps an http.Client with a fixed header profile and timeout.
type HTTPClient struct {
	client  *http.Client
	headers map[string]string
}

// NewClient creates an HTTP client applying the given headers to every
// request. A nil header map falls back to DefaultHeaders. A zero timeout
// falls back to DefaultTimeout.
func NewClient(headers map[string]string, timeout time.Duration) *HTTPClient {
	if headers == nil {
		headers = DefaultHeaders()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Follow up to 10 redirects
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	return &HTTPClient{
		client:  client,
		headers: headers,
	}
}

// Do executes an HTTP request with the client's header profile applied.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	return c.client.Do(req)
}

// Get is a convenience method for GET requests.
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}
