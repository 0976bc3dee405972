package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// Dispatcher sends a payload and returns immediately. There is no completion
// handle: the outcome of the send is never reported to the caller.
type Dispatcher interface {
	Dispatch(path, contentType string, body []byte)
}

// HTTPDispatcher POSTs payloads to paths under BaseURL on a background goroutine.
type HTTPDispatcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPDispatcher returns a dispatcher rooted at baseURL. A zero timeout
// leaves requests unbounded.
func NewHTTPDispatcher(baseURL string, timeout time.Duration) *HTTPDispatcher {
	return &HTTPDispatcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// WithClient swaps the underlying http.Client.
func (d *HTTPDispatcher) WithClient(c *http.Client) *HTTPDispatcher {
	d.client = c
	return d
}

// URL resolves path against the base URL.
func (d *HTTPDispatcher) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return d.baseURL + path
}

func (d *HTTPDispatcher) Dispatch(path, contentType string, body []byte) {
	payload := append([]byte(nil), body...)
	target := d.URL(path)
	go d.send(target, contentType, payload)
}

func (d *HTTPDispatcher) send(target, contentType string, body []byte) {
	// Detached from any request context; the send outlives the caller.
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := d.client.Do(req)
	if err != nil {
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
