// Package testkit provides test doubles for the outbound HTTP layer.
//
// The storefront talks to a single remote API, so most service and
// controller tests only need to stub that API's responses. MockTransport
// implements http.RoundTripper and matches outgoing requests by method
// and URL prefix:
//
//	mt := testkit.NewMockTransport(t)
//	mt.Stub("GET", "/api/products", 200, `{"data":[...]}`)
//	defer mt.Install()()
//	// ... exercise code that calls the remote API ...
//	mt.AssertAllCalled()
package testkit

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	apphttp "github.com/electro05/storefront/pkg/http"
)

// ─── MockTransport ────────────────────────────────────────────────────────────

// MockTransport intercepts outgoing HTTP requests and returns synthetic
// responses instead of making real network calls.
type MockTransport struct {
	t     *testing.T
	mu    sync.Mutex
	stubs []*stub
	// Calls records every intercepted request in order, with the body
	// already read so assertions can inspect it after the fact.
	Calls []RecordedCall
}

type stub struct {
	method    string
	urlPrefix string
	status    int
	body      string
	header    http.Header
	callCount int
}

// RecordedCall is one intercepted outgoing request.
type RecordedCall struct {
	Method string
	URL    string
	Body   string
	Header http.Header
}

// NewMockTransport creates an empty transport bound to t.
func NewMockTransport(t *testing.T) *MockTransport {
	t.Helper()
	return &MockTransport{t: t}
}

// Stub registers a synthetic response for requests whose method matches
// and whose URL contains urlPrefix. Stubs are matched in registration
// order; the first match wins. An empty method matches any method.
func (mt *MockTransport) Stub(method, urlPrefix string, status int, body string) *MockTransport {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, &stub{
		method:    strings.ToUpper(method),
		urlPrefix: urlPrefix,
		status:    status,
		body:      body,
	})
	return mt
}

// StubHeader adds a response header to the most recently registered stub.
func (mt *MockTransport) StubHeader(key, value string) *MockTransport {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if len(mt.stubs) == 0 {
		mt.t.Fatal("testkit: StubHeader called before Stub")
	}
	s := mt.stubs[len(mt.stubs)-1]
	if s.header == nil {
		s.header = make(http.Header)
	}
	s.header.Set(key, value)
	return mt
}

// Install routes the shared outbound client through this transport and
// returns a restore function for deferred cleanup.
func (mt *MockTransport) Install() func() {
	apphttp.SetTransport(mt)
	return apphttp.ResetTransport
}

// RoundTrip implements http.RoundTripper.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var reqBody string
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		req.Body.Close()
		reqBody = string(b)
	}
	mt.Calls = append(mt.Calls, RecordedCall{
		Method: req.Method,
		URL:    req.URL.String(),
		Body:   reqBody,
		Header: req.Header.Clone(),
	})

	for _, s := range mt.stubs {
		if s.method != "" && s.method != req.Method {
			continue
		}
		if !strings.Contains(req.URL.String(), s.urlPrefix) {
			continue
		}
		s.callCount++
		return buildResponse(req, s), nil
	}

	return nil, fmt.Errorf("testkit: unexpected outgoing %s %s — no matching stub", req.Method, req.URL)
}

// AssertAllCalled fails the test if any registered stub was never hit.
func (mt *MockTransport) AssertAllCalled() {
	mt.t.Helper()
	mt.mu.Lock()
	defer mt.mu.Unlock()
	for _, s := range mt.stubs {
		if s.callCount == 0 {
			mt.t.Errorf("testkit: stub %s %q was never called", s.method, s.urlPrefix)
		}
	}
}

// CallCount returns how many intercepted requests contained urlPrefix.
func (mt *MockTransport) CallCount(urlPrefix string) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	n := 0
	for _, c := range mt.Calls {
		if strings.Contains(c.URL, urlPrefix) {
			n++
		}
	}
	return n
}

// LastCall returns the most recent intercepted request, or nil.
func (mt *MockTransport) LastCall() *RecordedCall {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if len(mt.Calls) == 0 {
		return nil
	}
	c := mt.Calls[len(mt.Calls)-1]
	return &c
}

func buildResponse(req *http.Request, s *stub) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	for k, vs := range s.header {
		for _, v := range vs {
			header.Set(k, v)
		}
	}
	code := s.status
	if code == 0 {
		code = http.StatusOK
	}
	return &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader([]byte(s.body))),
		Request:    req,
	}
}
