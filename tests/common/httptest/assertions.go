//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"event-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx with a non-nil target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, status int, target any) {
	t.Helper()
	if !assert.Equalf(t, status, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || status < 200 || status >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope message contains msg.
// An empty msg only checks that the envelope decodes.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	assert.Equalf(t, status, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "undecodable error body: %s", w.Body.String()) {
		return
	}
	if msg != "" {
		assert.Contains(t, resp.Error.Message, msg)
	}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for k, v := range want {
		assert.Equalf(t, v, w.Header().Get(k), "header %s", k)
	}
}
