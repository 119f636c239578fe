package clients

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		w.Header().Set("X-Request-Id", "r1")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Authorization", "Bearer test-api-key")

	statusCode, respBody, respHeaders, err := client.Get(srv.URL, headers)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.JSONEq(t, `{"ok":true}`, string(respBody))
	assert.Equal(t, "r1", respHeaders.Get("X-Request-Id"))
}

func TestHTTPClientDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewHTTPClient()
	req, err := http.NewRequest(http.MethodPost, srv.URL, http.NoBody)
	assert.NoError(t, err)

	resp, err := client.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestNewSumUpClientDefaultTransport(t *testing.T) {
	client := NewSumUpClient("https://api.sumup.test", "test-api-key")

	_, ok := client.client.(*HTTPClient)
	assert.True(t, ok)
}
