package toncenter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

func newCapturingServer(t *testing.T, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Query = r.URL.Query()
		captured.Header = r.Header.Clone()
		captured.Body = body
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestNetworkBaseURL(t *testing.T) {
	assert.Equal(t, "https://toncenter.com/api/v2", NewClient(Mainnet).BaseURL())
	assert.Equal(t, "https://testnet.toncenter.com/api/v2", NewClient(Testnet).BaseURL())
}

func TestDispatchHeaderKey(t *testing.T) {
	server, got := newCapturingServer(t, `{"ok":true,"result":"1"}`)
	c := NewClientWithURL(server.URL+"/api/v2/", WithAPIKey(APIKey{Type: APIKeyHeader, Key: "secret"}))

	query := map[string]string{"address": "EQabc"}
	_, err := c.Dispatch(context.Background(), Request{Method: http.MethodGet, Endpoint: "getAddressBalance", Query: query})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/v2/getAddressBalance", got.Path)
	assert.Equal(t, "secret", got.Header.Get("x-api-key"))
	assert.Equal(t, "EQabc", got.Query.Get("address"))
	_, hasKey := got.Query["api_key"]
	assert.False(t, hasKey)
	assert.Equal(t, map[string]string{"address": "EQabc"}, query)
}

func TestDispatchQueryKey(t *testing.T) {
	server, got := newCapturingServer(t, `{"ok":true,"result":"1"}`)
	c := NewClientWithURL(server.URL, WithAPIKey(APIKey{Type: APIKeyQuery, Key: "secret"}))

	query := map[string]string{"address": "EQabc"}
	_, err := c.Dispatch(context.Background(), Request{Method: http.MethodGet, Endpoint: "/getAddressBalance", Query: query})
	require.NoError(t, err)

	assert.Equal(t, "/getAddressBalance", got.Path)
	assert.Equal(t, "secret", got.Query.Get("api_key"))
	assert.Empty(t, got.Header.Get("x-api-key"))
	// the caller's map is copied, never augmented
	assert.Equal(t, map[string]string{"address": "EQabc"}, query)
}

func TestDispatchWithoutKey(t *testing.T) {
	server, got := newCapturingServer(t, `{"ok":true,"result":"1"}`)
	c := NewClientWithURL(server.URL)

	_, err := c.Dispatch(context.Background(), Request{Endpoint: "getMasterchainInfo"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Empty(t, got.Header.Get("x-api-key"))
	assert.Empty(t, got.Query)
	assert.Empty(t, got.Body)
}

func TestDispatchPostBody(t *testing.T) {
	server, got := newCapturingServer(t, `{"ok":true,"result":{"@type":"ok"}}`)
	c := NewClientWithURL(server.URL)

	_, err := c.Dispatch(context.Background(), Request{Method: http.MethodPost, Endpoint: "sendBoc", Body: map[string]any{"boc": "te6c"}})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"boc":"te6c"}`, string(got.Body))

	_, err = c.Dispatch(context.Background(), Request{Method: http.MethodPost, Endpoint: "sendBoc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(got.Body))
}

func TestDispatchReturnsEnvelopeUninterpreted(t *testing.T) {
	server, _ := newCapturingServer(t, `{"ok":false,"error":"not found","code":404}`)
	c := NewClientWithURL(server.URL)

	e, err := c.Dispatch(context.Background(), Request{Endpoint: "getAddressState"})
	require.NoError(t, err)
	assert.False(t, e.OK)
	require.NotNil(t, e.Code)
	assert.Equal(t, 404, *e.Code)
}

func TestCallClassifiesHTTPErrorBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"ok":false,"error":"Ratelimit exceed","code":429}`)
	}))
	defer server.Close()

	_, err := NewClientWithURL(server.URL).Call(context.Background(), Request{Endpoint: "getAddressState"}, PlainPolicy)
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.Equal(t, "Ratelimit exceed", err.Error())
}

func TestCallNonJSONBodyIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer server.Close()

	_, err := NewClientWithURL(server.URL).Call(context.Background(), Request{Endpoint: "getAddressState"}, PlainPolicy)
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.False(t, IsServerError(err))
	assert.Contains(t, err.Error(), "HTTP 502 Bad Gateway")
	assert.Contains(t, err.Error(), "<html>bad gateway</html>")
}

func TestCallConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := NewClientWithURL(addr).Call(context.Background(), Request{Endpoint: "getAddressState"}, PlainPolicy)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.MethodGet, te.Method)
	assert.Equal(t, addr+"/getAddressState", te.URL)
}

func TestCallCancelledContext(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewClientWithURL(server.URL).Call(ctx, Request{Endpoint: "getAddressState"}, PlainPolicy)
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestTransportErrorHidesQueryKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "oops")
	}))
	defer server.Close()

	c := NewClientWithURL(server.URL, WithAPIKey(APIKey{Type: APIKeyQuery, Key: "secret"}), WithLogger(zap.NewExample()))
	_, err := c.Call(context.Background(), Request{Endpoint: "getAddressState"}, PlainPolicy)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
}

func TestTypedHelpers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/getMasterchainInfo":
			_, _ = io.WriteString(w, `{"ok":true,"result":{"@type":"blocks.masterchainInfo","last":{"@type":"ton.blockIdExt","workchain":-1,"seqno":42,"root_hash":"r"}}}`)
		case "/jsonRPC":
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_, _ = io.WriteString(w, `{"ok":true,"jsonrpc":"2.0","id":1,"result":{"@type":"blocks.masterchainInfo","state_root_hash":"s"}}`)
		default:
			_, _ = io.WriteString(w, `{"ok":false,"error":"unknown","code":404}`)
		}
	}))
	defer server.Close()
	c := NewClientWithURL(server.URL)

	type block struct {
		Workchain int    `json:"workchain"`
		Seqno     int    `json:"seqno"`
		RootHash  string `json:"rootHash"`
	}
	type info struct {
		Last block `json:"last"`
	}
	got, err := Get[info](context.Background(), c, "getMasterchainInfo", nil)
	require.NoError(t, err)
	assert.Equal(t, info{Last: block{Workchain: -1, Seqno: 42, RootHash: "r"}}, got)

	raw, err := PostRPC[any](context.Background(), c, "jsonRPC", map[string]any{"method": "getMasterchainInfo"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"@type": "blocks.masterchainInfo", "stateRootHash": "s"}, raw)

	_, err = Get[info](context.Background(), c, "nope", nil)
	assert.True(t, IsClientError(err))
}

func TestTypedHelperShapeMismatch(t *testing.T) {
	server, _ := newCapturingServer(t, `{"ok":true,"result":["not","an","object"]}`)
	_, err := Get[struct{ A string }](context.Background(), NewClientWithURL(server.URL), "x", nil)
	assert.True(t, IsProtocolError(err))
}
