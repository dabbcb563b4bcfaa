package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"toncenter-client/internal/conf"
	"toncenter-client/toncenter"
	v2 "toncenter-client/toncenter/v2"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQueryService(t *testing.T) (*QueryService, *http.Request) {
	t.Helper()
	last := &http.Request{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*last = *r.Clone(context.Background())
		switch r.URL.Path {
		case "/getAddressBalance":
			_, _ = io.WriteString(w, `{"ok":true,"result":"1230000000"}`)
		case "/getTransactions":
			_, _ = io.WriteString(w, `{"ok":true,"result":[]}`)
		case "/shards":
			_, _ = io.WriteString(w, `{"ok":true,"result":{"shards":[{"workchain":0,"seqno":1}]}}`)
		case "/jsonRPC":
			_, _ = io.WriteString(w, `{"ok":true,"jsonrpc":"2.0","id":1,"result":{"@type":"ok"}}`)
		default:
			_, _ = io.WriteString(w, `{"ok":false,"error":"Ratelimit exceed","code":429}`)
		}
	}))
	t.Cleanup(server.Close)

	api, err := NewAPIClient(&conf.Toncenter{BaseURL: server.URL, APIKey: "secret", Timeout: "2s"}, zap.NewNop())
	require.NoError(t, err)
	return NewQueryService(api), last
}

func TestNewAPIClient(t *testing.T) {
	api, err := NewAPIClient(&conf.Toncenter{Network: "testnet"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, toncenter.TestnetURL, api.Pipeline().BaseURL())

	_, err = NewAPIClient(&conf.Toncenter{Timeout: "later"}, zap.NewNop())
	assert.Error(t, err)
}

func TestRunBalance(t *testing.T) {
	s, last := newQueryService(t)
	res, err := s.Run(context.Background(), "balance", []string{"EQabc"})
	require.NoError(t, err)
	assert.Equal(t, "balance", res.Command)
	assert.Equal(t, v2.Nanotons("1230000000"), res.Data)
	assert.Equal(t, "1.23", res.BalanceTON)
	assert.Equal(t, "secret", last.Header.Get("x-api-key"))
}

func TestRunArguments(t *testing.T) {
	s, last := newQueryService(t)
	ctx := context.Background()

	_, err := s.Run(ctx, "txs", []string{"EQabc", "7"})
	require.NoError(t, err)
	assert.Equal(t, "7", last.URL.Query().Get("limit"))

	res, err := s.Run(ctx, "shards", []string{"100"})
	require.NoError(t, err)
	assert.Len(t, res.Data, 1)

	res, err = s.Run(ctx, "rpc", []string{"sendBoc", `{"boc":"te6"}`})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"@type": "ok"}, res.Data)

	for _, bad := range [][]string{{"nope"}, {"balance"}, {"txs", "EQabc", "many"}, {"shards", "-1"}, {"rpc", "x", "{"}} {
		_, err := s.Run(ctx, bad[0], bad[1:])
		assert.True(t, errors.Is(err, ErrUsage), strings.Join(bad, " "))
	}
}

func TestRunKeepsErrorType(t *testing.T) {
	s, _ := newQueryService(t)
	_, err := s.Run(context.Background(), "masterchain", nil)
	require.Error(t, err)
	assert.True(t, toncenter.IsRateLimited(err))
	assert.Contains(t, err.Error(), "masterchain")
}

func TestUsageIsSorted(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(Usage()), "\n")
	require.Len(t, lines, len(commands))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "balance"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "wallet"))
}
