package v2

import (
	"context"

	"toncenter-client/toncenter"
)

const jsonRPCVersion = "2.0"

func rpcBody(method string, params map[string]any, id int) map[string]any {
	if params == nil {
		params = map[string]any{}
	}
	return map[string]any{
		"jsonrpc": jsonRPCVersion,
		"method":  method,
		"params":  params,
		"id":      id,
	}
}

// JSONRPC calls any gateway method through the jsonRPC endpoint. Unlike the
// REST methods, sigil keys such as "@type" are kept in the result.
func (c *Client) JSONRPC(ctx context.Context, method string, params map[string]any, id int) (any, error) {
	return CallJSONRPC[any](ctx, c, method, params, id)
}

// CallJSONRPC is JSONRPC with the result decoded into T.
func CallJSONRPC[T any](ctx context.Context, c *Client, method string, params map[string]any, id int) (T, error) {
	return toncenter.PostRPC[T](ctx, c.c, "jsonRPC", rpcBody(method, params, id))
}
