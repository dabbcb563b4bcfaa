package toncenter

import (
	"context"
	"encoding/json"
	"net/http"
)

// Get calls a REST endpoint and decodes its normalized result into T.
func Get[T any](ctx context.Context, c *Client, endpoint string, query map[string]string) (T, error) {
	return call[T](ctx, c, Request{Method: http.MethodGet, Endpoint: endpoint, Query: query}, PlainPolicy)
}

// Post sends body to a REST endpoint and decodes its normalized result into T.
func Post[T any](ctx context.Context, c *Client, endpoint string, body map[string]any) (T, error) {
	return call[T](ctx, c, Request{Method: http.MethodPost, Endpoint: endpoint, Body: body}, PlainPolicy)
}

// PostRPC is Post for the jsonRPC endpoint, whose results keep sigil keys.
func PostRPC[T any](ctx context.Context, c *Client, endpoint string, body map[string]any) (T, error) {
	return call[T](ctx, c, Request{Method: http.MethodPost, Endpoint: endpoint, Body: body}, RPCPolicy)
}

func call[T any](ctx context.Context, c *Client, r Request, p Policy) (T, error) {
	var out T
	v, err := c.Call(ctx, r, p)
	if err != nil {
		return out, err
	}
	if err := decodeInto(v, &out); err != nil {
		return out, err
	}
	return out, nil
}

// decodeInto moves a transformed tree into a typed value. Trees requested as
// plain values are handed over without a round trip.
func decodeInto[T any](v any, out *T) error {
	if raw, ok := any(out).(*any); ok {
		*raw = v
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return &ProtocolError{Reason: "unencodable result: " + err.Error()}
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &ProtocolError{Reason: "unexpected result shape: " + err.Error()}
	}
	return nil
}
