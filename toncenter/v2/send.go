package v2

import (
	"context"
)

type RunGetMethodOptions struct {
	Seqno *uint64
}

// RunGetMethod runs a get-method of a contract. Stack entries are
// [type, value] pairs, e.g. {"num", "0x2a"}.
func (c *Client) RunGetMethod(ctx context.Context, address, method string, stack [][]string, opts *RunGetMethodOptions) (*SmcRunResult, error) {
	if stack == nil {
		stack = [][]string{}
	}
	body := map[string]any{
		"address": address,
		"method":  method,
		"stack":   stack,
	}
	if opts != nil && opts.Seqno != nil {
		body["seqno"] = *opts.Seqno
	}
	return post[SmcRunResult](ctx, c, "runGetMethod", body)
}

// SendBoc broadcasts a serialized external message (base64 BoC).
func (c *Client) SendBoc(ctx context.Context, boc string) error {
	_, err := post[any](ctx, c, "sendBoc", map[string]any{"boc": boc})
	return err
}

// SendBocReturnHash is SendBoc that also returns the message hash.
func (c *Client) SendBocReturnHash(ctx context.Context, boc string) (*ExtMessageInfo, error) {
	return post[ExtMessageInfo](ctx, c, "sendBocReturnHash", map[string]any{"boc": boc})
}

// SendQueryOptions carries base64 BoC parts; nil or empty parts are not sent.
type SendQueryOptions struct {
	Body     *string
	InitCode *string
	InitData *string
}

func (o *SendQueryOptions) body(address string) map[string]any {
	body := map[string]any{"address": address}
	if o == nil {
		return body
	}
	setPart(body, "body", o.Body)
	setPart(body, "init_code", o.InitCode)
	setPart(body, "init_data", o.InitData)
	return body
}

func setPart(body map[string]any, key string, v *string) {
	if v != nil && *v != "" {
		body[key] = *v
	}
}

// SendQuery packs body and init parameters into an external message and
// sends it.
func (c *Client) SendQuery(ctx context.Context, address string, opts *SendQueryOptions) error {
	_, err := post[any](ctx, c, "sendQuery", opts.body(address))
	return err
}

type EstimateFeeOptions struct {
	SendQueryOptions
	IgnoreChksig *bool
}

func (c *Client) EstimateFee(ctx context.Context, address string, opts *EstimateFeeOptions) (*QueryFees, error) {
	var body map[string]any
	if opts == nil {
		body = (*SendQueryOptions)(nil).body(address)
	} else {
		body = opts.SendQueryOptions.body(address)
		if opts.IgnoreChksig != nil {
			body["ignore_chksig"] = *opts.IgnoreChksig
		}
	}
	return post[QueryFees](ctx, c, "estimateFee", body)
}
