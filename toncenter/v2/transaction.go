package v2

import (
	"context"
	"strconv"
)

func locateParams(source, destination string, createdLT uint64) params {
	return params{
		"source":      source,
		"destination": destination,
		"created_lt":  strconv.FormatUint(createdLT, 10),
	}
}

// TryLocateTx finds the outgoing transaction of destination caused by the
// incoming message from source. The gateway does not always find it.
func (c *Client) TryLocateTx(ctx context.Context, source, destination string, createdLT uint64) (*RawTransaction, error) {
	return get[RawTransaction](ctx, c, "tryLocateTx", locateParams(source, destination, createdLT))
}

// TryLocateResultTx is an alias of TryLocateTx on the gateway.
func (c *Client) TryLocateResultTx(ctx context.Context, source, destination string, createdLT uint64) (*RawTransaction, error) {
	return get[RawTransaction](ctx, c, "tryLocateResultTx", locateParams(source, destination, createdLT))
}

// TryLocateSourceTx finds the transaction of source that sent the message.
func (c *Client) TryLocateSourceTx(ctx context.Context, source, destination string, createdLT uint64) (*RawTransaction, error) {
	return get[RawTransaction](ctx, c, "tryLocateSourceTx", locateParams(source, destination, createdLT))
}
