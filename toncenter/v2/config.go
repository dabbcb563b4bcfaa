package v2

import (
	"context"
	"strconv"
)

type ConfigOptions struct {
	// Seqno pins the masterchain block; the latest state is used when nil.
	Seqno *uint64
}

func (c *Client) GetConfigParam(ctx context.Context, configID int, opts *ConfigOptions) (*ConfigInfo, error) {
	p := params{"config_id": strconv.Itoa(configID)}
	if opts != nil {
		setOpt(p, "seqno", opts.Seqno)
	}
	return get[ConfigInfo](ctx, c, "getConfigParam", p)
}

// GetConfigAll returns the whole config as one cell.
func (c *Client) GetConfigAll(ctx context.Context, opts *ConfigOptions) (*ConfigInfo, error) {
	p := params{}
	if opts != nil {
		setOpt(p, "seqno", opts.Seqno)
	}
	return get[ConfigInfo](ctx, c, "getConfigAll", p)
}
