package v2

import (
	"context"

	"toncenter-client/toncenter"
)

// GetAddressInformation returns balance, code, data and the last transaction
// of an address given in any form.
func (c *Client) GetAddressInformation(ctx context.Context, address string) (*RawFullAccountState, error) {
	return get[RawFullAccountState](ctx, c, "getAddressInformation", addressParams(address))
}

// GetExtendedAddressInformation also parses the state of known contract types.
// Prefer GetWalletInformation for detecting wallets.
func (c *Client) GetExtendedAddressInformation(ctx context.Context, address string) (*FullAccountState, error) {
	return get[FullAccountState](ctx, c, "getExtendedAddressInformation", addressParams(address))
}

// GetWalletInformation supports simple, standard, v3 and v4 wallets.
func (c *Client) GetWalletInformation(ctx context.Context, address string) (*WalletInformation, error) {
	return get[WalletInformation](ctx, c, "getWalletInformation", addressParams(address))
}

type GetTransactionsOptions struct {
	Limit *int
	// LT and Hash locate the transaction to start from and go together.
	LT       *uint64
	Hash     *string
	ToLT     *uint64
	Archival *bool
}

func (c *Client) GetTransactions(ctx context.Context, address string, opts *GetTransactionsOptions) ([]RawTransaction, error) {
	p := addressParams(address)
	if opts != nil {
		setOpt(p, "limit", opts.Limit)
		setOpt(p, "lt", opts.LT)
		setOpt(p, "hash", opts.Hash)
		setOpt(p, "to_lt", opts.ToLT)
		setOpt(p, "archival", opts.Archival)
	}
	res, err := get[[]RawTransaction](ctx, c, "getTransactions", p)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// GetAddressBalance returns the balance in nanotons.
func (c *Client) GetAddressBalance(ctx context.Context, address string) (Nanotons, error) {
	return toncenter.Get[Nanotons](ctx, c.c, "getAddressBalance", addressParams(address))
}

// GetAddressState returns "uninitialized", "active" or "frozen".
func (c *Client) GetAddressState(ctx context.Context, address string) (string, error) {
	return toncenter.Get[string](ctx, c.c, "getAddressState", addressParams(address))
}

// PackAddress converts a raw address to the user-friendly form.
func (c *Client) PackAddress(ctx context.Context, address string) (string, error) {
	return toncenter.Get[string](ctx, c.c, "packAddress", addressParams(address))
}

// UnpackAddress converts a user-friendly address to the raw form.
func (c *Client) UnpackAddress(ctx context.Context, address string) (string, error) {
	return toncenter.Get[string](ctx, c.c, "unpackAddress", addressParams(address))
}

// GetTokenData returns jetton or NFT data of a master, wallet, collection or
// item contract.
func (c *Client) GetTokenData(ctx context.Context, address string) (TokenData, error) {
	return toncenter.Get[TokenData](ctx, c.c, "getTokenData", addressParams(address))
}

func (c *Client) DetectAddress(ctx context.Context, address string) (*DetectAddressResult, error) {
	return get[DetectAddressResult](ctx, c, "detectAddress", addressParams(address))
}
