// Package v2 wraps the TON Center API v2 endpoints. Each method assembles the
// endpoint parameters and hands them to the shared toncenter pipeline.
package v2

import (
	"context"
	"fmt"

	"toncenter-client/toncenter"
)

// API lists every v2 endpoint. *Client implements it; callers can mock it.
type API interface {
	GetAddressInformation(ctx context.Context, address string) (*RawFullAccountState, error)
	GetExtendedAddressInformation(ctx context.Context, address string) (*FullAccountState, error)
	GetWalletInformation(ctx context.Context, address string) (*WalletInformation, error)
	GetTransactions(ctx context.Context, address string, opts *GetTransactionsOptions) ([]RawTransaction, error)
	GetAddressBalance(ctx context.Context, address string) (Nanotons, error)
	GetAddressState(ctx context.Context, address string) (string, error)
	PackAddress(ctx context.Context, address string) (string, error)
	UnpackAddress(ctx context.Context, address string) (string, error)
	GetTokenData(ctx context.Context, address string) (TokenData, error)
	DetectAddress(ctx context.Context, address string) (*DetectAddressResult, error)

	GetMasterchainInfo(ctx context.Context) (*MasterchainInfo, error)
	GetMasterchainBlockSignatures(ctx context.Context, seqno uint64) (*MasterchainBlockSignatures, error)
	GetShardBlockProof(ctx context.Context, workchain int, shard string, seqno uint64, opts *GetShardBlockProofOptions) (*ShardBlockProof, error)
	GetConsensusBlock(ctx context.Context) (*ConsensusBlock, error)
	LookupBlock(ctx context.Context, workchain int, shard string, opts *LookupBlockOptions) (*BlockIDExt, error)
	GetShards(ctx context.Context, seqno uint64) ([]BlockIDExt, error)
	GetBlockTransactions(ctx context.Context, workchain int, shard string, seqno uint64, opts *GetBlockTransactionsOptions) (*BlockTransactions, error)
	GetBlockTransactionsExt(ctx context.Context, workchain int, shard string, seqno uint64, opts *GetBlockTransactionsOptions) (*BlockTransactionsExt, error)
	GetBlockHeader(ctx context.Context, workchain int, shard string, seqno uint64, opts *GetBlockHeaderOptions) (*BlockHeader, error)
	GetOutMsgQueueSizes(ctx context.Context) (*OutMsgQueueSizes, error)

	TryLocateTx(ctx context.Context, source, destination string, createdLT uint64) (*RawTransaction, error)
	TryLocateResultTx(ctx context.Context, source, destination string, createdLT uint64) (*RawTransaction, error)
	TryLocateSourceTx(ctx context.Context, source, destination string, createdLT uint64) (*RawTransaction, error)

	GetConfigParam(ctx context.Context, configID int, opts *ConfigOptions) (*ConfigInfo, error)
	GetConfigAll(ctx context.Context, opts *ConfigOptions) (*ConfigInfo, error)

	RunGetMethod(ctx context.Context, address, method string, stack [][]string, opts *RunGetMethodOptions) (*SmcRunResult, error)
	SendBoc(ctx context.Context, boc string) error
	SendBocReturnHash(ctx context.Context, boc string) (*ExtMessageInfo, error)
	SendQuery(ctx context.Context, address string, opts *SendQueryOptions) error
	EstimateFee(ctx context.Context, address string, opts *EstimateFeeOptions) (*QueryFees, error)

	JSONRPC(ctx context.Context, method string, params map[string]any, id int) (any, error)
}

var _ API = (*Client)(nil)

// Client is the v2 endpoint set on top of a toncenter.Client.
type Client struct {
	c *toncenter.Client
}

// New uses an existing pipeline, e.g. one pointed at a self-hosted gateway.
func New(c *toncenter.Client) *Client {
	return &Client{c: c}
}

func NewClient(network toncenter.Network, opts ...toncenter.Option) *Client {
	return New(toncenter.NewClient(network, opts...))
}

// Pipeline returns the underlying toncenter.Client.
func (c *Client) Pipeline() *toncenter.Client {
	return c.c
}

// Ptr is a shorthand for filling option structs.
func Ptr[T any](v T) *T {
	return &v
}

type params map[string]string

func setOpt[T any](p params, key string, v *T) {
	if v != nil {
		p[key] = fmt.Sprint(*v)
	}
}

func get[T any](ctx context.Context, c *Client, endpoint string, p params) (*T, error) {
	res, err := toncenter.Get[T](ctx, c.c, endpoint, p)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func post[T any](ctx context.Context, c *Client, endpoint string, body map[string]any) (*T, error) {
	res, err := toncenter.Post[T](ctx, c.c, endpoint, body)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func addressParams(address string) params {
	return params{"address": address}
}
