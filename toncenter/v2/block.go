package v2

import (
	"context"
	"strconv"
)

func blockParams(workchain int, shard string, seqno uint64) params {
	return params{
		"workchain": strconv.Itoa(workchain),
		"shard":     shard,
		"seqno":     strconv.FormatUint(seqno, 10),
	}
}

// GetMasterchainInfo returns the up-to-date masterchain state.
func (c *Client) GetMasterchainInfo(ctx context.Context) (*MasterchainInfo, error) {
	return get[MasterchainInfo](ctx, c, "getMasterchainInfo", nil)
}

func (c *Client) GetMasterchainBlockSignatures(ctx context.Context, seqno uint64) (*MasterchainBlockSignatures, error) {
	p := params{"seqno": strconv.FormatUint(seqno, 10)}
	return get[MasterchainBlockSignatures](ctx, c, "getMasterchainBlockSignatures", p)
}

type GetShardBlockProofOptions struct {
	// FromSeqno is the masterchain block the proof should start from.
	FromSeqno *uint64
}

func (c *Client) GetShardBlockProof(ctx context.Context, workchain int, shard string, seqno uint64, opts *GetShardBlockProofOptions) (*ShardBlockProof, error) {
	p := blockParams(workchain, shard, seqno)
	if opts != nil {
		setOpt(p, "from_seqno", opts.FromSeqno)
	}
	return get[ShardBlockProof](ctx, c, "getShardBlockProof", p)
}

func (c *Client) GetConsensusBlock(ctx context.Context) (*ConsensusBlock, error) {
	return get[ConsensusBlock](ctx, c, "getConsensusBlock", nil)
}

// LookupBlockOptions selects the block by height, logical time or unixtime.
type LookupBlockOptions struct {
	Seqno    *uint64
	LT       *uint64
	Unixtime *int64
}

func (c *Client) LookupBlock(ctx context.Context, workchain int, shard string, opts *LookupBlockOptions) (*BlockIDExt, error) {
	p := params{
		"workchain": strconv.Itoa(workchain),
		"shard":     shard,
	}
	if opts != nil {
		setOpt(p, "seqno", opts.Seqno)
		setOpt(p, "lt", opts.LT)
		setOpt(p, "unixtime", opts.Unixtime)
	}
	return get[BlockIDExt](ctx, c, "lookupBlock", p)
}

// GetShards returns the shard blocks referenced by a masterchain block.
func (c *Client) GetShards(ctx context.Context, seqno uint64) ([]BlockIDExt, error) {
	p := params{"seqno": strconv.FormatUint(seqno, 10)}
	res, err := get[Shards](ctx, c, "shards", p)
	if err != nil {
		return nil, err
	}
	return res.Shards, nil
}

type GetBlockTransactionsOptions struct {
	RootHash  *string
	FileHash  *string
	AfterLT   *uint64
	AfterHash *string
	// Count defaults to 40 on the server.
	Count *int
}

func (o *GetBlockTransactionsOptions) apply(p params) {
	if o == nil {
		return
	}
	setOpt(p, "root_hash", o.RootHash)
	setOpt(p, "file_hash", o.FileHash)
	setOpt(p, "after_lt", o.AfterLT)
	setOpt(p, "after_hash", o.AfterHash)
	setOpt(p, "count", o.Count)
}

// GetBlockTransactions lists short transaction ids of a block.
func (c *Client) GetBlockTransactions(ctx context.Context, workchain int, shard string, seqno uint64, opts *GetBlockTransactionsOptions) (*BlockTransactions, error) {
	p := blockParams(workchain, shard, seqno)
	opts.apply(p)
	return get[BlockTransactions](ctx, c, "getBlockTransactions", p)
}

// GetBlockTransactionsExt is GetBlockTransactions with full transactions.
func (c *Client) GetBlockTransactionsExt(ctx context.Context, workchain int, shard string, seqno uint64, opts *GetBlockTransactionsOptions) (*BlockTransactionsExt, error) {
	p := blockParams(workchain, shard, seqno)
	opts.apply(p)
	return get[BlockTransactionsExt](ctx, c, "getBlockTransactionsExt", p)
}

type GetBlockHeaderOptions struct {
	RootHash *string
	FileHash *string
}

func (c *Client) GetBlockHeader(ctx context.Context, workchain int, shard string, seqno uint64, opts *GetBlockHeaderOptions) (*BlockHeader, error) {
	p := blockParams(workchain, shard, seqno)
	if opts != nil {
		setOpt(p, "root_hash", opts.RootHash)
		setOpt(p, "file_hash", opts.FileHash)
	}
	return get[BlockHeader](ctx, c, "getBlockHeader", p)
}

func (c *Client) GetOutMsgQueueSizes(ctx context.Context) (*OutMsgQueueSizes, error) {
	return get[OutMsgQueueSizes](ctx, c, "getOutMsgQueueSizes", nil)
}
